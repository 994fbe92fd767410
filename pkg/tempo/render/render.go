// Package render turns scored results into presentation artifacts. Rendering
// is a boundary: a failure here is reported as an error wrapping ErrRender
// and never invalidates the scores being rendered.
package render

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/benhorvath/tempo-tfidf/pkg/tempo"
)

// ErrRender marks failures while producing an artifact. Match with
// errors.Is; the wrapped message carries the underlying cause.
var ErrRender = errors.New("render failed")

// Renderer writes a scored result to w in some output format.
type Renderer interface {
	Render(w io.Writer, result *tempo.Result) error
}

// Default layout bounds for the HTML report.
const (
	DefaultTopK        = 25
	DefaultMaxFontSize = 100
	minFontSize        = 10
)

// reportID returns a fresh ULID for stamping artifacts.
func reportID(entropy *ulid.MonotonicEntropy) string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

func newEntropy() *ulid.MonotonicEntropy {
	return ulid.Monotonic(rand.Reader, 0)
}

// wrapErr attaches the ErrRender sentinel to an underlying failure.
func wrapErr(stage string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrRender, stage, err)
}
