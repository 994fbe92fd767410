package render

import (
	"encoding/json"
	"io"

	"github.com/benhorvath/tempo-tfidf/pkg/tempo"
)

// JSON renders the full result as a machine-readable document, terms grouped
// per bucket in score order.
type JSON struct {
	// Indent pretty-prints the output.
	Indent bool

	// TopK limits terms per bucket. Zero or negative emits everything.
	TopK int
}

// NewJSON creates a JSON renderer emitting the complete result, compact.
func NewJSON() *JSON {
	return &JSON{}
}

type jsonReport struct {
	Granularity string       `json:"granularity"`
	Buckets     []jsonBucket `json:"buckets"`
}

type jsonBucket struct {
	Bucket string     `json:"bucket"`
	Terms  []jsonTerm `json:"terms"`
}

type jsonTerm struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// Render writes the result as JSON. Encoding or write failures wrap
// ErrRender.
func (j *JSON) Render(w io.Writer, result *tempo.Result) error {
	report := jsonReport{
		Granularity: string(result.Granularity),
		Buckets:     make([]jsonBucket, 0, len(result.Buckets)),
	}

	for _, key := range result.Buckets {
		jb := jsonBucket{Bucket: key, Terms: []jsonTerm{}}
		for _, e := range result.Top(key, j.TopK) {
			jb.Terms = append(jb.Terms, jsonTerm{Term: e.Term, Score: e.Score})
		}
		report.Buckets = append(report.Buckets, jb)
	}

	enc := json.NewEncoder(w)
	if j.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(report); err != nil {
		return wrapErr("encode json", err)
	}
	return nil
}
