package render

import (
	"html/template"
	"io"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/benhorvath/tempo-tfidf/pkg/tempo"
)

// HTML renders a self-contained report page: one section per bucket, the
// bucket's top terms sized proportionally to their scores.
type HTML struct {
	// Title heads the report. Empty uses a generic title.
	Title string

	// TopK limits how many terms each bucket shows. Zero or negative
	// falls back to DefaultTopK.
	TopK int

	// MaxFontSize is the pixel size of each bucket's strongest term.
	// Zero or negative falls back to DefaultMaxFontSize.
	MaxFontSize int

	entropy *ulid.MonotonicEntropy
}

// NewHTML creates an HTML renderer with default layout bounds.
func NewHTML() *HTML {
	return &HTML{
		TopK:        DefaultTopK,
		MaxFontSize: DefaultMaxFontSize,
		entropy:     newEntropy(),
	}
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { font-size: 1.6em; }
.meta { color: #777; font-size: 0.8em; margin-bottom: 2em; }
.bucket { margin-bottom: 2.5em; }
.bucket h2 { border-bottom: 1px solid #ddd; padding-bottom: 0.2em; }
.terms span { margin-right: 0.6em; line-height: 1.6; }
.empty { color: #999; font-style: italic; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="meta">report {{.ID}} &middot; {{.Granularity}} buckets &middot; generated {{.GeneratedAt}}</div>
{{range .Buckets}}<div class="bucket">
<h2>{{.Key}}</h2>
{{if .Terms}}<div class="terms">
{{range .Terms}}<span style="font-size: {{.FontSize}}px" title="{{printf "%.4f" .Score}}">{{.Term}}</span>
{{end}}</div>
{{else}}<div class="empty">no terms</div>
{{end}}</div>
{{end}}</body>
</html>
`))

type htmlReport struct {
	ID          string
	Title       string
	Granularity string
	GeneratedAt string
	Buckets     []htmlBucket
}

type htmlBucket struct {
	Key   string
	Terms []htmlTerm
}

type htmlTerm struct {
	Term     string
	Score    float64
	FontSize int
}

// Render writes the report page. The result is read only; a write or
// template failure wraps ErrRender.
func (h *HTML) Render(w io.Writer, result *tempo.Result) error {
	topK := h.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	maxFont := h.MaxFontSize
	if maxFont <= 0 {
		maxFont = DefaultMaxFontSize
	}
	title := h.Title
	if title == "" {
		title = "Terms over time"
	}
	entropy := h.entropy
	if entropy == nil {
		entropy = newEntropy()
	}

	report := htmlReport{
		ID:          reportID(entropy),
		Title:       title,
		Granularity: string(result.Granularity),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	for _, key := range result.Buckets {
		top := result.Top(key, topK)
		hb := htmlBucket{Key: key}

		// Sizes scale against the bucket's own maximum, so every bucket
		// fills its range even when absolute scores differ widely.
		var bucketMax float64
		if len(top) > 0 {
			bucketMax = top[0].Score
		}
		for _, e := range top {
			hb.Terms = append(hb.Terms, htmlTerm{
				Term:     e.Term,
				Score:    e.Score,
				FontSize: fontSize(e.Score, bucketMax, maxFont),
			})
		}
		report.Buckets = append(report.Buckets, hb)
	}

	if err := htmlTemplate.Execute(w, report); err != nil {
		return wrapErr("execute template", err)
	}
	return nil
}

// fontSize maps a score onto [minFontSize, maxFont] relative to the bucket
// maximum.
func fontSize(score, bucketMax float64, maxFont int) int {
	if bucketMax <= 0 || score <= 0 {
		return minFontSize
	}
	size := int(score / bucketMax * float64(maxFont))
	if size < minFontSize {
		return minFontSize
	}
	if size > maxFont {
		return maxFont
	}
	return size
}
