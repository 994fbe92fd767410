// Package tempo scores terms by how strongly they attach to periods of time.
// A corpus of dated documents is folded into time buckets (day, month or
// year); each term is then weighted per bucket with a tf-idf variant in
// which buckets stand in for documents. Terms that concentrate in few
// buckets score high there; terms spread across the whole corpus are damped.
package tempo

import (
	"fmt"

	"github.com/benhorvath/tempo-tfidf/pkg/tempo/aggregate"
	"github.com/benhorvath/tempo-tfidf/pkg/tempo/bucket"
	"github.com/benhorvath/tempo-tfidf/pkg/tempo/score"
	"github.com/benhorvath/tempo-tfidf/pkg/tempo/token"
)

// Granularity selects the width of a time bucket.
type Granularity = bucket.Granularity

const (
	Day   = bucket.Day
	Month = bucket.Month
	Year  = bucket.Year
)

// Sentinel errors surfaced by scoring. Wrapped values carry the offending
// input; match with errors.Is.
var (
	ErrInvalidDate        = bucket.ErrInvalidDate
	ErrInvalidGranularity = bucket.ErrInvalidGranularity
)

// Document is one dated unit of text.
type Document struct {
	Text string
	Date string
}

// Options configures a Scorer instance.
type Options struct {
	// Granularity of the time buckets. Defaults to Month.
	Granularity Granularity

	// DateLayout is the reference layout for document dates.
	// Defaults to bucket.DateLayout ("2006-01-02").
	DateLayout string

	// Stopwords to filter during tokenization. Nil applies no filtering.
	Stopwords []string

	// Normalizer is applied to each token after cleaning (stemming,
	// synonym folding). Nil leaves tokens as cleaned.
	Normalizer token.NormalizeFunc

	// Tokenizer overrides Stopwords and Normalizer when set.
	Tokenizer *token.Tokenizer
}

// Scorer is the scoring facade. It wires the tokenizer, the bucket mapper,
// the aggregator and the calculator into one pipeline. A Scorer may be
// reused across batches; concurrent Score calls are safe as long as the
// tokenizer's stopword list is not being mutated.
type Scorer struct {
	tok    *token.Tokenizer
	gran   Granularity
	layout string
	calc   *score.Calculator
}

// New creates a Scorer. The granularity is validated here, before any
// document is touched: an unknown value fails immediately with
// ErrInvalidGranularity.
func New(opts Options) (*Scorer, error) {
	gran := opts.Granularity
	if gran == "" {
		gran = Month
	}
	if _, err := bucket.ParseGranularity(string(gran)); err != nil {
		return nil, err
	}

	layout := opts.DateLayout
	if layout == "" {
		layout = bucket.DateLayout
	}

	tok := opts.Tokenizer
	if tok == nil {
		tok = token.NewTokenizer(opts.Stopwords)
		if opts.Normalizer != nil {
			tok.SetNormalizer(opts.Normalizer)
		}
	}

	return &Scorer{
		tok:    tok,
		gran:   gran,
		layout: layout,
		calc:   score.NewCalculator(),
	}, nil
}

// Granularity reports the configured bucket width.
func (s *Scorer) Granularity() Granularity {
	return s.gran
}

// Score runs the full pipeline over a batch of documents. A single
// unparseable date aborts the whole batch: the returned error wraps
// ErrInvalidDate and names the offending document, and no partial result is
// produced. An empty batch yields an empty Result and no error.
func (s *Scorer) Score(docs []Document) (*Result, error) {
	acc := aggregate.NewAccumulator()

	for i, doc := range docs {
		t, err := bucket.ParseDate(doc.Date, s.layout)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		key, err := bucket.Key(t, s.gran)
		if err != nil {
			return nil, err
		}
		acc.Add(key, s.tok.Tokenize(doc.Text))
	}

	return s.result(acc.Snapshot()), nil
}

// ScoreCounts scores a pre-aggregated snapshot. Useful when counts from
// several corpus shards have been merged.
func (s *Scorer) ScoreCounts(counts aggregate.Counts) *Result {
	return s.result(counts)
}

func (s *Scorer) result(counts aggregate.Counts) *Result {
	entries := s.calc.Compute(counts)

	index := make(map[aggregate.Cell]float64, len(entries))
	for _, e := range entries {
		index[aggregate.Cell{Bucket: e.Bucket, Term: e.Term}] = e.Score
	}

	return &Result{
		Entries:     entries,
		Buckets:     counts.Buckets,
		Granularity: s.gran,
		index:       index,
	}
}

// Result holds the scored corpus. Entries are ordered bucket ascending,
// score descending, term ascending; Buckets are the sorted bucket keys,
// including buckets whose documents produced no tokens.
type Result struct {
	Entries     []score.Entry
	Buckets     []string
	Granularity Granularity

	index map[aggregate.Cell]float64
}

// Lookup returns the score of term in bucket. The second return is false
// when the pair was never scored.
func (r *Result) Lookup(term, bucketKey string) (float64, bool) {
	v, ok := r.index[aggregate.Cell{Bucket: bucketKey, Term: term}]
	return v, ok
}

// Top returns the k highest-scoring entries of one bucket. k <= 0 or k
// beyond the bucket's size returns everything the bucket has.
func (r *Result) Top(bucketKey string, k int) []score.Entry {
	var out []score.Entry
	for _, e := range r.Entries {
		if e.Bucket != bucketKey {
			continue
		}
		out = append(out, e)
		if k > 0 && len(out) == k {
			break
		}
	}
	return out
}

// Len reports the number of scored entries.
func (r *Result) Len() int {
	return len(r.Entries)
}
