// Package aggregate accumulates per-bucket term statistics. It is the middle
// stage of the scoring pipeline: tokens go in grouped by time bucket, and a
// Counts snapshot comes out for the scorer.
package aggregate

import "sort"

// Cell identifies one (bucket, term) pair in the frequency table.
type Cell struct {
	Bucket string
	Term   string
}

// Accumulator aggregates term frequencies per time bucket. Feed it one
// document at a time with Add, then take a Snapshot. The accumulator itself
// is not safe for concurrent use; snapshots are independent copies.
type Accumulator struct {
	terms        map[Cell]int64
	bucketTotals map[string]int64
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		terms:        make(map[Cell]int64),
		bucketTotals: make(map[string]int64),
	}
}

// Add consumes one document's tokens under the given bucket key. A document
// with no tokens still registers its bucket: empty buckets count toward the
// corpus size the scorer sees.
func (a *Accumulator) Add(bucket string, tokens []string) {
	if _, ok := a.bucketTotals[bucket]; !ok {
		a.bucketTotals[bucket] = 0
	}
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		a.terms[Cell{Bucket: bucket, Term: tok}]++
		a.bucketTotals[bucket]++
	}
}

// Counts is an immutable snapshot of accumulated statistics.
type Counts struct {
	Terms        map[Cell]int64   // (bucket, term) -> occurrences
	BucketTotals map[string]int64 // bucket -> total token count
	Presence     map[string]int64 // term -> number of distinct buckets containing it
	Buckets      []string         // bucket keys in sorted order
}

// Snapshot returns a copy of the accumulated statistics. Presence is derived
// from the frequency table: a term is present in a bucket when its count
// there is positive.
func (a *Accumulator) Snapshot() Counts {
	terms := make(map[Cell]int64, len(a.terms))
	presence := make(map[string]int64)
	for cell, count := range a.terms {
		terms[cell] = count
		if count > 0 {
			presence[cell.Term]++
		}
	}

	totals := make(map[string]int64, len(a.bucketTotals))
	buckets := make([]string, 0, len(a.bucketTotals))
	for bucket, total := range a.bucketTotals {
		totals[bucket] = total
		buckets = append(buckets, bucket)
	}
	sort.Strings(buckets)

	return Counts{
		Terms:        terms,
		BucketTotals: totals,
		Presence:     presence,
		Buckets:      buckets,
	}
}

// Merge combines two snapshots into a new one. Frequencies and totals for
// shared cells sum; presence is recomputed from the merged table, so a term
// present in the same bucket on both sides is counted once.
func (c Counts) Merge(other Counts) Counts {
	terms := make(map[Cell]int64, len(c.Terms)+len(other.Terms))
	for cell, count := range c.Terms {
		terms[cell] += count
	}
	for cell, count := range other.Terms {
		terms[cell] += count
	}

	presence := make(map[string]int64)
	for cell, count := range terms {
		if count > 0 {
			presence[cell.Term]++
		}
	}

	totals := make(map[string]int64, len(c.BucketTotals)+len(other.BucketTotals))
	for bucket, total := range c.BucketTotals {
		totals[bucket] += total
	}
	for bucket, total := range other.BucketTotals {
		totals[bucket] += total
	}

	buckets := make([]string, 0, len(totals))
	for bucket := range totals {
		buckets = append(buckets, bucket)
	}
	sort.Strings(buckets)

	return Counts{
		Terms:        terms,
		BucketTotals: totals,
		Presence:     presence,
		Buckets:      buckets,
	}
}

// TotalBuckets reports the corpus size N used by the scorer.
func (c Counts) TotalBuckets() int64 {
	return int64(len(c.Buckets))
}

// Frequency returns the raw count of term in bucket, zero when absent.
func (c Counts) Frequency(bucket, term string) int64 {
	return c.Terms[Cell{Bucket: bucket, Term: term}]
}
