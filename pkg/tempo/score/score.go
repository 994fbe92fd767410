// Package score turns aggregated counts into temporal tf-idf scores. The
// bucket plays the role the document plays in classic tf-idf: a term scores
// high in a bucket when it is frequent there but present in few other
// buckets.
package score

import (
	"math"
	"sort"

	"github.com/benhorvath/tempo-tfidf/pkg/tempo/aggregate"
)

// Calculator computes temporal tf-idf scores.
type Calculator struct {
	smooth float64
}

// NewCalculator creates a calculator with the standard smoothing constant.
func NewCalculator() *Calculator {
	return &Calculator{smooth: 1.0}
}

// Score calculates the weight of a term inside one bucket
//
//	score = f * (1 + ln(N / (presence + 1)))
//
// Where:
//   - f = occurrences of the term in the bucket
//   - N = total number of buckets
//   - presence = number of buckets containing the term at least once
//
// The +1 keeps the logarithm finite when a term appears in every bucket;
// such a term scores slightly below its raw frequency rather than zero, so
// ubiquitous terms are damped but never erased.
func (c *Calculator) Score(freq, presence, totalBuckets int64) float64 {
	if totalBuckets == 0 {
		return 0
	}
	idf := 1 + math.Log(float64(totalBuckets)/(float64(presence)+c.smooth))
	return float64(freq) * idf
}

// Entry is one scored (bucket, term) cell.
type Entry struct {
	Bucket string
	Term   string
	Score  float64
}

// Compute scores every cell of the snapshot. Entries come back in a
// deterministic order: bucket ascending, then score descending, then term
// ascending, so equal inputs always produce byte-equal output. An empty
// snapshot yields an empty slice.
func (c *Calculator) Compute(counts aggregate.Counts) []Entry {
	n := counts.TotalBuckets()
	if n == 0 {
		return nil
	}

	entries := make([]Entry, 0, len(counts.Terms))
	for cell, freq := range counts.Terms {
		if freq == 0 {
			continue
		}
		entries = append(entries, Entry{
			Bucket: cell.Bucket,
			Term:   cell.Term,
			Score:  c.Score(freq, counts.Presence[cell.Term], n),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Bucket != entries[j].Bucket {
			return entries[i].Bucket < entries[j].Bucket
		}
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Term < entries[j].Term
	})

	return entries
}
