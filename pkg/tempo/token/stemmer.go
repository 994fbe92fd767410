package token

import (
	"github.com/blevesearch/go-porterstemmer"
)

// Stem reduces a token to its Porter stem ("running" -> "run"). It satisfies
// NormalizeFunc and can be combined with a synonym table via Chain.
func Stem(tok string) string {
	return porterstemmer.StemString(tok)
}

// Chain composes normalizers left to right; a step returning the empty
// string short-circuits and drops the token.
func Chain(fns ...NormalizeFunc) NormalizeFunc {
	return func(tok string) string {
		for _, fn := range fns {
			tok = fn(tok)
			if tok == "" {
				return ""
			}
		}
		return tok
	}
}
