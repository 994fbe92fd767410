package token

import (
	"strings"
	"unicode"
)

// NormalizeFunc rewrites a cleaned token into its canonical form. Returning
// the empty string drops the token. Implementations must be pure so that
// tokenization stays a function of the input text; Stem and Synonyms.Normalize
// are ready-made implementations.
type NormalizeFunc func(string) string

// Tokenizer splits raw document text into normalized terms. The zero
// configuration (no stopwords, no normalizer) keeps every cleaned token.
type Tokenizer struct {
	stopwords map[string]struct{}
	normalize NormalizeFunc
}

// NewTokenizer creates a tokenizer with the given stopword list. A nil or
// empty list disables stopword filtering.
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// SetNormalizer injects a normalization step (stemming, synonym folding)
// applied to each token after cleaning and before stopword filtering.
func (t *Tokenizer) SetNormalizer(fn NormalizeFunc) {
	t.normalize = fn
}

// Tokenize splits text into normalized tokens. Lowercasing happens during the
// scan; punctuation separates tokens except for hyphens and apostrophes,
// which are token-internal ("state-of-the-art", "don't"). The result is a
// fresh slice on every call: Tokenize is a pure function of text and may be
// re-invoked to restart the sequence.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '\'' {
			current.WriteRune(unicode.ToLower(r))
		} else {
			if current.Len() > 0 {
				if word := t.processToken(current.String()); word != "" {
					tokens = append(tokens, word)
				}
				current.Reset()
			}
		}
	}

	if current.Len() > 0 {
		if word := t.processToken(current.String()); word != "" {
			tokens = append(tokens, word)
		}
	}

	return tokens
}

// processToken applies cleaning, normalization and stopword filtering.
// An empty return means the token is dropped.
func (t *Tokenizer) processToken(token string) string {
	word := cleanToken(token)
	if word == "" || len(word) <= 1 {
		return ""
	}

	// Bare numbers carry no term signal; mixed tokens like "utf-8" are kept.
	if isNumericOnly(word) {
		return ""
	}

	if t.normalize != nil {
		word = t.normalize(word)
		if word == "" {
			return ""
		}
	}

	if t.isStopword(word) {
		return ""
	}

	return word
}

// cleanToken strips boundary hyphens/apostrophes, collapses hyphen runs and
// drops a possessive 's suffix ("monday's" -> "monday").
func cleanToken(token string) string {
	token = strings.Trim(token, "-'")

	for strings.Contains(token, "--") {
		token = strings.ReplaceAll(token, "--", "-")
	}

	token = strings.TrimSuffix(token, "'s")

	return token
}

// isNumericOnly returns true if the token contains only digits and hyphens.
func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}

func (t *Tokenizer) isStopword(word string) bool {
	_, ok := t.stopwords[word]
	return ok
}

// AddStopword adds a word to the stopword list
func (t *Tokenizer) AddStopword(word string) {
	t.stopwords[strings.ToLower(word)] = struct{}{}
}

// RemoveStopword removes a word from the stopword list
func (t *Tokenizer) RemoveStopword(word string) {
	delete(t.stopwords, strings.ToLower(word))
}
