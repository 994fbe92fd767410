package token

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Synonyms folds term variants onto a canonical form so that inflections and
// spellings ("games", "gaming") count as one term when scoring. Its Normalize
// method satisfies NormalizeFunc.
type Synonyms struct {
	// canonical -> all variants (including canonical itself)
	groups map[string][]string

	// variant -> canonical
	reverse map[string]string
}

// NewSynonyms creates an empty synonym table.
func NewSynonyms() *Synonyms {
	return &Synonyms{
		groups:  make(map[string][]string),
		reverse: make(map[string]string),
	}
}

// LoadSynonyms reads a synonym table from a YAML file.
//
// Expected format:
//
//	synonyms:
//	  - canonical: game
//	    variants: [games, gaming, gamer]
//	  - canonical: analyze
//	    variants: [analysis, analytical]
//
// All entries are lowercased; the canonical form is always a member of its
// own group.
func LoadSynonyms(path string) (*Synonyms, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read synonyms file: %w", err)
	}

	var file struct {
		Synonyms []struct {
			Canonical string   `yaml:"canonical"`
			Variants  []string `yaml:"variants"`
		} `yaml:"synonyms"`
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse synonyms file: %w", err)
	}

	syn := NewSynonyms()
	for _, entry := range file.Synonyms {
		syn.AddGroup(entry.Canonical, entry.Variants...)
	}

	return syn, nil
}

// AddGroup registers a canonical form and its variants. Re-adding a canonical
// replaces its previous group; stale reverse entries are removed first.
func (s *Synonyms) AddGroup(canonical string, variants ...string) {
	canonical = strings.ToLower(canonical)

	if old, ok := s.groups[canonical]; ok {
		for _, v := range old {
			delete(s.reverse, v)
		}
	}

	group := make([]string, 0, len(variants)+1)
	seen := map[string]bool{canonical: true}
	group = append(group, canonical)

	for _, v := range variants {
		v = strings.ToLower(v)
		if !seen[v] {
			group = append(group, v)
			seen[v] = true
		}
	}

	s.groups[canonical] = group
	for _, v := range group {
		s.reverse[v] = canonical
	}
}

// Normalize returns the canonical form of a token, or the token itself when
// it belongs to no group.
func (s *Synonyms) Normalize(tok string) string {
	tok = strings.ToLower(tok)
	if canonical, ok := s.reverse[tok]; ok {
		return canonical
	}
	return tok
}

// Variants returns every member of the token's group, canonical first. A
// token outside the table yields a one-element slice holding the token.
func (s *Synonyms) Variants(tok string) []string {
	tok = strings.ToLower(tok)
	if canonical, ok := s.reverse[tok]; ok {
		return s.groups[canonical]
	}
	return []string{tok}
}

// Len reports the number of synonym groups.
func (s *Synonyms) Len() int {
	return len(s.groups)
}
