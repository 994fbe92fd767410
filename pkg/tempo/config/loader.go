package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/benhorvath/tempo-tfidf/pkg/tempo"
	"github.com/benhorvath/tempo-tfidf/pkg/tempo/token"
)

// Stoplist is a stopword list loaded from disk.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist reads stopwords from path. A .yaml/.yml file uses the
// structured form:
//
//	terms: [the, a, an]
//
// Any other extension is read as plain text, one stopword per line, with
// blank lines and #-comments skipped.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var sl Stoplist
		if err := yaml.Unmarshal(data, &sl); err != nil {
			return nil, fmt.Errorf("parse stoplist %s: %w", path, err)
		}
		return &sl, nil
	default:
		sl := &Stoplist{}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			sl.Terms = append(sl.Terms, line)
		}
		return sl, nil
	}
}

// BuildTokenizer constructs the tokenizer the scoring config describes: the
// stopword list (default, or replaced by StoplistPath), plus synonym folding
// and stemming when enabled. Synonyms run before the stemmer so tables can
// be written against surface forms.
func (c ScoringConfig) BuildTokenizer() (*token.Tokenizer, error) {
	var stopwords []string
	if c.DefaultStopwords {
		stopwords = token.DefaultStopwords
	}
	if c.StoplistPath != "" {
		sl, err := LoadStoplist(c.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		stopwords = sl.Terms
	}

	tok := token.NewTokenizer(stopwords)

	var norms []token.NormalizeFunc
	if c.SynonymsPath != "" {
		syn, err := token.LoadSynonyms(c.SynonymsPath)
		if err != nil {
			return nil, fmt.Errorf("load synonyms: %w", err)
		}
		norms = append(norms, syn.Normalize)
	}
	if c.Stemming {
		norms = append(norms, token.Stem)
	}
	if len(norms) > 0 {
		tok.SetNormalizer(token.Chain(norms...))
	}

	return tok, nil
}

// ScorerOptions assembles tempo.Options from the scoring config.
func (c ScoringConfig) ScorerOptions() (tempo.Options, error) {
	tok, err := c.BuildTokenizer()
	if err != nil {
		return tempo.Options{}, err
	}
	return tempo.Options{
		Granularity: tempo.Granularity(c.Granularity),
		DateLayout:  c.DateLayout,
		Tokenizer:   tok,
	}, nil
}
