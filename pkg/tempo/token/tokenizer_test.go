package token

import (
	"strings"
	"testing"
)

func TestTokenizeBasic(t *testing.T) {
	tok := NewTokenizer([]string{"the", "a", "and", "of"})

	text := "The quick brown fox jumps over the lazy dog"
	got := tok.Tokenize(text)

	for _, w := range got {
		if w == "the" {
			t.Error("stopword 'the' should be filtered")
		}
	}

	want := []string{"quick", "brown", "fox", "jumps", "over", "lazy", "dog"}
	if !equalTokens(got, want) {
		t.Errorf("Tokenize(%q) = %v, want %v", text, got, want)
	}
}

func TestTokenizeLowercases(t *testing.T) {
	tok := NewTokenizer(nil)

	got := tok.Tokenize("BERT GPT-4 Transformer")
	for _, w := range got {
		if w != strings.ToLower(w) {
			t.Errorf("token %q should be lowercased", w)
		}
	}
}

func TestTokenizeHyphenatedTerms(t *testing.T) {
	tok := NewTokenizer(nil)

	text := "state-of-the-art machine-learning x-ray utf-8"
	got := tok.Tokenize(text)

	want := []string{"state-of-the-art", "machine-learning", "x-ray", "utf-8"}
	if !equalTokens(got, want) {
		t.Errorf("Tokenize(%q) = %v, want %v", text, got, want)
	}
}

func TestTokenizeBoundaryHyphensStripped(t *testing.T) {
	tok := NewTokenizer(nil)

	text := "-emulator-assembler- gpt- -patch normal"
	got := tok.Tokenize(text)

	want := []string{"emulator-assembler", "gpt", "patch", "normal"}
	if !equalTokens(got, want) {
		t.Errorf("Tokenize(%q) = %v, want %v", text, got, want)
	}
}

func TestTokenizeConsecutiveHyphensCollapsed(t *testing.T) {
	tok := NewTokenizer(nil)

	got := tok.Tokenize("test--double normal---triple")
	for _, w := range got {
		if strings.Contains(w, "--") {
			t.Errorf("token %q contains consecutive hyphens", w)
		}
	}
}

func TestTokenizeApostrophes(t *testing.T) {
	tok := NewTokenizer(nil)

	// Contractions stay whole; possessives lose the 's; quotes are trimmed.
	cases := []struct {
		text string
		want []string
	}{
		{"don't panic", []string{"don't", "panic"}},
		{"monday's meeting", []string{"monday", "meeting"}},
		{"the 'quoted' word", []string{"the", "quoted", "word"}},
	}
	for _, tc := range cases {
		got := tok.Tokenize(tc.text)
		if !equalTokens(got, tc.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestTokenizeNumericOnlyDropped(t *testing.T) {
	tok := NewTokenizer(nil)

	text := "machine learning 2023 gpt-4 utf-8 100-200"
	got := tok.Tokenize(text)

	want := []string{"machine", "learning", "gpt-4", "utf-8"}
	if !equalTokens(got, want) {
		t.Errorf("Tokenize(%q) = %v, want %v", text, got, want)
	}
}

func TestTokenizeSingleCharactersDropped(t *testing.T) {
	tok := NewTokenizer(nil)

	got := tok.Tokenize("a b c machine learning")
	want := []string{"machine", "learning"}
	if !equalTokens(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeEmptyAndWhitespace(t *testing.T) {
	tok := NewTokenizer(nil)

	if got := tok.Tokenize(""); len(got) != 0 {
		t.Errorf("empty input should produce no tokens, got %v", got)
	}
	if got := tok.Tokenize("   \t\n\r   "); len(got) != 0 {
		t.Errorf("whitespace input should produce no tokens, got %v", got)
	}
}

func TestTokenizePunctuationSeparates(t *testing.T) {
	tok := NewTokenizer(nil)

	got := tok.Tokenize("hello! world? test... end.")
	want := []string{"hello", "world", "test", "end"}
	if !equalTokens(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeUnicode(t *testing.T) {
	tok := NewTokenizer(nil)

	got := tok.Tokenize("café résumé naïve")
	want := []string{"café", "résumé", "naïve"}
	if !equalTokens(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeIsPure(t *testing.T) {
	tok := NewTokenizer([]string{"the"})

	text := "The cat sat on the mat"
	first := tok.Tokenize(text)
	second := tok.Tokenize(text)

	if !equalTokens(first, second) {
		t.Errorf("repeated tokenization differs: %v vs %v", first, second)
	}
}

func TestStopwordCaseInsensitive(t *testing.T) {
	tok := NewTokenizer([]string{"THE", "A"})

	got := tok.Tokenize("The cat and the dog")
	for _, w := range got {
		if w == "the" {
			t.Errorf("stopword should be filtered regardless of list case")
		}
	}
}

func TestAddRemoveStopword(t *testing.T) {
	tok := NewTokenizer([]string{"the"})

	got := tok.Tokenize("the cat")
	if !equalTokens(got, []string{"cat"}) {
		t.Errorf("expected 'the' filtered, got %v", got)
	}

	tok.RemoveStopword("the")
	got = tok.Tokenize("the cat")
	if !equalTokens(got, []string{"the", "cat"}) {
		t.Errorf("expected 'the' kept after removal, got %v", got)
	}

	tok.AddStopword("the")
	got = tok.Tokenize("the cat")
	if !equalTokens(got, []string{"cat"}) {
		t.Errorf("expected 'the' filtered after re-adding, got %v", got)
	}
}

func TestDefaultStopwordsFiltered(t *testing.T) {
	tok := NewTokenizer(DefaultStopwords)

	got := tok.Tokenize("this is the best of all worlds")
	want := []string{"best", "worlds"}
	if !equalTokens(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalizerApplied(t *testing.T) {
	tok := NewTokenizer(nil)

	syn := NewSynonyms()
	syn.AddGroup("game", "games", "gaming", "gamers")
	tok.SetNormalizer(syn.Normalize)

	got := tok.Tokenize("gaming tools gamers love")
	want := []string{"game", "tools", "game", "love"}
	if !equalTokens(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalizerRunsBeforeStopwords(t *testing.T) {
	// A normalizer that maps onto a stopword must cause the token to drop.
	tok := NewTokenizer([]string{"the"})
	tok.SetNormalizer(func(w string) string {
		if w == "article" {
			return "the"
		}
		return w
	})

	got := tok.Tokenize("article cat")
	if !equalTokens(got, []string{"cat"}) {
		t.Errorf("normalized stopword should be filtered, got %v", got)
	}
}

func TestNormalizerEmptyDropsToken(t *testing.T) {
	tok := NewTokenizer(nil)
	tok.SetNormalizer(func(w string) string {
		if w == "noise" {
			return ""
		}
		return w
	})

	got := tok.Tokenize("signal noise signal")
	want := []string{"signal", "signal"}
	if !equalTokens(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestStemNormalizer(t *testing.T) {
	tok := NewTokenizer(nil)
	tok.SetNormalizer(Stem)

	got := tok.Tokenize("running runs runner")
	// All three share the stem "run" modulo Porter's -er handling.
	for _, w := range got {
		if !strings.HasPrefix(w, "run") {
			t.Errorf("token %q should stem to a run- form", w)
		}
	}
}

func TestChainComposesNormalizers(t *testing.T) {
	syn := NewSynonyms()
	syn.AddGroup("run", "sprint")

	upperDrop := func(w string) string {
		if w == "skip" {
			return ""
		}
		return w
	}

	chain := Chain(syn.Normalize, upperDrop)

	if got := chain("sprint"); got != "run" {
		t.Errorf("Chain(sprint) = %q, want run", got)
	}
	if got := chain("skip"); got != "" {
		t.Errorf("Chain(skip) = %q, want empty", got)
	}
	if got := chain("walk"); got != "walk" {
		t.Errorf("Chain(walk) = %q, want walk", got)
	}
}

func TestChainShortCircuitsOnEmpty(t *testing.T) {
	called := false
	first := func(string) string { return "" }
	second := func(w string) string {
		called = true
		return w
	}

	if got := Chain(first, second)("anything"); got != "" {
		t.Errorf("chain should return empty, got %q", got)
	}
	if called {
		t.Error("later normalizers should not run after a drop")
	}
}

// Helper function for comparing token lists
func equalTokens(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
