package tokenizer

import (
	"strings"
	"unicode"
)

// CompoundSplitter decomposes a token into its compound parts, returning the
// lowercase token itself when it does not decompose.
type CompoundSplitter interface {
	Split(word string) []string
}

// Config controls the tokenizer pipeline.
type Config struct {
	Stopwords *Stopwords // nil uses DefaultStopwords
	Stem      bool       // stem output words with the German snowball stemmer
	Fold      bool       // fold umlauts and ß in output words
}

// Tokenizer turns free German text into classifier-ready tokens: numbers and
// punctuation are stripped, stop words dropped and compounds replaced by
// their parts.
type Tokenizer struct {
	splitter  CompoundSplitter
	stopwords *Stopwords
	clean     *Normalizer
	words     *Normalizer
}

// NewTokenizer creates a tokenizer around splitter.
func NewTokenizer(splitter CompoundSplitter, cfg Config) *Tokenizer {
	sw := cfg.Stopwords
	if sw == nil {
		sw = DefaultStopwords()
	}

	return &Tokenizer{
		splitter:  splitter,
		stopwords: sw,
		clean:     CleanNormalizer(),
		words:     WordNormalizer(cfg.Stem, cfg.Fold),
	}
}

// Clean lowercases text, drops numbers with the word characters following
// them, deletes punctuation and collapses whitespace.
func (t *Tokenizer) Clean(text string) string {
	text = t.clean.Normalize(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, raw := range SplitWords(text) {
		switch raw.Type {
		case TokenWord:
			b.WriteString(stripNumbers(raw.Text))
		case TokenSeparator:
			// punctuation is deleted, not replaced, so "Verkehrs-Unfall"
			// becomes one token
			if strings.IndexFunc(raw.Text, unicode.IsSpace) >= 0 {
				b.WriteByte(' ')
			}
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize returns the cleaned, compound-split tokens of text in order.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	for _, word := range strings.Fields(t.Clean(text)) {
		if t.stopwords.Contains(word) {
			continue
		}
		for _, part := range t.splitter.Split(word) {
			if part = t.words.Normalize(part); part != "" {
				tokens = append(tokens, part)
			}
		}
	}
	return tokens
}

// Process returns Tokenize's output joined by single spaces.
func (t *Tokenizer) Process(text string) string {
	return strings.Join(t.Tokenize(text), " ")
}
