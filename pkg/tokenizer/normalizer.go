package tokenizer

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizerFunc defines a single normalization step.
type NormalizerFunc func(string) string

// Normalizer applies a pipeline of normalization steps in order.
type Normalizer struct {
	steps []NormalizerFunc
}

// NewNormalizer creates a normalizer running steps in order. With no steps
// it returns its input unchanged.
func NewNormalizer(steps ...NormalizerFunc) *Normalizer {
	return &Normalizer{steps: steps}
}

// CleanNormalizer prepares raw text for word splitting. Umlauts and ß are
// kept so the text still matches dictionary entries.
func CleanNormalizer() *Normalizer {
	return NewNormalizer(RemoveControlChars, ExpandLigatures, Lowercase)
}

// WordNormalizer post-processes compound parts. stem applies the German
// snowball stemmer, fold reduces umlauts and ß to ASCII.
func WordNormalizer(stem, fold bool) *Normalizer {
	var steps []NormalizerFunc
	if stem {
		steps = append(steps, StemGerman)
	}
	if fold {
		steps = append(steps, ConvertEszett, NFKDDecompose, RemoveCombiningMarks)
	}
	return NewNormalizer(steps...)
}

// Normalize applies all configured steps in order.
func (n *Normalizer) Normalize(s string) string {
	for _, step := range n.steps {
		s = step(s)
	}
	return s
}

// NFKDDecompose applies Unicode NFKD normalization.
// Decomposes ä → a + combining_umlaut, ﬁ → fi, etc.
func NFKDDecompose(s string) string {
	return norm.NFKD.String(s)
}

// RemoveControlChars drops control characters other than whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// Lowercase applies German lowercasing rules.
func Lowercase(s string) string {
	return cases.Lower(language.German).String(s)
}

// ExpandLigatures expands æ→ae, œ→oe.
func ExpandLigatures(s string) string {
	s = strings.ReplaceAll(s, "æ", "ae")
	s = strings.ReplaceAll(s, "Æ", "Ae")
	s = strings.ReplaceAll(s, "œ", "oe")
	s = strings.ReplaceAll(s, "Œ", "Oe")
	return s
}

// ConvertEszett converts ß to ss.
// NFKD does not decompose ß, so it needs its own step.
func ConvertEszett(s string) string {
	return strings.ReplaceAll(s, "ß", "ss")
}

// RemoveCombiningMarks removes Unicode combining characters (category Mn).
func RemoveCombiningMarks(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, s)
}

// StemGerman applies the German Snowball stemmer.
func StemGerman(s string) string {
	stemmed, err := snowball.Stem(s, "german", true)
	if err != nil {
		return s
	}
	return stemmed
}
