package tokenizer

import (
	"strings"
	"unicode"
)

// TokenType identifies the type of token.
type TokenType int

const (
	TokenWord TokenType = iota
	TokenNumber
	TokenSeparator
)

// RawToken is a run of text of a single type. Start and End are rune
// offsets.
type RawToken struct {
	Text  string
	Type  TokenType
	Start int
	End   int
}

// SplitWords splits text into runs of word characters (letters and digits)
// and separators. A word run that starts with a digit is a TokenNumber.
func SplitWords(text string) []RawToken {
	var tokens []RawToken
	runes := []rune(text)

	start := 0
	for start < len(runes) {
		word := isWordRune(runes[start])
		end := start + 1
		for end < len(runes) && isWordRune(runes[end]) == word {
			end++
		}

		typ := TokenSeparator
		if word {
			typ = TokenWord
			if unicode.IsDigit(runes[start]) {
				typ = TokenNumber
			}
		}
		tokens = append(tokens, RawToken{
			Text:  string(runes[start:end]),
			Type:  typ,
			Start: start,
			End:   end,
		})
		start = end
	}

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// stripNumbers removes a word's tail starting at its first digit.
func stripNumbers(word string) string {
	if i := strings.IndexFunc(word, unicode.IsDigit); i >= 0 {
		return word[:i]
	}
	return word
}
