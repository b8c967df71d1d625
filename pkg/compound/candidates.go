package compound

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// MinPartLength is the shortest dictionary word accepted as a compound part.
const MinPartLength = 4

// Matcher finds dictionary words inside a lowercase string.
type Matcher interface {
	Query(text string) []Match
}

// Candidate is a dictionary word matched at the inclusive rune span
// [Start, End] of a token.
type Candidate struct {
	Start int
	End   int
	Word  string
}

// ExtractCandidates returns the noun matches inside token that may serve as
// compound parts, sorted by start offset. Nouns shorter than minLen runes
// are dropped; minLen <= 0 means MinPartLength.
func ExtractCandidates(token string, m Matcher, minLen int) []Candidate {
	if minLen <= 0 {
		minLen = MinPartLength
	}
	return extractCandidates(strings.ToLower(token), m, minLen)
}

// extractCandidates expects lower to be lowercase already.
func extractCandidates(lower string, m Matcher, minLen int) []Candidate {
	matches := m.Query(lower)
	if len(matches) == 0 {
		return nil
	}

	candidates := make([]Candidate, 0, len(matches))
	for _, match := range matches {
		if !match.Entry.Capitalized || isAllUpper(match.Entry.Surface) {
			continue
		}
		if utf8.RuneCountInString(match.Entry.Surface) < minLen {
			continue
		}
		candidates = append(candidates, Candidate{
			Start: match.End - utf8.RuneCountInString(match.Word) + 1,
			End:   match.End,
			Word:  match.Word,
		})
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Start < candidates[j].Start
	})
	return candidates
}
