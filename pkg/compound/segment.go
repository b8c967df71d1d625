// Package compound splits German compound nouns into dictionary words.
package compound

import "strings"

// linker is the character allowed between two compound parts.
const linker = 's'

// isPluralEnding reports whether s is a suffix that may close a compound
// without being a dictionary word itself.
func isPluralEnding(s []rune) bool {
	switch string(s) {
	case "e", "en", "n", "er", "s":
		return true
	}
	return false
}

// search holds the state of one segmentation call.
type search struct {
	token      []rune
	candidates []Candidate
	steps      int
	maxSteps   int
}

// Segment decomposes token into candidate words. Candidates must be sorted
// by start offset. An empty result means no decomposition was found.
func Segment(token string, candidates []Candidate) []string {
	words, _ := SegmentBudget(token, candidates, 0)
	return words
}

// SegmentBudget is Segment with a limit on visited search states. A
// maxSteps of zero or less means unlimited.
func SegmentBudget(token string, candidates []Candidate, maxSteps int) ([]string, error) {
	s := &search{
		token:      []rune(token),
		candidates: candidates,
		maxSteps:   maxSteps,
	}

	words, err := s.walk(0, 0, nil)
	if err != nil || len(words) == 0 {
		return nil, err
	}

	out := make([]string, len(words))
	copy(out, words)
	return out, nil
}

// walk tries the candidates from idx on at position pos, depth first.
// The first decomposition that reaches the end of the token wins.
func (s *search) walk(pos, idx int, acc []string) ([]string, error) {
	s.steps++
	if s.maxSteps > 0 && s.steps > s.maxSteps {
		return nil, ErrBudgetExceeded
	}

	if pos == len(s.token) {
		return acc, nil
	}
	if len(s.token)-pos <= 2 && isPluralEnding(s.token[pos:]) {
		return acc, nil
	}

	for ; idx < len(s.candidates); idx++ {
		c := s.candidates[idx]
		if c.Start < pos || c.End >= len(s.token) {
			continue
		}

		if c.Start == pos || (c.Start == pos+1 && s.token[pos] == linker) {
			words, err := s.walk(c.End+1, idx, append(acc, c.Word))
			if err != nil {
				return nil, err
			}
			if len(words) > 0 {
				return words, nil
			}
		}
	}

	return nil, nil
}

// Solve lowercases text and returns its compound parts, or nothing when the
// text does not decompose.
func Solve(text string, m Matcher) []string {
	lower := strings.ToLower(text)
	return Segment(lower, extractCandidates(lower, m, MinPartLength))
}
