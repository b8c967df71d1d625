package compound

import (
	"reflect"
	"testing"
)

func TestExtractCandidates(t *testing.T) {
	dict := mustDictionary(t, "Haus", "Tür", "haus", "Garten", "ABER", "garten", "Gartenhaus", "Tor")

	// "haus" and "garten" come later and replace the noun entries.
	got := ExtractCandidates("Gartenhaus", dict, 0)
	want := []Candidate{
		{Start: 0, End: 9, Word: "gartenhaus"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractCandidates(%q) = %+v, want %+v", "Gartenhaus", got, want)
	}
}

func TestExtractCandidates_Filter(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		token    string
		expected []Candidate
	}{
		{
			name:     "lowercase entry",
			words:    []string{"aber"},
			token:    "aberglaube",
			expected: nil,
		},
		{
			name:     "all uppercase entry",
			words:    []string{"ABER"},
			token:    "aberglaube",
			expected: nil,
		},
		{
			name:     "short entry",
			words:    []string{"Tor"},
			token:    "torwart",
			expected: nil,
		},
		{
			name:  "sorted by start",
			words: []string{"Wart", "Torwart", "Glaube"},
			token: "torwart",
			expected: []Candidate{
				{Start: 0, End: 6, Word: "torwart"},
				{Start: 3, End: 6, Word: "wart"},
			},
		},
		{
			name:  "rune offsets",
			words: []string{"Größe", "Ordnung"},
			token: "Größenordnung",
			expected: []Candidate{
				{Start: 0, End: 4, Word: "größe"},
				{Start: 6, End: 12, Word: "ordnung"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCandidates(tt.token, mustDictionary(t, tt.words...), MinPartLength)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractCandidates(%q) = %+v, want %+v", tt.token, got, tt.expected)
			}
		})
	}
}

func TestExtractCandidates_MinLength(t *testing.T) {
	dict := mustDictionary(t, "Haus", "Tür")

	tests := []struct {
		minLen   int
		expected []Candidate
	}{
		{0, []Candidate{{Start: 0, End: 3, Word: "haus"}}},
		{4, []Candidate{{Start: 0, End: 3, Word: "haus"}}},
		{3, []Candidate{{Start: 0, End: 3, Word: "haus"}, {Start: 4, End: 6, Word: "tür"}}},
		{5, nil},
	}

	for _, tt := range tests {
		got := ExtractCandidates("Haustür", dict, tt.minLen)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("ExtractCandidates(%q, %d) = %+v, want %+v", "Haustür", tt.minLen, got, tt.expected)
		}
	}
}
