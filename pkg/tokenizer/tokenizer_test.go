package tokenizer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kerem-kaynak/kompositum/pkg/compound"
)

var testWords = []string{
	"Polizei", "Bericht", "Verkehr", "Unfall", "Stelle", "Brand", "Schutz",
	"Konzept", "Wärme", "Dämmung", "Arbeit", "Geber", "Haus", "laufen",
}

func newTestTokenizer(t testing.TB, cfg Config) *Tokenizer {
	t.Helper()
	dict, err := compound.NewDictionaryFromWords(testWords)
	if err != nil {
		t.Fatalf("Failed to build dictionary: %v", err)
	}
	t.Cleanup(func() { dict.Close() })

	return NewTokenizer(compound.NewSplitter(dict, compound.DefaultOptions()), cfg)
}

func TestTokenizer_Clean(t *testing.T) {
	tok := newTestTokenizer(t, Config{})

	tests := []struct {
		input    string
		expected string
	}{
		{"Der Unfall am 12.03.2024!", "der unfall am"},
		{"Verkehrs-Unfall", "verkehrsunfall"},
		{"„Polizeibericht“:  Brand\nin  Haus 3b", "polizeibericht brand in haus"},
		{"A1-Autobahn", "aautobahn"},
		{"", ""},
	}

	for _, tt := range tests {
		if result := tok.Clean(tt.input); result != tt.expected {
			t.Errorf("Clean(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestTokenizer_Tokenize(t *testing.T) {
	tok := newTestTokenizer(t, Config{})

	tests := []struct {
		input    string
		expected []string
	}{
		{
			input:    "Der Polizeibericht zum Verkehrsunfall",
			expected: []string{"polizei", "bericht", "verkehr", "unfall"},
		},
		{
			input:    "Wärmedämmung und Brandschutzkonzept",
			expected: []string{"wärme", "dämmung", "brand", "schutz", "konzept"},
		},
		{
			// words that do not decompose are kept as they are
			input:    "Gartenhaus brennt",
			expected: []string{"gartenhaus", "brennt"},
		},
		{
			input:    "Unfallstellen",
			expected: []string{"unfall", "stelle"},
		},
		{
			input:    "und der die das",
			expected: nil,
		},
	}

	for _, tt := range tests {
		result := tok.Tokenize(tt.input)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestTokenizer_Process(t *testing.T) {
	tok := newTestTokenizer(t, Config{})

	got := tok.Process("Arbeitsgeber melden Unfall.")
	if got != "arbeit geber melden unfall" {
		t.Errorf("Process = %q, want %q", got, "arbeit geber melden unfall")
	}
}

func TestTokenizer_Fold(t *testing.T) {
	tok := newTestTokenizer(t, Config{Fold: true})

	got := tok.Tokenize("Wärmedämmung")
	want := []string{"warme", "dammung"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize with Fold = %v, want %v", got, want)
	}
}

func TestTokenizer_Stem(t *testing.T) {
	tok := newTestTokenizer(t, Config{Stem: true})

	got := tok.Tokenize("Polizeiberichte")
	want := []string{StemGerman("polizei"), StemGerman("bericht")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize with Stem = %v, want %v", got, want)
	}
}

func TestTokenizer_CustomStopwords(t *testing.T) {
	sw, err := ParseStopwords(strings.NewReader("brennt | burns\n"))
	if err != nil {
		t.Fatalf("ParseStopwords failed: %v", err)
	}
	tok := newTestTokenizer(t, Config{Stopwords: sw})

	got := tok.Tokenize("Der Gartenhaus brennt")
	want := []string{"der", "gartenhaus"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}
