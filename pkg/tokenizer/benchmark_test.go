package tokenizer

import (
	"testing"
)

func BenchmarkTokenize_SingleWord(b *testing.B) {
	tok := newTestTokenizer(b, Config{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tok.Tokenize("Wärmedämmung")
	}
}

func BenchmarkTokenize_Sentence(b *testing.B) {
	tok := newTestTokenizer(b, Config{Stem: true})
	sentence := "Der Polizeibericht zum Verkehrsunfall und das Brandschutzkonzept der Arbeitsgeber"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tok.Tokenize(sentence)
	}
}

func BenchmarkClean(b *testing.B) {
	tok := newTestTokenizer(b, Config{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tok.Clean("„Polizeibericht“ vom 12.03.2024: Verkehrs-Unfall!")
	}
}
