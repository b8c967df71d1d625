package tokenizer

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"strings"
)

//go:embed stopwords_de.txt
var defaultStopwords string

// Stopwords is a set of lowercase words dropped before compound splitting.
type Stopwords struct {
	words map[string]struct{}
}

// DefaultStopwords returns the built-in German stop list.
func DefaultStopwords() *Stopwords {
	sw, _ := ParseStopwords(strings.NewReader(defaultStopwords))
	return sw
}

// LoadStopwords reads a stop list from path.
func LoadStopwords(path string) (*Stopwords, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseStopwords(file)
}

// ParseStopwords reads a stop list in snowball format: one word at the start
// of each line, "|" starts a comment.
func ParseStopwords(r io.Reader) (*Stopwords, error) {
	sw := &Stopwords{words: make(map[string]struct{})}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '|'); i >= 0 {
			line = line[:i]
		}
		for _, word := range strings.Fields(line) {
			sw.words[strings.ToLower(word)] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sw, nil
}

// Contains reports whether word is a stop word. word must be lowercase.
func (s *Stopwords) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of stop words.
func (s *Stopwords) Len() int {
	return len(s.words)
}
