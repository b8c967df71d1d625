package compound

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	ahocorasick "github.com/BobuSumisu/aho-corasick"
	"github.com/blevesearch/vellum"
	"github.com/charmbracelet/log"
)

// maxLineBytes bounds a single dictionary line.
const maxLineBytes = 1 << 20

// Entry is a dictionary word as it appeared in the source list.
type Entry struct {
	Surface     string
	Capitalized bool
}

// Match is a dictionary key found inside a query string.
// End is the rune index of the last matched character.
type Match struct {
	End   int
	Word  string
	Entry Entry
}

// Dictionary maps lowercase word forms to their entries and finds every
// registered word occurring inside a query. It is immutable once built and
// safe for concurrent use.
type Dictionary struct {
	keys    []string // sorted lowercase keys, index == FST value == pattern id
	entries []Entry
	lines   int

	fst     *vellum.FST
	fstData []byte
	trie    *ahocorasick.Trie
}

// DictionaryOption configures dictionary construction.
type DictionaryOption func(*dictionaryOptions)

type dictionaryOptions struct {
	logger *log.Logger
}

// WithLogger sets the logger used while building the dictionary.
func WithLogger(l *log.Logger) DictionaryOption {
	return func(o *dictionaryOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewDictionary loads a word list, one entry per line, from path.
func NewDictionary(path string, opts ...DictionaryOption) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open dictionary: %w", ErrConfiguration, err)
	}
	defer file.Close()

	return NewDictionaryFromReader(file, opts...)
}

// NewDictionaryFromReader builds a dictionary from a line-oriented reader.
func NewDictionaryFromReader(r io.Reader, opts ...DictionaryOption) (*Dictionary, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var words []string
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read dictionary: %w", ErrConfiguration, err)
	}

	return NewDictionaryFromWords(words, opts...)
}

// NewDictionaryFromWords builds a dictionary from raw words. Later words
// replace earlier ones with the same lowercase form.
func NewDictionaryFromWords(words []string, opts ...DictionaryOption) (*Dictionary, error) {
	o := dictionaryOptions{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}

	latest := make(map[string]Entry, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		latest[strings.ToLower(word)] = Entry{
			Surface:     word,
			Capitalized: startsUpper(word),
		}
	}

	d := &Dictionary{
		keys:    make([]string, 0, len(latest)),
		entries: make([]Entry, 0, len(latest)),
		lines:   len(words),
	}
	for key := range latest {
		d.keys = append(d.keys, key)
	}
	sort.Strings(d.keys)
	for _, key := range d.keys {
		d.entries = append(d.entries, latest[key])
	}

	if err := d.buildFST(); err != nil {
		return nil, err
	}
	d.buildAutomaton()

	o.logger.Debug("dictionary built", "lines", d.lines, "keys", len(d.keys))
	return d, nil
}

// buildFST stores the sorted keys in an in-memory FST keyed to their ordinal.
func (d *Dictionary) buildFST() error {
	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return err
	}

	for i, key := range d.keys {
		if err := builder.Insert([]byte(key), uint64(i)); err != nil {
			builder.Close()
			return fmt.Errorf("insert %q: %w", key, err)
		}
	}
	if err := builder.Close(); err != nil {
		return err
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return err
	}
	d.fst = fst
	d.fstData = buf.Bytes()
	return nil
}

// buildAutomaton compiles the keys into the substring matcher. Pattern ids
// follow key order.
func (d *Dictionary) buildAutomaton() {
	if len(d.keys) == 0 {
		return
	}
	d.trie = ahocorasick.NewTrieBuilder().AddStrings(d.keys).Build()
}

// Query returns every registered key occurring in text, ordered by
// increasing end offset. text must already be lowercase.
func (d *Dictionary) Query(text string) []Match {
	if d.trie == nil || text == "" {
		return nil
	}

	hits := d.trie.MatchString(text)
	if len(hits) == 0 {
		return nil
	}

	runeOf := runeOffsets(text)
	matches := make([]Match, 0, len(hits))
	for _, hit := range hits {
		id := int(hit.Pattern())
		key := d.keys[id]
		last := int(hit.Pos()) + len(key) - 1
		matches = append(matches, Match{
			End:   runeOf[last],
			Word:  key,
			Entry: d.entries[id],
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].End < matches[j].End
	})
	return matches
}

// Lookup returns the entry registered for word (case-insensitive).
func (d *Dictionary) Lookup(word string) (Entry, bool) {
	if d.fst == nil {
		return Entry{}, false
	}
	id, exists, err := d.fst.Get([]byte(strings.ToLower(word)))
	if err != nil || !exists {
		return Entry{}, false
	}
	return d.entries[id], true
}

// Contains checks if a word exists in the dictionary (case-insensitive).
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.Lookup(word)
	return ok
}

// WordCount returns the number of distinct lowercase keys.
func (d *Dictionary) WordCount() int {
	return len(d.keys)
}

// LineCount returns the number of lines read from the source.
func (d *Dictionary) LineCount() int {
	return d.lines
}

// WriteFST writes the compiled key FST. Values are key ordinals.
func (d *Dictionary) WriteFST(w io.Writer) error {
	_, err := w.Write(d.fstData)
	return err
}

// Close releases FST resources.
func (d *Dictionary) Close() error {
	if d.fst != nil {
		err := d.fst.Close()
		d.fst = nil
		return err
	}
	return nil
}

// runeOffsets maps each byte index of s to the index of the rune it belongs to.
func runeOffsets(s string) []int {
	offsets := make([]int, len(s))
	for i, n := 0, 0; i < len(s); n++ {
		_, width := utf8.DecodeRuneInString(s[i:])
		for j := i; j < i+width; j++ {
			offsets[j] = n
		}
		i += width
	}
	return offsets
}

func startsUpper(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

// isAllUpper reports whether s has at least one cased rune and no lowercase
// ones.
func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}
