package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kerem-kaynak/kompositum/internal/logger"
	"github.com/kerem-kaynak/kompositum/pkg/compound"
	"github.com/kerem-kaynak/kompositum/pkg/tokenizer"
)

const (
	iterations = 100000
	warmup     = 1000
	boxWidth   = 62

	// ANSI color codes
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

func main() {
	dictPath := "dictionaries/wordlist-german.txt"
	if len(os.Args) > 1 {
		dictPath = os.Args[1]
	}
	l := logger.New("benchmark")

	// Load dictionary
	fmt.Print("Loading German word list... ")
	start := time.Now()
	dict, err := compound.NewDictionary(dictPath)
	if err != nil {
		fmt.Println()
		l.Fatal("loading dictionary", "err", err)
	}
	defer dict.Close()
	fmt.Printf("done (%d words in %v)\n", dict.WordCount(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	splitter := compound.NewSplitter(dict, compound.DefaultOptions())
	tok := tokenizer.NewTokenizer(splitter, tokenizer.Config{})

	// Test data
	singleWord := "wärmedämmung"
	longCompound := "verkehrsunfallstellenbericht"
	sentence := "Der Polizeibericht zum Verkehrsunfall und die Wärmedämmung der Stahlbetondecke"

	// Full pipeline benchmarks
	printHeader("FULL PIPELINE THROUGHPUT")
	bench("Single word", func() { tok.Tokenize(singleWord) })
	bench("Long compound", func() { tok.Tokenize(longCompound) })
	bench("Sentence (12 words)", func() { tok.Tokenize(sentence) })
	printFooter()
	fmt.Println()

	// Component breakdown
	printHeader("COMPONENT BREAKDOWN")
	bench("Dictionary query", func() {
		dict.Query(longCompound)
	})
	candidates := compound.ExtractCandidates(longCompound, dict, compound.MinPartLength)
	bench("Candidate extraction", func() {
		compound.ExtractCandidates(longCompound, dict, compound.MinPartLength)
	})
	bench("Segment", func() {
		compound.Segment(longCompound, candidates)
	})
	bench("Clean", func() {
		tok.Clean(sentence)
	})

	splitter.ClearCache()
	splitter.Split(singleWord)
	bench("Split (cache hit)", func() {
		splitter.Split(singleWord)
	})

	bench("Split (cache miss)", func() {
		splitter.ClearCache()
		splitter.Split(singleWord)
	})
	printFooter()
}

func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	// Truncate name if too long
	displayName := name
	if len(displayName) > 26 {
		displayName = displayName[:26]
	}

	// Format with colors - build plain string for padding, colored for display
	plain := fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", displayName, opsPerSec, nsPerOp)
	padded := padLine(plain)

	// Now colorize the padded string
	colored := fmt.Sprintf("  %-26s %s%10.0f%s ops/sec %s%8.0f%s ns",
		displayName,
		colorGreen, opsPerSec, colorReset,
		colorYellow, nsPerOp, colorReset)

	// Calculate how much padding we added
	extraPad := len(padded) - len(plain)
	if extraPad > 0 {
		colored += strings.Repeat(" ", extraPad)
	}

	fmt.Println(colorDim + "│" + colorReset + colored + colorDim + "│" + colorReset)
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	printTitleRow("  " + title)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}

func printTitleRow(content string) {
	fmt.Println(colorDim + "│" + colorReset + colorCyan + padLine(content) + colorReset + colorDim + "│" + colorReset)
}
