package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kerem-kaynak/kompositum/internal/logger"
	"github.com/kerem-kaynak/kompositum/pkg/compound"
)

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	dictPath := os.Args[1]
	command := os.Args[2]
	args := os.Args[3:]
	l := logger.New("dictmgr")

	dict, err := compound.NewDictionary(dictPath, compound.WithLogger(l))
	if err != nil {
		l.Fatal("loading dictionary", "err", err)
	}
	defer dict.Close()

	switch command {
	case "stats":
		fmt.Printf("Dictionary: %s\n", dictPath)
		fmt.Printf("Lines:      %d\n", dict.LineCount())
		fmt.Printf("Words:      %d\n", dict.WordCount())

	case "contains":
		requireArgs(args, "contains requires a word")
		word := args[0]
		if dict.Contains(word) {
			fmt.Printf("'%s' exists in dictionary\n", word)
		} else {
			fmt.Printf("'%s' NOT in dictionary\n", word)
			os.Exit(1)
		}

	case "lookup":
		requireArgs(args, "lookup requires at least one word")
		for _, word := range args {
			entry, ok := dict.Lookup(word)
			if !ok {
				fmt.Printf("%s\t-\n", word)
				continue
			}
			fmt.Printf("%s\t%s\tnoun=%v\n", word, entry.Surface, entry.Capitalized)
		}

	case "matches":
		requireArgs(args, "matches requires a word")
		for _, m := range dict.Query(strings.ToLower(args[0])) {
			fmt.Printf("end=%d\t%s\t%s\n", m.End, m.Word, m.Entry.Surface)
		}

	case "candidates":
		requireArgs(args, "candidates requires a word")
		for _, c := range compound.ExtractCandidates(args[0], dict, compound.MinPartLength) {
			fmt.Printf("[%d,%d]\t%s\n", c.Start, c.End, c.Word)
		}

	case "compile":
		requireArgs(args, "compile requires an output path")
		out, err := os.Create(args[0])
		if err != nil {
			l.Fatal("creating output", "err", err)
		}
		if err := dict.WriteFST(out); err != nil {
			out.Close()
			l.Fatal("writing FST", "err", err)
		}
		if err := out.Close(); err != nil {
			l.Fatal("closing output", "err", err)
		}
		fmt.Printf("FST written to %s (%d words)\n", args[0], dict.WordCount())

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func requireArgs(args []string, message string) {
	if len(args) == 0 {
		fmt.Println("Error: " + message)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: dictmgr <dictionary.txt> <command> [args...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  stats                    Show dictionary statistics")
	fmt.Println("  contains <word>          Check if word exists")
	fmt.Println("  lookup <word> [word...]  Show the stored entry of each word")
	fmt.Println("  matches <text>           List every dictionary word inside text")
	fmt.Println("  candidates <word>        List compound part candidates of word")
	fmt.Println("  compile <out.fst>        Write the compiled key FST")
}
