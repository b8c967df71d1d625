package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/kerem-kaynak/kompositum/internal/config"
	"github.com/kerem-kaynak/kompositum/internal/engine"
	"github.com/kerem-kaynak/kompositum/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	dictPath := flag.String("dict", "", "Path to the word list (overrides config)")
	tokenize := flag.Bool("t", false, "Run the full text pipeline instead of splitting single words")
	debug := flag.Bool("d", false, "Toggle debug logging")
	flag.Usage = printUsage
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("loading config", "err", err)
	}
	if *dictPath != "" {
		cfg.Dictionary.Path = *dictPath
	}
	if *debug {
		cfg.Log.Level = "debug"
	}
	logger.SetLevel(cfg.Log.Level)
	l := logger.New("kompositum")

	e, err := engine.New(cfg, l)
	if err != nil {
		l.Fatal("loading dictionary", "err", err)
	}
	defer e.Close()

	run := func(text string) any {
		if *tokenize {
			return e.Tokenizer.Tokenize(text)
		}
		parts, err := e.Splitter.SplitAll(context.Background(), strings.Fields(text), cfg.Splitter.Workers)
		if err != nil {
			l.Error("splitting", "err", err)
			return nil
		}
		return parts
	}

	// If text provided as argument, process and exit
	if flag.NArg() > 0 {
		printJSON(run(strings.Join(flag.Args(), " ")))
		return
	}

	// Interactive mode
	fmt.Fprintln(os.Stderr, "German compound splitter (interactive mode)")
	fmt.Fprintf(os.Stderr, "Dictionary loaded: %d words\n", e.Dict.WordCount())
	fmt.Fprintln(os.Stderr, "Type words or a sentence, press Enter to split. Ctrl+D to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stderr, "> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		printJSON(run(text))
	}
	if err := scanner.Err(); err != nil {
		l.Error("reading input", "err", err)
	}
}

func printJSON(v any) {
	output, err := json.Marshal(v)
	if err != nil {
		log.Error("encoding output", "err", err)
		return
	}
	fmt.Println(string(output))
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: kompositum [flags] [word...]")
	fmt.Fprintln(os.Stderr, "       kompositum [flags]            (interactive mode)")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}
