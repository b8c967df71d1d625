// Package engine wires a dictionary, splitter and tokenizer from a config.
package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kerem-kaynak/kompositum/internal/config"
	"github.com/kerem-kaynak/kompositum/pkg/compound"
	"github.com/kerem-kaynak/kompositum/pkg/tokenizer"
)

// Engine bundles the components built from one configuration.
type Engine struct {
	Dict      *compound.Dictionary
	Splitter  *compound.Splitter
	Tokenizer *tokenizer.Tokenizer
}

// New loads the dictionary and stop list named in cfg.
func New(cfg *config.Config, logger *log.Logger) (*Engine, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	start := time.Now()
	dict, err := compound.NewDictionary(cfg.Dictionary.Path, compound.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	logger.Info("dictionary loaded",
		"path", cfg.Dictionary.Path,
		"words", dict.WordCount(),
		"took", time.Since(start).Round(time.Millisecond))

	tcfg := tokenizer.Config{
		Stem: cfg.Pipeline.Stem,
		Fold: cfg.Pipeline.Fold,
	}
	if cfg.Dictionary.Stopwords != "" {
		sw, err := tokenizer.LoadStopwords(cfg.Dictionary.Stopwords)
		if err != nil {
			dict.Close()
			return nil, fmt.Errorf("%w: stopwords: %w", compound.ErrConfiguration, err)
		}
		tcfg.Stopwords = sw
	}

	splitter := compound.NewSplitter(dict, cfg.SplitterOptions(logger))
	return &Engine{
		Dict:      dict,
		Splitter:  splitter,
		Tokenizer: tokenizer.NewTokenizer(splitter, tcfg),
	}, nil
}

// Close releases dictionary resources.
func (e *Engine) Close() error {
	return e.Dict.Close()
}
