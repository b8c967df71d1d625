/*
Package config manages the TOML configuration shared by the kompositum
commands. Every field has a built-in default; a config file only needs the
values it changes.

	[dictionary]
	path = "dictionaries/wordlist-german.txt"
	stopwords = ""

	[splitter]
	cache_size = 100000
	min_part_length = 4
	max_steps = 100000
	workers = 4

	[pipeline]
	stem = false
	fold = false

	[log]
	level = "info"
*/
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/kerem-kaynak/kompositum/pkg/compound"
)

// Config holds the entire config structure.
type Config struct {
	Dictionary DictionaryConfig `toml:"dictionary"`
	Splitter   SplitterConfig   `toml:"splitter"`
	Pipeline   PipelineConfig   `toml:"pipeline"`
	Log        LogConfig        `toml:"log"`
}

// DictionaryConfig locates the word list and optional stop list.
type DictionaryConfig struct {
	Path      string `toml:"path"`
	Stopwords string `toml:"stopwords"`
}

// SplitterConfig tunes compound splitting.
type SplitterConfig struct {
	CacheSize     int `toml:"cache_size"`
	MinPartLength int `toml:"min_part_length"`
	MaxSteps      int `toml:"max_steps"`
	Workers       int `toml:"workers"`
}

// PipelineConfig controls post-processing of compound parts.
type PipelineConfig struct {
	Stem bool `toml:"stem"`
	Fold bool `toml:"fold"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dictionary: DictionaryConfig{
			Path: "dictionaries/wordlist-german.txt",
		},
		Splitter: SplitterConfig{
			CacheSize:     compound.DefaultCacheSize,
			MinPartLength: compound.MinPartLength,
			MaxSteps:      compound.DefaultMaxSteps,
			Workers:       4,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Warn("unknown config key", "path", path, "key", key.String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.Dictionary.Path == "" {
		errs = append(errs, errors.New("dictionary.path must be set"))
	}
	if c.Splitter.CacheSize < 0 {
		errs = append(errs, errors.New("splitter.cache_size must not be negative"))
	}
	if c.Splitter.MinPartLength < 1 {
		errs = append(errs, errors.New("splitter.min_part_length must be at least 1"))
	}
	if c.Splitter.MaxSteps < 0 {
		errs = append(errs, errors.New("splitter.max_steps must not be negative"))
	}
	if c.Splitter.Workers < 1 {
		errs = append(errs, errors.New("splitter.workers must be at least 1"))
	}
	return errors.Join(errs...)
}

// SplitterOptions converts the splitter section into compound options.
func (c *Config) SplitterOptions(logger *log.Logger) compound.Options {
	return compound.Options{
		CacheSize:     c.Splitter.CacheSize,
		MinPartLength: c.Splitter.MinPartLength,
		MaxSteps:      c.Splitter.MaxSteps,
		Logger:        logger,
	}
}
