package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/kerem-kaynak/kompositum/internal/config"
	"github.com/kerem-kaynak/kompositum/internal/engine"
	"github.com/kerem-kaynak/kompositum/internal/logger"
	"github.com/kerem-kaynak/kompositum/pkg/server"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	dictPath := flag.String("dict", "", "Path to the word list (overrides config)")
	debug := flag.Bool("d", false, "Toggle debug logging")
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

	// stdout carries the protocol, so logs go to stderr
	l := logger.New("kompositumd")

	e, err := engine.New(cfg, l)
	if err != nil {
		l.Fatal("loading dictionary", "err", err)
	}
	defer e.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(e.Dict, e.Splitter, e.Tokenizer, os.Stdin, os.Stdout)
	srv.SetWorkers(cfg.Splitter.Workers)
	srv.SetLogger(l)

	if err := srv.Serve(ctx); err != nil {
		if ctx.Err() != nil {
			l.Info("shutting down", "reason", context.Cause(ctx))
			return
		}
		l.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
