package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iedon/happy-vibe-go/config"
	"github.com/iedon/happy-vibe-go/renderer"
	"github.com/iedon/happy-vibe-go/server"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run primes the page and, unless -build is given, serves it until SIGINT or SIGTERM.
// The return value is the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger := newLogger(stdout, cfg.LogLevel)
	logger.Info("starting", "signature", serverSignature(), "output", cfg.OutputPath, "build", cfg.Build)

	rend := renderer.New(cfg.OutputPath, renderer.WithMinify(cfg.Minify))
	if err := rend.Prime(); err != nil {
		logger.Error("prime", "output", cfg.OutputPath, "error", err)
		return 1
	}
	fmt.Fprintf(stdout, "Static HTML generated at %s\n", rend.OutputPath())

	if cfg.Build {
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, rend, logger, serverSignature())
	if err := srv.Start(ctx); err != nil {
		logger.Error("server", "error", err)
		return 1
	}
	return 0
}

// newLogger accepts the level names understood by slog; anything else logs at info.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
