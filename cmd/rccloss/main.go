// Package main provides the rccloss CLI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nianfudong/RCC-loss/loss"
)

const version = "v0.1.0-dev"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(os.Getenv("RCCLOSS_LOG_LEVEL"))}))

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

// run dispatches a subcommand, writing results to stdout.
func run(args []string, stdout io.Writer, logger *slog.Logger) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "rccloss %s\n", version)
		return nil
	case "layers":
		for _, name := range loss.DefaultRegistry.Types() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	case "eval":
		if len(args) != 2 {
			return fmt.Errorf("usage: rccloss eval <request.json>")
		}
		return evalFile(args[1], stdout, logger)
	default:
		usage(stdout)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "rccloss - relational coordinate loss")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version              Show version")
	fmt.Fprintln(w, "  layers               List registered loss layers")
	fmt.Fprintln(w, "  eval <request.json>  Run forward and backward on a request file")
}

// logLevel maps RCCLOSS_LOG_LEVEL to a slog level; unknown values mean info.
func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
