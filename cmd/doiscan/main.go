// Package main is the entry point for doiscan, a command-line tool that
// extracts and validates DOIs in files, standard input, and web pages.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsamuelsen11/identifiers/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
