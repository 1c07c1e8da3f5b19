package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/gentlemanautomaton/markercheck"
)

func main() {
	// Capture shutdown signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Make variables from a local .env file visible to env-bound flags
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	var cli CheckCmd
	app := kong.Parse(&cli, append(options(), kong.BindTo(ctx, (*context.Context)(nil)))...)

	err := app.Run(ctx)
	if errors.Is(err, markercheck.ErrValidationFailed) {
		// The report has already described each failure
		stop()
		os.Exit(1)
	}
	app.FatalIfErrorf(err)
}

func options() []kong.Option {
	return []kong.Option{
		kong.Name("markercheck"),
		kong.Description("Checks that every file with an extension beneath a directory contains a marker string."),
		kong.Configuration(YAML, configPaths...),
		kong.UsageOnError(),
	}
}
