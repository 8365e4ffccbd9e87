package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/kitchenconv/internal/app"
	"github.com/vk/kitchenconv/internal/catalog"
	"github.com/vk/kitchenconv/internal/cli"
)

// main is the entrypoint for the kitchenconv application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		printSuggestions(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	kitchenApp, err := app.NewApp(outW, errW, appConfig)
	if err != nil {
		return err
	}

	return kitchenApp.Run(context.Background(), appConfig)
}

// printSuggestions writes the ranked "did you mean" list carried by
// unknown-name errors, closest candidate first.
func printSuggestions(w io.Writer, err error) {
	var names []string

	var unknownUnit *catalog.UnknownUnitError
	var unknownSubstance *catalog.UnknownSubstanceError
	switch {
	case errors.As(err, &unknownUnit):
		names = unknownUnit.Suggestions
	case errors.As(err, &unknownSubstance):
		names = unknownSubstance.Suggestions
	}
	if len(names) == 0 {
		return
	}

	fmt.Fprintln(w, "did you mean (closest first):")
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", name)
	}
}
