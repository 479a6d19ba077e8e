package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/fontsprite/internal/app"
	"github.com/vk/fontsprite/internal/cli"
)

// main is the entrypoint for the fontsprite application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	config, err := cli.Parse(args, outW, errW)
	if err != nil {
		return err
	}

	spriteApp, err := app.NewApp(outW, errW, config)
	if err != nil {
		return err
	}

	return spriteApp.Run(context.Background())
}
