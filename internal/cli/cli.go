package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/vk/fontsprite/internal/app"
	"github.com/vk/fontsprite/internal/fsutil"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// fontExtensions are the recognized font file extensions. Anything else is
// accepted with a warning: the font parser has the final say.
var fontExtensions = []string{".otf", ".ttf"}

const usageText = `Usage: fontsprite <font_file> <characters> <output_dir> <width> <height>

Arguments:
  font_file    Path to the OTF/TTF font file.
  characters   Characters to render, one sprite each, in order.
  output_dir   Directory for the generated PNG files (created if missing).
  width        Sprite width in pixels.
  height       Sprite height in pixels.

Example:
  fontsprite assets/fonts/game.otf "ABCDEF" assets/sprites/letters 32 32
`

// Parse processes command-line arguments. It returns a populated app.Config
// or an ExitError. Validation diagnostics and non-fatal warnings are written
// to errW; the usage text goes to outW.
func Parse(args []string, outW, errW io.Writer) (*app.Config, error) {
	slog.Debug("CLI parser started.")

	if len(args) != 5 {
		fmt.Fprint(outW, usageText)
		return nil, &ExitError{Code: 1, Message: "expected exactly 5 arguments"}
	}

	fontPath := args[0]
	characters := args[1]
	outputDir := args[2]

	width, err := strconv.Atoi(args[3])
	if err != nil {
		fmt.Fprintln(errW, "✗ Error: Width and height must be integers")
		return nil, &ExitError{Code: 1, Message: fmt.Sprintf("invalid width %q", args[3])}
	}
	height, err := strconv.Atoi(args[4])
	if err != nil {
		fmt.Fprintln(errW, "✗ Error: Width and height must be integers")
		return nil, &ExitError{Code: 1, Message: fmt.Sprintf("invalid height %q", args[4])}
	}
	slog.Debug("Arguments parsed successfully.")

	info, err := os.Stat(fontPath)
	if err != nil || info.IsDir() {
		fmt.Fprintf(errW, "✗ Error: Font file '%s' not found\n", fontPath)
		return nil, &ExitError{Code: 1, Message: fmt.Sprintf("font file %q not found", fontPath)}
	}

	if !fsutil.HasAnyExtension(fontPath, fontExtensions...) {
		fmt.Fprintln(errW, "⚠ Warning: Font file should be .otf or .ttf format")
	}

	if width <= 0 || height <= 0 {
		fmt.Fprintln(errW, "✗ Error: Width and height must be positive integers")
		return nil, &ExitError{Code: 1, Message: "width and height must be positive"}
	}

	if characters == "" {
		fmt.Fprintln(errW, "✗ Error: No characters specified")
		return nil, &ExitError{Code: 1, Message: "no characters specified"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		FontPath:   fontPath,
		Characters: characters,
		OutputDir:  outputDir,
		Width:      width,
		Height:     height,
	})
	if err != nil {
		return nil, &ExitError{Code: 1, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "font", fontPath, "output_dir", outputDir)
	return config, nil
}
