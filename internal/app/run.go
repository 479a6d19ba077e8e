package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/fontsprite/internal/ctxlog"
	"github.com/vk/fontsprite/internal/fsutil"
	"github.com/vk/fontsprite/internal/sanitize"
)

// GlyphResult records the outcome of rendering a single character. It is a
// value, not an exception: failures are counted by the batch loop and never
// interrupt the remaining characters.
type GlyphResult struct {
	Char rune
	Path string
	Err  error
}

const bannerWidth = 60

// Run executes the batch: it creates the output directory, renders every
// configured character in input order, and prints the progress and summary
// blocks. It returns a non-nil error if any character failed, so the process
// exit code reflects partial failures even though the run completed.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := fsutil.EnsureDir(a.config.OutputDir); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", a.config.OutputDir, err)
	}

	chars := []rune(a.config.Characters)
	a.printBanner(len(chars))

	successCount := 0
	failCount := 0

	for _, ch := range chars {
		result := a.generateOne(ctx, ch)

		fmt.Fprintf(a.outW, "Generating '%c' → %s... ", result.Char, filepath.Base(result.Path))
		if result.Err != nil {
			fmt.Fprintln(a.outW, "✗")
			fmt.Fprintf(a.errW, "✗ Error generating sprite for '%c': %v\n", result.Char, result.Err)
			failCount++
			continue
		}
		fmt.Fprintln(a.outW, "✓")
		successCount++
	}

	a.printSummary(successCount, failCount, len(chars))
	a.logger.Debug("App.Run method finished.", "successful", successCount, "failed", failCount)

	if failCount > 0 {
		return fmt.Errorf("%d of %d sprites failed to generate", failCount, len(chars))
	}
	return nil
}

// generateOne renders a single character into the output directory, deriving
// the file name from the sanitized character.
func (a *App) generateOne(ctx context.Context, ch rune) GlyphResult {
	name := sanitize.Filename(ch) + ".png"
	path := filepath.Join(a.config.OutputDir, name)

	err := a.renderer.RenderChar(ctx, ch, path)
	return GlyphResult{Char: ch, Path: path, Err: err}
}

func (a *App) printBanner(total int) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(a.outW, rule)
	fmt.Fprintln(a.outW, "Font to Sprite Generator")
	fmt.Fprintln(a.outW, rule)
	fmt.Fprintf(a.outW, "Font File:     %s\n", a.config.FontPath)
	fmt.Fprintf(a.outW, "Characters:    %s (%d total)\n", a.config.Characters, total)
	fmt.Fprintf(a.outW, "Output Dir:    %s\n", a.config.OutputDir)
	fmt.Fprintf(a.outW, "Dimensions:    %dx%d pixels\n", a.config.Width, a.config.Height)
	fmt.Fprintln(a.outW, rule)
	fmt.Fprintln(a.outW)
}

func (a *App) printSummary(successCount, failCount, total int) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(a.outW)
	fmt.Fprintln(a.outW, rule)
	fmt.Fprintln(a.outW, "Generation Summary")
	fmt.Fprintln(a.outW, rule)
	fmt.Fprintf(a.outW, "✓ Successful: %d\n", successCount)
	fmt.Fprintf(a.outW, "✗ Failed:     %d\n", failCount)
	fmt.Fprintf(a.outW, "Total:        %d\n", total)
	fmt.Fprintln(a.outW, rule)
}
