// Package testutil provides shared helpers for integration tests: a
// goroutine-safe capture buffer and an end-to-end harness that drives the
// exact production code path with an embedded test font.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vk/fontsprite/internal/app"
	"github.com/vk/fontsprite/internal/cli"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SpriteTestOptions configures a harness run. The zero value renders "ABC"
// at 32x32 with the embedded Go Regular font.
type SpriteTestOptions struct {
	Characters string
	Width      int
	Height     int

	// FontData replaces the embedded test font file content.
	FontData []byte
	// FontPath replaces the generated font path entirely (e.g. a missing file).
	FontPath string
	// Setup runs after the temp directories exist but before the app runs,
	// receiving the output directory path.
	Setup func(t *testing.T, outputDir string)
	// RawArgs bypasses argument construction entirely, for exercising the
	// validation layer with malformed invocations. It receives the font and
	// output directory paths prepared by the harness.
	RawArgs func(fontPath, outputDir string) []string
}

// SpriteTestResult holds the outcomes of a harness run.
type SpriteTestResult struct {
	Stdout    string
	Stderr    string
	Err       error
	OutputDir string
}

// RunSpriteTest provides a standardized harness for running the generator
// end to end: it writes a font file into a temp directory, invokes the
// production argument parsing and batch loop, and captures all output.
func RunSpriteTest(t *testing.T, opts SpriteTestOptions) *SpriteTestResult {
	t.Helper()

	if opts.Characters == "" {
		opts.Characters = "ABC"
	}
	if opts.Width == 0 {
		opts.Width = 32
	}
	if opts.Height == 0 {
		opts.Height = 32
	}
	if opts.FontData == nil {
		opts.FontData = goregular.TTF
	}

	tmpDir := t.TempDir()
	outputDir := filepath.Join(tmpDir, "sprites")

	fontPath := opts.FontPath
	if fontPath == "" {
		fontPath = filepath.Join(tmpDir, "test-font.ttf")
		require.NoError(t, os.WriteFile(fontPath, opts.FontData, 0o644))
	}

	if opts.Setup != nil {
		require.NoError(t, os.MkdirAll(outputDir, 0o755))
		opts.Setup(t, outputDir)
	}

	outBuf := &SafeBuffer{}
	errBuf := &SafeBuffer{}

	var args []string
	if opts.RawArgs != nil {
		args = opts.RawArgs(fontPath, outputDir)
	} else {
		args = []string{
			fontPath,
			opts.Characters,
			outputDir,
			strconv.Itoa(opts.Width),
			strconv.Itoa(opts.Height),
		}
	}

	runErr := func() error {
		config, err := cli.Parse(args, outBuf, errBuf)
		if err != nil {
			return err
		}
		spriteApp, err := app.NewApp(outBuf, errBuf, config)
		if err != nil {
			return err
		}
		return spriteApp.Run(context.Background())
	}()

	return &SpriteTestResult{
		Stdout:    outBuf.String(),
		Stderr:    errBuf.String(),
		Err:       runErr,
		OutputDir: outputDir,
	}
}

// CountFiles returns the number of regular files directly inside dir, or
// zero if the directory does not exist.
func CountFiles(t *testing.T, dir string) int {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0
	}
	require.NoError(t, err)

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			count++
		}
	}
	return count
}
