package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestRun_WrongArgumentCount(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"only-one-argument"})

	// --- Assert ---
	require.Error(t, err, "run() should return an error for a malformed invocation")
	require.Contains(t, out.String(), "Usage:", "Expected usage text to be printed to the output buffer")
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tmpDir := t.TempDir()
	fontPath := filepath.Join(tmpDir, "test-font.ttf")
	require.NoError(t, os.WriteFile(fontPath, goregular.TTF, 0o644))
	outputDir := filepath.Join(tmpDir, "sprites")

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	args := []string{fontPath, "GO7", outputDir, "32", "32"}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err)
	for _, name := range []string{"G.png", "O.png", "7.png"} {
		assert.FileExists(t, filepath.Join(outputDir, name))
	}

	stdout := out.String()
	assert.True(t, strings.Contains(stdout, "✓ Successful: 3"), "summary should report 3 successes")
	assert.True(t, strings.Contains(stdout, "Total:        3"), "summary should report 3 total")
}

func TestRun_MissingFont(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	args := []string{"/no/such/font.ttf", "A", t.TempDir(), "32", "32"}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, errOut.String(), "not found")
}
