package sanitize

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename_KnownMappings(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    rune
		expected string
	}{
		{name: "space", input: ' ', expected: "space"},
		{name: "period", input: '.', expected: "period"},
		{name: "uppercase letter", input: 'A', expected: "A"},
		{name: "lowercase letter", input: 'z', expected: "z"},
		{name: "digit", input: '7', expected: "7"},
		{name: "exclamation", input: '!', expected: "exclamation"},
		{name: "slash", input: '/', expected: "slash"},
		{name: "backslash", input: '\\', expected: "backslash"},
		{name: "colon", input: ':', expected: "colon"},
		{name: "question mark", input: '?', expected: "question"},
		{name: "asterisk", input: '*', expected: "asterisk"},
		{name: "pipe", input: '|', expected: "pipe"},
		{name: "tilde", input: '~', expected: "tilde"},
		{name: "euro sign falls back to code point", input: '€', expected: "U20AC"},
		{name: "non-ascii letter maps to itself", input: 'é', expected: "é"},
		{name: "control character falls back", input: '\n', expected: "U000A"},
		{name: "nul falls back", input: 0, expected: "U0000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Filename(tc.input))
		})
	}
}

// TestFilename_PrintableASCII verifies the mapping is total, deterministic,
// and filesystem-safe across the whole printable ASCII range.
func TestFilename_PrintableASCII(t *testing.T) {
	t.Parallel()

	for ch := rune(0x20); ch <= 0x7E; ch++ {
		name := Filename(ch)

		require.NotEmpty(t, name, "Filename(%q) must not be empty", ch)
		assert.NotContains(t, name, "/", "Filename(%q) must not contain a path separator", ch)
		assert.NotContains(t, name, "\\", "Filename(%q) must not contain a path separator", ch)
		assert.NotContains(t, name, "\x00", "Filename(%q) must not contain NUL", ch)
		assert.Equal(t, name, Filename(ch), "Filename(%q) must be deterministic", ch)
	}
}

// TestFilename_CodePointFallback checks the "U"+hex form for characters that
// are neither in the punctuation table nor letters/digits.
func TestFilename_CodePointFallback(t *testing.T) {
	t.Parallel()

	for _, ch := range []rune{'€', '☃', '\t', 0x7F, 0x1F600} {
		name := Filename(ch)
		expected := fmt.Sprintf("U%04X", ch)
		assert.Equal(t, expected, name)
		assert.True(t, strings.HasPrefix(name, "U"))
	}
}

// TestFilename_PunctuationNamesAreDistinct guards against two characters
// silently colliding on the same output file.
func TestFilename_PunctuationNamesAreDistinct(t *testing.T) {
	t.Parallel()

	seen := make(map[string]rune)
	for ch, name := range specialNames {
		prev, dup := seen[name]
		require.False(t, dup, "characters %q and %q map to the same name %q", prev, ch, name)
		seen[name] = ch
	}
}
