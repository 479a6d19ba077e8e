package cli_behavior

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// copyFile duplicates src at dst, preserving content only.
func copyFile(t *testing.T, src, dst string) {
	t.Helper()

	data, err := os.ReadFile(src)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dst, data, 0o644))
}
