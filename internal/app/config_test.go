package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	valid := Config{
		FontPath:   "font.ttf",
		Characters: "ABC",
		OutputDir:  "out",
		Width:      32,
		Height:     32,
	}

	testCases := []struct {
		name      string
		mutate    func(*Config)
		expectErr bool
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{name: "missing font path", mutate: func(c *Config) { c.FontPath = "" }, expectErr: true},
		{name: "missing output dir", mutate: func(c *Config) { c.OutputDir = "" }, expectErr: true},
		{name: "zero width", mutate: func(c *Config) { c.Width = 0 }, expectErr: true},
		{name: "negative height", mutate: func(c *Config) { c.Height = -1 }, expectErr: true},
		{name: "empty characters", mutate: func(c *Config) { c.Characters = "" }, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)

			result, err := NewConfig(cfg)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, result)
		})
	}
}

func TestNewConfig_AppliesLoggingDefaults(t *testing.T) {
	t.Parallel()

	result, err := NewConfig(Config{
		FontPath:   "font.ttf",
		Characters: "A",
		OutputDir:  "out",
		Width:      8,
		Height:     8,
	})
	require.NoError(t, err)
	assert.Equal(t, "text", result.LogFormat)
	assert.Equal(t, "info", result.LogLevel)
}
