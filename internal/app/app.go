package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/fontsprite/internal/raster"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	errW     io.Writer
	logger   *slog.Logger
	config   *Config
	renderer *raster.Renderer
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a renderer built
// from the configured font. Failing to read or parse the font is a fatal
// startup error: no per-character work has happened yet, so the whole run is
// rejected.
func NewApp(outW, errW io.Writer, config *Config) (*App, error) {
	logger := newLogger(config.LogLevel, config.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	fontData, err := os.ReadFile(config.FontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %q: %w", config.FontPath, err)
	}
	logger.Debug("Font file read.", "path", config.FontPath, "bytes", len(fontData))

	renderer, err := raster.NewRenderer(fontData, config.Width, config.Height)
	if err != nil {
		return nil, fmt.Errorf("font file %q is not usable: %w", config.FontPath, err)
	}
	logger.Debug("Renderer initialized.", "width", config.Width, "height", config.Height)

	return &App{
		outW:     outW,
		errW:     errW,
		logger:   logger,
		config:   config,
		renderer: renderer,
	}, nil
}
