// Package raster renders single characters from an OpenType font into
// fixed-size transparent PNG sprites. The font is parsed once per Renderer;
// each render builds faces at candidate pixel sizes until the glyph's tight
// bounding box fits inside the target box, then draws the glyph centered in
// opaque white.
package raster

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/vk/fontsprite/internal/ctxlog"
)

// fitFraction is the share of the target box a glyph may occupy before the
// size is shrunk further.
const fitFraction = 0.9

// Renderer rasterizes characters from a single parsed font at fixed target
// dimensions.
type Renderer struct {
	font   *opentype.Font
	width  int
	height int
}

// NewRenderer parses the given font data and returns a Renderer producing
// width x height sprites. A parse failure is fatal: no rendering can proceed
// without a valid font.
func NewRenderer(fontData []byte, width, height int) (*Renderer, error) {
	parsed, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Renderer{font: parsed, width: width, height: height}, nil
}

// measure returns the tight pixel bounding box of ch rendered at the given
// face, as width, height, and the box origin in 26.6 fixed point.
func measure(face font.Face, ch rune) (w, h int, min fixed.Point26_6) {
	bounds, _ := font.BoundString(face, string(ch))
	w = (bounds.Max.X - bounds.Min.X).Ceil()
	h = (bounds.Max.Y - bounds.Min.Y).Ceil()
	return w, h, bounds.Min
}

// newFace builds a face at the given pixel size.
func (r *Renderer) newFace(size int) (font.Face, error) {
	return opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// RenderChar rasterizes a single character and writes it to outputPath as a
// PNG. The starting candidate size is 80% of the target height; the size is
// reduced one step at a time until the glyph's bounding box occupies at most
// 90% of the target box on both axes, or the size floor of 1 is reached. A
// size-1 glyph that still exceeds bounds is rendered anyway, best effort.
func (r *Renderer) RenderChar(ctx context.Context, ch rune, outputPath string) error {
	logger := ctxlog.FromContext(ctx)

	size := int(float64(r.height) * 0.8)
	if size < 1 {
		size = 1
	}

	face, err := r.newFace(size)
	if err != nil {
		return fmt.Errorf("failed to create font face at size %d: %w", size, err)
	}
	glyphW, glyphH, boxMin := measure(face, ch)

	for (float64(glyphW) > float64(r.width)*fitFraction ||
		float64(glyphH) > float64(r.height)*fitFraction) && size > 1 {
		face.Close()
		size--
		face, err = r.newFace(size)
		if err != nil {
			return fmt.Errorf("failed to create font face at size %d: %w", size, err)
		}
		glyphW, glyphH, boxMin = measure(face, ch)
	}
	defer face.Close()

	logger.Debug("Glyph measured.",
		"char", string(ch), "size", size, "glyph_w", glyphW, "glyph_h", glyphH)

	// Center the bounding box in the canvas, compensating for the box's own
	// origin offset.
	originX := (r.width-glyphW)/2 - boxMin.X.Floor()
	originY := (r.height-glyphH)/2 - boxMin.Y.Floor()

	// NRGBA zero value is fully transparent.
	canvas := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(originX, originY),
	}
	drawer.DrawString(string(ch))

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, canvas); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	logger.Debug("Sprite written.", "char", string(ch), "path", outputPath)
	return nil
}
