// Package viewport renders zoomable content the way a host would show it:
// the source image is fitted to the content size of a zoomable.State and
// drawn through the state's transform into an image of the layout size.
package viewport

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"zoomable/pkg/zoomable"
)

// ErrEmptyViewport is returned when the state has no layout size.
var ErrEmptyViewport = errors.New("viewport has no area")

// Options configures rendering behavior.
type Options struct {
	// Background fills the area not covered by content.
	// Default: white
	Background color.Color

	// Interpolator resamples the source image.
	// Default: draw.CatmullRom
	Interpolator draw.Interpolator
}

// DefaultOptions returns render options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Background:   color.White,
		Interpolator: draw.CatmullRom,
	}
}

// WithInterpolator returns options with the specified interpolator.
func WithInterpolator(interp draw.Interpolator) Options {
	opts := DefaultOptions()
	opts.Interpolator = interp
	return opts
}

// Render draws src as it appears under st.
func Render(src image.Image, st zoomable.State, opts Options) (*image.RGBA, error) {
	layout := st.LayoutSize()
	if layout.IsEmpty() {
		return nil, ErrEmptyViewport
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	if opts.Interpolator == nil {
		opts.Interpolator = draw.CatmullRom
	}

	w := int(math.Round(layout.Width))
	h := int(math.Round(layout.Height))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	sr := src.Bounds()
	content := st.ContentSize()
	if sr.Empty() || content.IsEmpty() {
		return dst, nil
	}

	m := SourceTransform(sr, content).Multiply(st.Transform())
	opts.Interpolator.Transform(dst, toAff3(m), src, sr, draw.Over, nil)
	return dst, nil
}

// SourceTransform maps source pixel coordinates onto content coordinates
// of the given size.
func SourceTransform(sr image.Rectangle, content zoomable.Size) zoomable.Matrix {
	return zoomable.Translate(-float64(sr.Min.X), -float64(sr.Min.Y)).
		Multiply(zoomable.ScaleMatrix(
			content.Width/float64(sr.Dx()),
			content.Height/float64(sr.Dy()),
		))
}

// toAff3 converts to the row-major layout x/image expects.
func toAff3(m zoomable.Matrix) f64.Aff3 {
	return f64.Aff3{
		m[0], m[2], m[4],
		m[1], m[3], m[5],
	}
}

// Save writes img as a PNG, creating parent directories as needed.
func Save(path string, img image.Image) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return f.Close()
}
