package zoomable

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidScaleRange is returned by New when the scale bounds cannot
// describe a usable range.
var ErrInvalidScaleRange = errors.New("invalid scale range")

// Options configures a new State.
type Options struct {
	// MinScale is the lower bound for the scale.
	// Default: 1.0
	MinScale float64

	// MaxScale is the upper bound for the scale. Must be at least 1.0.
	// Default: 5.0
	MaxScale float64

	// ContentSize is the intrinsic size of the zoomable content.
	// Default: zero
	ContentSize Size
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		MinScale: 1.0,
		MaxScale: 5.0,
	}
}

// ElasticMinScale is the minScale of ElasticOptions.
const ElasticMinScale = 0.9

// ElasticOptions returns DefaultOptions with MinScale lowered to
// ElasticMinScale, so a gesture can shrink the content slightly below its
// resting size before Settle springs it back to 1.
func ElasticOptions() Options {
	opts := DefaultOptions()
	opts.MinScale = ElasticMinScale
	return opts
}

// WithMaxScale returns options with the specified maximum scale.
func WithMaxScale(maxScale float64) Options {
	opts := DefaultOptions()
	opts.MaxScale = maxScale
	return opts
}

// WithMinScale returns options with the specified minimum scale.
func WithMinScale(minScale float64) Options {
	opts := DefaultOptions()
	opts.MinScale = minScale
	return opts
}

// WithContentSize returns options with the specified content size.
func WithContentSize(size Size) Options {
	opts := DefaultOptions()
	opts.ContentSize = size
	return opts
}

func (o Options) validate() error {
	switch {
	case math.IsNaN(o.MaxScale) || math.IsInf(o.MaxScale, 0) || o.MaxScale < 1:
		return fmt.Errorf("%w: maxScale must be at least 1.0, got %v", ErrInvalidScaleRange, o.MaxScale)
	case math.IsNaN(o.MinScale) || o.MinScale <= 0:
		return fmt.Errorf("%w: minScale must be positive, got %v", ErrInvalidScaleRange, o.MinScale)
	case o.MinScale > o.MaxScale:
		return fmt.Errorf("%w: minScale %v exceeds maxScale %v", ErrInvalidScaleRange, o.MinScale, o.MaxScale)
	}
	return nil
}
