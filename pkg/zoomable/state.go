// Package zoomable tracks the scale and translation of zoomable content
// shown in a viewport. A State is an immutable value: every operation
// returns the next State and leaves the receiver untouched, so the host
// decides where the current value lives.
package zoomable

import "math"

// DefaultDoubleTapScale is the scale ToggleZoom zooms to by default.
const DefaultDoubleTapScale = 2.5

// State is the committed zoom state of one piece of content. The zero
// value is not usable; create States with New.
//
// Offsets are measured from the position where the content is centered in
// the viewport. A positive offset moves the content right or down.
type State struct {
	minScale float64
	maxScale float64
	content  Size
	layout   Size
	scale    float64
	offset   Offset
}

// New creates a State from opts. The initial scale is 1 clamped into
// [MinScale, MaxScale] with no offset.
func New(opts Options) (State, error) {
	if err := opts.validate(); err != nil {
		return State{}, err
	}
	s := State{
		minScale: opts.MinScale,
		maxScale: opts.MaxScale,
		content:  sanitizeSize(opts.ContentSize),
	}
	s.scale = s.restScale()
	return s, nil
}

// MustNew is like New but panics on invalid options.
func MustNew(opts Options) State {
	s, err := New(opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Scale returns the current scale.
func (s State) Scale() float64 { return s.scale }

// OffsetX returns the current horizontal translation.
func (s State) OffsetX() float64 { return s.offset.X }

// OffsetY returns the current vertical translation.
func (s State) OffsetY() float64 { return s.offset.Y }

// Offset returns the current translation.
func (s State) Offset() Offset { return s.offset }

// MinScale returns the lower scale bound.
func (s State) MinScale() float64 { return s.minScale }

// MaxScale returns the upper scale bound.
func (s State) MaxScale() float64 { return s.maxScale }

// ContentSize returns the intrinsic content size.
func (s State) ContentSize() Size { return s.content }

// LayoutSize returns the viewport size.
func (s State) LayoutSize() Size { return s.layout }

// WithLayoutSize records the measured viewport size. Until it is called the
// viewport is treated as zero-size.
func (s State) WithLayoutSize(size Size) State {
	s.layout = sanitizeSize(size)
	s.offset = s.clampOffset(s.offset, s.scale)
	return s
}

// WithContentSize replaces the content size.
func (s State) WithContentSize(size Size) State {
	s.content = sanitizeSize(size)
	s.offset = s.clampOffset(s.offset, s.scale)
	return s
}

// Bounds returns the largest allowed offset magnitude on each axis at the
// current scale.
func (s State) Bounds() Offset {
	return Offset{
		maxOffset(s.content.Width, s.layout.Width, s.scale),
		maxOffset(s.content.Height, s.layout.Height, s.scale),
	}
}

// Apply commits one gesture tick. The scale is multiplied by g.Zoom and
// clamped, the content point under g.Focal is kept under it, g.Pan is
// added and the result is clamped so no space beyond the content edges is
// revealed. Degenerate input never fails: a zoom factor that is zero,
// negative or NaN lands on the minimum scale.
func (s State) Apply(g Gesture) State {
	return s.transition(s.nextScale(g.Zoom), g.Focal, g.Pan)
}

// WillChangeOffset reports whether applying pan at the current scale would
// move the content. Hosts use it to decide whether a drag belongs to the
// content or to an enclosing scroller.
func (s State) WillChangeOffset(pan Offset) bool {
	next := s.clampOffset(s.offset.Add(sanitizeOffset(pan)), s.scale)
	return next != s.offset
}

// ZoomTo sets an absolute scale, clamped, keeping focal fixed.
func (s State) ZoomTo(scale float64, focal Offset) State {
	if math.IsNaN(scale) {
		scale = s.minScale
	}
	return s.transition(clamp(scale, s.minScale, s.maxScale), focal, Offset{})
}

// ToggleZoom implements double-tap: from the resting scale it zooms to
// target about focal, otherwise it resets.
func (s State) ToggleZoom(focal Offset, target float64) State {
	if s.scale == s.restScale() {
		return s.ZoomTo(target, focal)
	}
	return s.Reset()
}

// Reset returns to the resting scale with no offset.
func (s State) Reset() State {
	s.scale = s.restScale()
	s.offset = Offset{}
	return s
}

// Settle ends a gesture. A scale that was allowed to dip below 1 returns
// to 1 about the viewport center.
func (s State) Settle() State {
	if s.scale >= 1 {
		return s
	}
	return s.ZoomTo(1, s.layout.Center())
}

// Transform maps content coordinates to viewport coordinates.
func (s State) Transform() Matrix {
	c := s.content.Center()
	l := s.layout.Center()
	return Translate(-c.X, -c.Y).
		Multiply(ScaleMatrix(s.scale, s.scale)).
		Multiply(Translate(l.X+s.offset.X, l.Y+s.offset.Y))
}

// ContentPoint maps a viewport point back to content coordinates.
func (s State) ContentPoint(p Offset) Offset {
	return s.Transform().Inverse().TransformPoint(p)
}

func (s State) transition(newScale float64, focal, pan Offset) State {
	if !finite(focal.X) || !finite(focal.Y) {
		focal = s.layout.Center()
	}
	f := focal.Sub(s.layout.Center())
	ratio := newScale / s.scale
	off := f.Sub(f.Sub(s.offset).Scale(ratio)).Add(sanitizeOffset(pan))

	s.scale = newScale
	s.offset = s.clampOffset(off, newScale)
	return s
}

func (s State) nextScale(zoom float64) float64 {
	if math.IsNaN(zoom) || zoom <= 0 {
		return s.minScale
	}
	return clamp(s.scale*zoom, s.minScale, s.maxScale)
}

func (s State) restScale() float64 {
	return clamp(1, s.minScale, s.maxScale)
}

func (s State) clampOffset(o Offset, scale float64) Offset {
	return Offset{
		clampAxis(o.X, maxOffset(s.content.Width, s.layout.Width, scale)),
		clampAxis(o.Y, maxOffset(s.content.Height, s.layout.Height, scale)),
	}
}

// maxOffset is how far content of the given extent can move from center
// before an edge comes into view.
func maxOffset(content, layout, scale float64) float64 {
	return math.Max(0, (content*scale-layout)/2)
}

func clampAxis(v, limit float64) float64 {
	if limit == 0 || math.IsNaN(v) {
		return 0
	}
	return clamp(v, -limit, limit)
}

func sanitizeOffset(o Offset) Offset {
	if !finite(o.X) {
		o.X = 0
	}
	if !finite(o.Y) {
		o.Y = 0
	}
	return o
}

func sanitizeSize(s Size) Size {
	if !finite(s.Width) || s.Width < 0 {
		s.Width = 0
	}
	if !finite(s.Height) || s.Height < 0 {
		s.Height = 0
	}
	return s
}
