package zoomable

import "math"

// Offset is a point or a translation in viewport coordinates.
type Offset struct {
	X, Y float64
}

// Add returns the sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{o.X + other.X, o.Y + other.Y}
}

// Sub returns the difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{o.X - other.X, o.Y - other.Y}
}

// Scale scales the offset by a factor.
func (o Offset) Scale(s float64) Offset {
	return Offset{o.X * s, o.Y * s}
}

// IsZero reports whether both components are zero.
func (o Offset) IsZero() bool {
	return o.X == 0 && o.Y == 0
}

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// IsEmpty reports whether the size has no area.
func (s Size) IsEmpty() bool {
	return !(s.Width > 0) || !(s.Height > 0)
}

// Center returns the midpoint of a box of this size anchored at the origin.
func (s Size) Center() Offset {
	return Offset{s.Width / 2, s.Height / 2}
}

// Fit scales content uniformly so that it fits inside layout, preserving
// its aspect ratio. Empty inputs yield a zero size.
func Fit(content, layout Size) Size {
	if content.IsEmpty() || layout.IsEmpty() {
		return Size{}
	}
	k := math.Min(layout.Width/content.Width, layout.Height/content.Height)
	return Size{content.Width * k, content.Height * k}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
