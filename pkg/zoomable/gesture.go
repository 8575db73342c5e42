package zoomable

import "time"

// Gesture is one tick of input from a host's gesture detector.
type Gesture struct {
	// Pan is the translation delta for this tick.
	Pan Offset

	// Zoom is a multiplicative scale delta; 1 leaves the scale alone.
	Zoom float64

	// Focal is the viewport point that stays fixed while scaling.
	Focal Offset

	// Time is the monotonic event time. It only orders ticks; the
	// geometry ignores it.
	Time time.Duration
}

// PanBy returns a pure pan gesture.
func PanBy(dx, dy float64) Gesture {
	return Gesture{Pan: Offset{dx, dy}, Zoom: 1}
}

// ZoomAt returns a pure zoom gesture about the given focal point.
func ZoomAt(zoom float64, focal Offset) Gesture {
	return Gesture{Zoom: zoom, Focal: focal}
}
