package zoomable

// Propagation selects when a pan is kept by the content instead of being
// passed on to an enclosing scroller.
type Propagation int

const (
	// PropagateNotZoomed passes every pan on while the content is at
	// scale 1 and keeps every pan otherwise.
	PropagateNotZoomed Propagation = iota

	// PropagateContentEdge keeps a pan as long as it moves the content,
	// so dragging past an edge scrolls the parent.
	PropagateContentEdge
)

func (p Propagation) String() string {
	switch p {
	case PropagateNotZoomed:
		return "not-zoomed"
	case PropagateContentEdge:
		return "content-edge"
	}
	return "unknown"
}

// ConsumesPan reports whether the content should keep pan under mode.
func (s State) ConsumesPan(pan Offset, mode Propagation) bool {
	if mode == PropagateContentEdge {
		return s.WillChangeOffset(pan)
	}
	return s.scale != 1
}
