// Package gesture batches gesture ticks by time and replays recorded
// gesture traces against a zoomable.State.
package gesture

import (
	"time"

	"zoomable/pkg/zoomable"
)

// Coalescer merges gesture ticks that arrive within Window of the first
// buffered tick. Pans add, zooms multiply, and the latest time wins. The
// focal point comes from the latest tick that zooms, so a pan tick does
// not move the pivot of an earlier pinch. A zero Window passes every tick
// straight through.
type Coalescer struct {
	Window time.Duration

	pending zoomable.Gesture
	start   time.Duration
	has     bool
}

// Push adds g. When g cannot join the buffered batch, the batch is
// returned with ready set and g starts a new one.
func (c *Coalescer) Push(g zoomable.Gesture) (zoomable.Gesture, bool) {
	if c.Window <= 0 {
		return g, true
	}
	if !c.has {
		c.begin(g)
		return zoomable.Gesture{}, false
	}
	if g.Time < c.pending.Time || g.Time-c.start > c.Window {
		out := c.pending
		c.begin(g)
		return out, true
	}

	c.pending.Pan = c.pending.Pan.Add(g.Pan)
	c.pending.Zoom *= g.Zoom
	if g.Zoom != 1 {
		c.pending.Focal = g.Focal
	}
	c.pending.Time = g.Time
	return zoomable.Gesture{}, false
}

// Flush returns the buffered batch, if any, and empties the buffer.
func (c *Coalescer) Flush() (zoomable.Gesture, bool) {
	if !c.has {
		return zoomable.Gesture{}, false
	}
	out := c.pending
	c.has = false
	c.pending = zoomable.Gesture{}
	return out, true
}

func (c *Coalescer) begin(g zoomable.Gesture) {
	c.pending = g
	c.start = g.Time
	c.has = true
}
