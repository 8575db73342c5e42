package gesture

import (
	"strings"
	"testing"
	"time"

	"zoomable/pkg/zoomable"
)

func tick(ms int, dx, dy, zoom float64) zoomable.Gesture {
	return zoomable.Gesture{
		Pan:   zoomable.Offset{X: dx, Y: dy},
		Zoom:  zoom,
		Focal: zoomable.Offset{X: float64(ms), Y: float64(ms)},
		Time:  time.Duration(ms) * time.Millisecond,
	}
}

func TestCoalescer_ZeroWindowPassesThrough(t *testing.T) {
	c := &Coalescer{}
	g := tick(5, 1, 2, 1.5)
	out, ok := c.Push(g)
	if !ok || out != g {
		t.Fatalf("Push = %+v, %v; want %+v, true", out, ok, g)
	}
	if _, ok := c.Flush(); ok {
		t.Fatalf("Flush should be empty")
	}
}

func TestCoalescer_MergesWithinWindow(t *testing.T) {
	c := &Coalescer{Window: 16 * time.Millisecond}

	for _, g := range []zoomable.Gesture{tick(0, 1, 1, 2), tick(8, 2, -1, 1.5), tick(16, 3, 0, 0.5)} {
		if _, ok := c.Push(g); ok {
			t.Fatalf("tick at %v should have been buffered", g.Time)
		}
	}

	out, ok := c.Push(tick(40, 10, 10, 1))
	if !ok {
		t.Fatalf("tick outside the window should emit the batch")
	}
	if out.Pan != (zoomable.Offset{X: 6, Y: 0}) {
		t.Fatalf("merged pan = %+v, want {6 0}", out.Pan)
	}
	if out.Zoom != 1.5 {
		t.Fatalf("merged zoom = %v, want 1.5", out.Zoom)
	}
	if out.Focal != (zoomable.Offset{X: 16, Y: 16}) || out.Time != 16*time.Millisecond {
		t.Fatalf("merged batch should carry the latest focal and time, got %+v", out)
	}

	rest, ok := c.Flush()
	if !ok || rest.Pan != (zoomable.Offset{X: 10, Y: 10}) {
		t.Fatalf("Flush = %+v, %v", rest, ok)
	}
}

func TestCoalescer_TimeGoingBackwardsEmits(t *testing.T) {
	c := &Coalescer{Window: time.Second}
	c.Push(tick(100, 1, 0, 1))
	out, ok := c.Push(tick(50, 1, 0, 1))
	if !ok || out.Time != 100*time.Millisecond {
		t.Fatalf("Push = %+v, %v", out, ok)
	}
}

func TestCoalescer_PanKeepsZoomFocal(t *testing.T) {
	c := &Coalescer{Window: 16 * time.Millisecond}
	pinch := zoomable.ZoomAt(2, zoomable.Offset{X: 50, Y: 50})
	pan := zoomable.PanBy(1, 0)
	pan.Time = 8 * time.Millisecond

	c.Push(pinch)
	c.Push(pan)
	out, ok := c.Flush()
	if !ok {
		t.Fatalf("Flush should return the batch")
	}
	if out.Focal != pinch.Focal || out.Zoom != 2 || out.Pan != pan.Pan {
		t.Fatalf("merged = %+v, want zoom 2 about %+v with pan %+v", out, pinch.Focal, pan.Pan)
	}
}

func TestReplay_MergedMatchesSequential(t *testing.T) {
	pinch := zoomable.ZoomAt(2, zoomable.Offset{X: 50, Y: 50})
	pan := zoomable.PanBy(1, 0)
	pan.Time = 8 * time.Millisecond
	tr := &Trace{
		Content:  zoomable.Size{Width: 100, Height: 100},
		Layout:   zoomable.Size{Width: 100, Height: 100},
		Gestures: []zoomable.Gesture{pinch, pan},
	}

	st := zoomable.MustNew(zoomable.DefaultOptions())
	sequential := tr.Replay(st, 0, nil)
	merged := tr.Replay(st, 16*time.Millisecond, nil)

	if sequential.Offset() != (zoomable.Offset{X: 1, Y: 0}) {
		t.Fatalf("sequential offset = %+v, want {1 0}", sequential.Offset())
	}
	if merged.Scale() != sequential.Scale() || merged.Offset() != sequential.Offset() {
		t.Fatalf("merged scale %v offset %+v, sequential scale %v offset %+v",
			merged.Scale(), merged.Offset(), sequential.Scale(), sequential.Offset())
	}
}

const sampleTrace = `
# pinch at the top-left corner then drag
content 100 100
layout  100 100
0  0 0 2 0 0
16 -10 -10 1 50 50
`

func TestParseTrace(t *testing.T) {
	tr, err := ParseTrace(strings.NewReader(sampleTrace))
	if err != nil {
		t.Fatalf("ParseTrace: %v", err)
	}
	if tr.Content != (zoomable.Size{Width: 100, Height: 100}) || tr.Layout != (zoomable.Size{Width: 100, Height: 100}) {
		t.Fatalf("sizes = %+v %+v", tr.Content, tr.Layout)
	}
	if len(tr.Gestures) != 2 {
		t.Fatalf("got %d gestures, want 2", len(tr.Gestures))
	}
	if g := tr.Gestures[1]; g.Time != 16*time.Millisecond || g.Pan.X != -10 || g.Zoom != 1 {
		t.Fatalf("second gesture = %+v", g)
	}
}

func TestParseTrace_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"short gesture", "0 1 2", "line 1: expected 6 numbers"},
		{"bad number", "content 10 x", "line 1: content: invalid number"},
		{"negative size", "\nlayout -1 5", "line 2: layout: negative size"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTrace(strings.NewReader(tc.input))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want containing %q", err, tc.want)
			}
		})
	}
}

func TestReplay(t *testing.T) {
	tr, err := ParseTrace(strings.NewReader(sampleTrace))
	if err != nil {
		t.Fatalf("ParseTrace: %v", err)
	}

	var states []zoomable.State
	final := tr.Replay(zoomable.MustNew(zoomable.DefaultOptions()), 0, func(_ zoomable.Gesture, st zoomable.State) {
		states = append(states, st)
	})
	if len(states) != 2 {
		t.Fatalf("got %d commits, want 2", len(states))
	}
	if s := states[0]; s.Scale() != 2 || s.OffsetX() != 50 || s.OffsetY() != 50 {
		t.Fatalf("after pinch: scale %v offset %+v", s.Scale(), s.Offset())
	}
	if final.OffsetX() != 40 || final.OffsetY() != 40 {
		t.Fatalf("after drag: offset %+v, want (40, 40)", final.Offset())
	}

	merged := tr.Replay(zoomable.MustNew(zoomable.DefaultOptions()), 20*time.Millisecond, nil)
	if merged.Scale() != 2 {
		t.Fatalf("merged replay: scale %v, want 2", merged.Scale())
	}
}
