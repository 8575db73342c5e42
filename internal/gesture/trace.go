package gesture

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"zoomable/pkg/zoomable"
)

// Trace is a recorded gesture session.
//
// The text form has one directive or gesture per line. Blank lines and
// lines starting with '#' are ignored:
//
//	content <width> <height>
//	layout  <width> <height>
//	<time_ms> <panX> <panY> <zoom> <focalX> <focalY>
type Trace struct {
	Content  zoomable.Size
	Layout   zoomable.Size
	Gestures []zoomable.Gesture
}

// OpenTrace reads a trace file.
func OpenTrace(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace: %w", err)
	}
	defer f.Close()

	return ParseTrace(f)
}

// ParseTrace reads a trace in text form.
func ParseTrace(r io.Reader) (*Trace, error) {
	t := &Trace{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		switch fields[0] {
		case "content", "layout":
			size, err := parseSize(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", line, fields[0], err)
			}
			if fields[0] == "content" {
				t.Content = size
			} else {
				t.Layout = size
			}

		default:
			g, err := parseGesture(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			t.Gestures = append(t.Gestures, g)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trace: %w", err)
	}
	return t, nil
}

// Replay applies every gesture in t to st, merging ticks closer than
// window, and calls fn with each committed state. The returned state has
// the trace's content and layout sizes.
func (t *Trace) Replay(st zoomable.State, window time.Duration, fn func(zoomable.Gesture, zoomable.State)) zoomable.State {
	st = st.WithContentSize(t.Content).WithLayoutSize(t.Layout)

	commit := func(g zoomable.Gesture) {
		st = st.Apply(g)
		if fn != nil {
			fn(g, st)
		}
	}

	c := &Coalescer{Window: window}
	for _, g := range t.Gestures {
		if out, ok := c.Push(g); ok {
			commit(out)
		}
	}
	if out, ok := c.Flush(); ok {
		commit(out)
	}
	return st
}

func parseSize(args []string) (zoomable.Size, error) {
	v, err := parseFloats(args, 2)
	if err != nil {
		return zoomable.Size{}, err
	}
	if v[0] < 0 || v[1] < 0 {
		return zoomable.Size{}, fmt.Errorf("negative size %vx%v", v[0], v[1])
	}
	return zoomable.Size{Width: v[0], Height: v[1]}, nil
}

func parseGesture(fields []string) (zoomable.Gesture, error) {
	v, err := parseFloats(fields, 6)
	if err != nil {
		return zoomable.Gesture{}, err
	}
	return zoomable.Gesture{
		Time:  time.Duration(v[0] * float64(time.Millisecond)),
		Pan:   zoomable.Offset{X: v[1], Y: v[2]},
		Zoom:  v[3],
		Focal: zoomable.Offset{X: v[4], Y: v[5]},
	}, nil
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d numbers, got %d", n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out[i] = f
	}
	return out, nil
}
