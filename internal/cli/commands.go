// Package cli implements the commands shared by the zoomable binaries.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"zoomable/internal/gesture"
	"zoomable/internal/tui"
	"zoomable/pkg/viewport"
	"zoomable/pkg/zoomable"
)

// RenderArgs holds the parsed arguments of the render command.
type RenderArgs struct {
	Input  string
	Output string
	Width  float64
	Height float64
	Zoom   float64
	Focal  *zoomable.Offset
	Pan    zoomable.Offset
	Max    float64
}

// ParseRenderArgs parses `<image> [-o out.png] [-w W] [-h H] [-zoom F]
// [-at X Y] [-pan DX DY] [-max M]`.
func ParseRenderArgs(args []string) (RenderArgs, error) {
	if len(args) < 1 {
		return RenderArgs{}, fmt.Errorf("missing input image")
	}

	ra := RenderArgs{
		Input:  args[0],
		Output: "output.png",
		Width:  800,
		Height: 600,
		Zoom:   1,
		Max:    zoomable.DefaultOptions().MaxScale,
	}

	for i := 1; i < len(args); i++ {
		flag := args[i]
		n := 1
		switch flag {
		case "-at", "-pan":
			n = 2
		case "-o", "-w", "-h", "-zoom", "-max":
		default:
			return RenderArgs{}, fmt.Errorf("unknown option %s", flag)
		}
		if i+n >= len(args) {
			return RenderArgs{}, fmt.Errorf("%s needs %d value(s)", flag, n)
		}
		vals := args[i+1 : i+1+n]
		i += n

		if flag == "-o" {
			ra.Output = vals[0]
			continue
		}
		nums := make([]float64, n)
		for j, v := range vals {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return RenderArgs{}, fmt.Errorf("%s: invalid number %q", flag, v)
			}
			nums[j] = f
		}

		switch flag {
		case "-w":
			ra.Width = nums[0]
		case "-h":
			ra.Height = nums[0]
		case "-zoom":
			ra.Zoom = nums[0]
		case "-max":
			ra.Max = nums[0]
		case "-at":
			ra.Focal = &zoomable.Offset{X: nums[0], Y: nums[1]}
		case "-pan":
			ra.Pan = zoomable.Offset{X: nums[0], Y: nums[1]}
		}
	}
	return ra, nil
}

// Render loads the input image, applies one gesture and writes the
// resulting viewport as a PNG. It returns the committed state.
func Render(ra RenderArgs) (zoomable.State, error) {
	img, err := viewport.Load(ra.Input)
	if err != nil {
		return zoomable.State{}, err
	}

	layout := zoomable.Size{Width: ra.Width, Height: ra.Height}
	b := img.Bounds()
	opts := zoomable.WithMaxScale(ra.Max)
	opts.ContentSize = zoomable.Fit(zoomable.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}, layout)

	st, err := zoomable.New(opts)
	if err != nil {
		return zoomable.State{}, err
	}
	st = st.WithLayoutSize(layout)

	focal := layout.Center()
	if ra.Focal != nil {
		focal = *ra.Focal
	}
	st = st.Apply(zoomable.Gesture{Pan: ra.Pan, Zoom: ra.Zoom, Focal: focal})

	out, err := viewport.Render(img, st, viewport.DefaultOptions())
	if err != nil {
		return st, fmt.Errorf("failed to render: %w", err)
	}
	if err := viewport.Save(ra.Output, out); err != nil {
		return st, err
	}
	return st, nil
}

// Replay runs a trace file and prints every committed state to w.
func Replay(w io.Writer, path string, window time.Duration) (zoomable.State, error) {
	tr, err := gesture.OpenTrace(path)
	if err != nil {
		return zoomable.State{}, err
	}

	st, err := zoomable.New(zoomable.DefaultOptions())
	if err != nil {
		return zoomable.State{}, err
	}

	fmt.Fprintf(w, "content %gx%g  layout %gx%g  gestures %d\n",
		tr.Content.Width, tr.Content.Height, tr.Layout.Width, tr.Layout.Height, len(tr.Gestures))
	fmt.Fprintln(w, "────────────────────────────────────────")

	step := 0
	final := tr.Replay(st, window, func(g zoomable.Gesture, st zoomable.State) {
		step++
		fmt.Fprintf(w, "%4d  t=%-8v scale %.3f  offset (%.1f, %.1f)\n",
			step, g.Time, st.Scale(), st.OffsetX(), st.OffsetY())
	})
	return final, nil
}

// ParseWindow parses the optional `-window <ms>` replay argument.
func ParseWindow(args []string) (time.Duration, error) {
	if len(args) == 0 {
		return 0, nil
	}
	if len(args) != 2 || args[0] != "-window" {
		return 0, fmt.Errorf("usage: replay <trace> [-window ms]")
	}
	ms, err := strconv.ParseFloat(args[1], 64)
	if err != nil || ms < 0 {
		return 0, fmt.Errorf("invalid window %q", args[1])
	}
	return time.Duration(ms * float64(time.Millisecond)), nil
}

// RunTUI opens a text file in the terminal viewer.
func RunTUI(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	model, err := tui.NewModel(string(data), zoomable.ElasticOptions())
	if err != nil {
		return err
	}

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
