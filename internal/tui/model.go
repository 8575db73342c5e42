// Package tui shows a text file as zoomable content in the terminal.
// Each terminal cell of the text is one content unit, so a wide character
// spans two; every viewport cell samples the content point under its
// center.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"zoomable/pkg/zoomable"
)

const (
	keyZoom   = 1.25
	wheelZoom = 1.1
	outside   = '·'

	// wideTail fills the second cell of a wide character.
	wideTail rune = 0
)

// Model is the bubbletea model of the terminal viewer.
type Model struct {
	lines [][]rune
	state zoomable.State
	start time.Time

	width  int
	height int

	// Mouse drag
	dragging bool
	last     zoomable.Offset

	showHelp bool
	err      error

	styles           *Styles
	markdownRenderer *MarkdownRenderer
}

// NewModel creates a viewer for text.
func NewModel(text string, opts zoomable.Options) (*Model, error) {
	lines := splitLines(text)
	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	opts.ContentSize = zoomable.Size{Width: float64(width), Height: float64(len(lines))}

	st, err := zoomable.New(opts)
	if err != nil {
		return nil, err
	}

	markdownRenderer, err := NewMarkdownRenderer(80)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return &Model{
		lines:            lines,
		state:            st,
		start:            time.Now(),
		styles:           NewStyles(),
		markdownRenderer: markdownRenderer,
	}, nil
}

func splitLines(text string) [][]rune {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil
	}
	raw := strings.Split(text, "\n")
	lines := make([][]rune, len(raw))
	for i, l := range raw {
		cells := make([]rune, 0, len(l))
		for _, r := range strings.ReplaceAll(l, "\t", "    ") {
			switch runewidth.RuneWidth(r) {
			case 0:
				// Combining marks and control characters take no cell.
			case 2:
				cells = append(cells, r, wideTail)
			default:
				cells = append(cells, r)
			}
		}
		lines[i] = cells
	}
	return lines
}

// State returns the committed zoom state.
func (m *Model) State() zoomable.State {
	return m.state
}

// Init initializes the model (bubbletea interface)
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages (bubbletea interface)
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.state = m.state.WithLayoutSize(m.viewportSize())
		if w := m.width - 4; w > 20 {
			if err := m.markdownRenderer.UpdateWidth(w); err != nil {
				m.err = err
			}
		}

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	center := m.state.LayoutSize().Center()

	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "?":
		m.showHelp = !m.showHelp
	case "esc":
		m.showHelp = false
	case "left", "h":
		m.apply(zoomable.PanBy(2, 0))
	case "right", "l":
		m.apply(zoomable.PanBy(-2, 0))
	case "up", "k":
		m.apply(zoomable.PanBy(0, 1))
	case "down", "j":
		m.apply(zoomable.PanBy(0, -1))
	case "+", "=":
		m.apply(zoomable.ZoomAt(keyZoom, center))
	case "-":
		m.apply(zoomable.ZoomAt(1/keyZoom, center))
		m.state = m.state.Settle()
	case "0":
		m.state = m.state.Reset()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pos := zoomable.Offset{X: float64(msg.X) + 0.5, Y: float64(msg.Y) + 0.5}

	switch msg.Type {
	case tea.MouseWheelUp:
		m.state = m.state.Settle()
		m.apply(zoomable.ZoomAt(wheelZoom, pos))
	case tea.MouseWheelDown:
		m.apply(zoomable.ZoomAt(1/wheelZoom, pos))
	case tea.MouseLeft:
		m.dragging = true
		m.last = pos
	case tea.MouseMotion:
		if !m.dragging {
			return
		}
		d := pos.Sub(m.last)
		m.last = pos
		m.apply(zoomable.PanBy(d.X, d.Y))
	case tea.MouseRelease:
		m.dragging = false
		m.state = m.state.Settle()
	}
}

func (m *Model) apply(g zoomable.Gesture) {
	g.Time = time.Since(m.start)
	m.state = m.state.Apply(g)
}

// viewportSize leaves one row for the status line.
func (m *Model) viewportSize() zoomable.Size {
	h := m.height - 1
	if h < 0 {
		h = 0
	}
	return zoomable.Size{Width: float64(m.width), Height: float64(h)}
}

// View renders the model (bubbletea interface)
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderContent())
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m *Model) renderContent() string {
	layout := m.state.LayoutSize()
	rows, cols := int(layout.Height), int(layout.Width)
	inv := m.state.Transform().Inverse()

	var b strings.Builder
	for y := 0; y < rows; y++ {
		var run []rune
		in := true
		flush := func() {
			if len(run) == 0 {
				return
			}
			if in {
				b.WriteString(string(run))
			} else {
				b.WriteString(m.styles.Outside.Render(string(run)))
			}
			run = run[:0]
		}

		for x := 0; x < cols; x++ {
			r, ok := m.sample(inv.TransformPoint(zoomable.Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5}))
			if ok != in {
				flush()
				in = ok
			}
			switch {
			case r == wideTail:
				r = ' '
			case ok && runewidth.RuneWidth(r) == 2:
				// A wide rune covers this cell and the next one.
				if x+1 < cols {
					run = append(run, r)
					x++
					continue
				}
				r = ' '
			}
			run = append(run, r)
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}

// sample returns the rune at content point p and whether p lies on the
// content.
func (m *Model) sample(p zoomable.Offset) (rune, bool) {
	content := m.state.ContentSize()
	if p.X < 0 || p.Y < 0 || p.X >= content.Width || p.Y >= content.Height {
		return outside, false
	}
	line := m.lines[int(math.Floor(p.Y))]
	col := int(math.Floor(p.X))
	if col >= len(line) {
		return ' ', true
	}
	return line[col], true
}

func (m *Model) renderStatus() string {
	st := m.state
	arrows := []struct {
		label string
		pan   zoomable.Offset
	}{
		{"←", zoomable.Offset{X: 1}},
		{"→", zoomable.Offset{X: -1}},
		{"↑", zoomable.Offset{Y: 1}},
		{"↓", zoomable.Offset{Y: -1}},
	}

	var edges strings.Builder
	for _, a := range arrows {
		if st.WillChangeOffset(a.pan) {
			edges.WriteString(m.styles.Highlight.Render(a.label))
		} else {
			edges.WriteString(m.styles.Blocked.Render(a.label))
		}
	}

	text := fmt.Sprintf("%3.0f%%  offset %+.1f,%+.1f  ", st.Scale()*100, st.OffsetX(), st.OffsetY())
	line := m.styles.Status.Render(text) + edges.String() + m.styles.Status.Render("  ? help")
	if m.err != nil {
		line += " " + m.styles.Error.Render(m.err.Error())
	}
	return line
}

func (m *Model) renderHelp() string {
	out, err := m.markdownRenderer.Render(helpText)
	if err != nil {
		return m.styles.Error.Render(err.Error())
	}
	return m.styles.Help.Render(out)
}
