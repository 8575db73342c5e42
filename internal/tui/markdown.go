package tui

import (
	"github.com/charmbracelet/glamour"
)

const helpText = `# Zoomable

| Key | Action |
|-----|--------|
| arrows, hjkl | move the view |
| + / - | zoom about the center |
| 0 | reset |
| mouse wheel | zoom about the pointer |
| left drag | pan |
| ? | toggle this help |
| q | quit |

The status line shows the scale, the offset and which directions can
still pan. A dimmed arrow means the content already shows that edge.
`

// MarkdownRenderer wraps glamour for the help overlay
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// NewMarkdownRenderer creates a markdown renderer wrapping at width
func NewMarkdownRenderer(width int) (*MarkdownRenderer, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	return &MarkdownRenderer{
		renderer: renderer,
		width:    width,
	}, nil
}

// Render renders markdown content to styled terminal output
func (mr *MarkdownRenderer) Render(content string) (string, error) {
	return mr.renderer.Render(content)
}

// UpdateWidth recreates the renderer when the width changes
func (mr *MarkdownRenderer) UpdateWidth(width int) error {
	if width == mr.width {
		return nil
	}

	newRenderer, err := NewMarkdownRenderer(width)
	if err != nil {
		return err
	}

	mr.renderer = newRenderer.renderer
	mr.width = width
	return nil
}
