package gui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar provides navigation and zoom controls.
type Toolbar struct {
	container *fyne.Container

	// Callbacks
	OnOpen     func()
	OnPrev     func()
	OnNext     func()
	OnGoTo     func(index int)
	OnZoomIn   func()
	OnZoomOut  func()
	OnFitWidth func()
	OnReset    func()

	// Components
	indexEntry *widget.Entry
	countLabel *widget.Label
	prevBtn    *widget.Button
	nextBtn    *widget.Button
}

// NewToolbar creates a new toolbar.
func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.build()
	return t
}

func fire(fn func()) {
	if fn != nil {
		fn()
	}
}

func (t *Toolbar) build() {
	openBtn := widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), func() { fire(t.OnOpen) })

	t.prevBtn = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() { fire(t.OnPrev) })
	t.nextBtn = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() { fire(t.OnNext) })

	t.indexEntry = widget.NewEntry()
	t.indexEntry.SetPlaceHolder("Image")
	t.indexEntry.OnSubmitted = func(s string) {
		if n, err := strconv.Atoi(s); err == nil && t.OnGoTo != nil {
			t.OnGoTo(n - 1) // Convert to 0-indexed
		}
	}
	t.countLabel = widget.NewLabel("of 0")

	zoomOutBtn := widget.NewButtonWithIcon("", theme.ZoomOutIcon(), func() { fire(t.OnZoomOut) })
	zoomInBtn := widget.NewButtonWithIcon("", theme.ZoomInIcon(), func() { fire(t.OnZoomIn) })
	fitWidthBtn := widget.NewButtonWithIcon("Width", theme.ViewFullScreenIcon(), func() { fire(t.OnFitWidth) })
	resetBtn := widget.NewButtonWithIcon("Fit", theme.ViewRestoreIcon(), func() { fire(t.OnReset) })

	t.container = container.NewHBox(
		openBtn,
		widget.NewSeparator(),
		t.prevBtn,
		container.NewHBox(t.indexEntry, t.countLabel),
		t.nextBtn,
		widget.NewSeparator(),
		zoomOutBtn,
		zoomInBtn,
		widget.NewSeparator(),
		fitWidthBtn,
		resetBtn,
	)
	t.SetIndex(0, 0)
}

// Container returns the toolbar container.
func (t *Toolbar) Container() *fyne.Container {
	return t.container
}

// SetIndex updates the current image display.
func (t *Toolbar) SetIndex(current, total int) {
	if total == 0 {
		t.indexEntry.SetText("")
		t.countLabel.SetText("of 0")
		t.prevBtn.Disable()
		t.nextBtn.Disable()
		return
	}

	t.indexEntry.SetText(strconv.Itoa(current + 1))
	t.countLabel.SetText("of " + strconv.Itoa(total))

	if current <= 0 {
		t.prevBtn.Disable()
	} else {
		t.prevBtn.Enable()
	}

	if current >= total-1 {
		t.nextBtn.Disable()
	} else {
		t.nextBtn.Enable()
	}
}

// StatusBar provides status information.
type StatusBar struct {
	container *fyne.Container
	label     *widget.Label
	zoomLabel *widget.Label
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	s := &StatusBar{
		label:     widget.NewLabel("Ready"),
		zoomLabel: widget.NewLabel("100%"),
	}

	s.container = container.NewHBox(
		s.label,
		widget.NewSeparator(),
		s.zoomLabel,
	)

	return s
}

// Container returns the status bar container.
func (s *StatusBar) Container() *fyne.Container {
	return s.container
}

// SetStatus sets the status message.
func (s *StatusBar) SetStatus(msg string) {
	s.label.SetText(msg)
}

// SetZoom sets the zoom percentage display.
func (s *StatusBar) SetZoom(percent int) {
	s.zoomLabel.SetText(strconv.Itoa(percent) + "%")
}
