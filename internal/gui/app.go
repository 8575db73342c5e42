// Package gui provides a native desktop image viewer with pan/zoom using
// Fyne.
package gui

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"

	"zoomable/pkg/viewport"
	"zoomable/pkg/zoomable"
)

const (
	// panStep is how far the arrow keys move the content.
	panStep = 40
	// pageSwipe is the horizontal overscroll that turns to another image.
	pageSwipe = 80
)

// App represents the image viewer application.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window

	images  []string
	current int

	// UI components
	viewer    *ZoomViewer
	toolbar   *Toolbar
	statusBar *StatusBar
}

// NewApp creates a new viewer application.
func NewApp(opts zoomable.Options) (*App, error) {
	return newApp(app.New(), opts)
}

func newApp(fyneApp fyne.App, opts zoomable.Options) (*App, error) {
	viewer, err := NewZoomViewer(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create viewer: %w", err)
	}

	a := &App{
		fyneApp: fyneApp,
		viewer:  viewer,
	}

	a.fyneApp.Settings().SetTheme(theme.DarkTheme())
	a.mainWindow = a.fyneApp.NewWindow("Zoomable")
	a.mainWindow.Resize(fyne.NewSize(900, 700))
	a.buildUI()

	return a, nil
}

// Run starts the application.
func (a *App) Run() {
	a.mainWindow.ShowAndRun()
}

// RunWithPath starts the application with an image or directory loaded.
func (a *App) RunWithPath(path string) {
	if err := a.loadPath(path); err != nil {
		a.showError(err)
	}
	a.mainWindow.ShowAndRun()
}

// buildUI constructs the user interface.
func (a *App) buildUI() {
	a.toolbar = NewToolbar()
	a.toolbar.OnOpen = a.openFile
	a.toolbar.OnPrev = a.prevImage
	a.toolbar.OnNext = a.nextImage
	a.toolbar.OnGoTo = a.goToImage
	a.toolbar.OnZoomIn = a.viewer.ZoomIn
	a.toolbar.OnZoomOut = a.viewer.ZoomOut
	a.toolbar.OnFitWidth = a.viewer.FitWidth
	a.toolbar.OnReset = a.viewer.ResetView

	a.statusBar = NewStatusBar()

	a.viewer.OnChanged = func(st zoomable.State) {
		a.statusBar.SetZoom(int(math.Round(st.Scale() * 100)))
	}
	a.viewer.OnOverscroll = a.handleOverscroll

	content := container.NewBorder(
		container.NewPadded(a.toolbar.Container()), // Top
		a.statusBar.Container(),                    // Bottom
		nil,                                        // Left
		nil,                                        // Right
		a.viewer,                                   // Center
	)

	a.mainWindow.SetContent(content)
	a.mainWindow.Canvas().SetOnTypedKey(a.handleKey)
}

// handleKey handles keyboard navigation.
func (a *App) handleKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyLeft:
		a.viewer.Pan(panStep, 0)
	case fyne.KeyRight:
		a.viewer.Pan(-panStep, 0)
	case fyne.KeyUp:
		a.viewer.Pan(0, panStep)
	case fyne.KeyDown:
		a.viewer.Pan(0, -panStep)
	case fyne.KeyPageUp, fyne.KeyBackspace:
		a.prevImage()
	case fyne.KeyPageDown, fyne.KeySpace:
		a.nextImage()
	case fyne.KeyHome:
		a.goToImage(0)
	case fyne.KeyEnd:
		a.goToImage(len(a.images) - 1)
	case fyne.KeyPlus, fyne.KeyEqual:
		a.viewer.ZoomIn()
	case fyne.KeyMinus:
		a.viewer.ZoomOut()
	case fyne.Key0:
		a.viewer.ResetView()
	}
}

// handleOverscroll turns to the neighbouring image after a horizontal
// drag the content could not absorb.
func (a *App) handleOverscroll(over zoomable.Offset) {
	if math.Abs(over.X) < pageSwipe || math.Abs(over.X) < math.Abs(over.Y) {
		return
	}
	if over.X < 0 {
		a.nextImage()
	} else {
		a.prevImage()
	}
}

// openFile shows a file dialog and loads the selected image.
func (a *App) openFile() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			a.showError(err)
			return
		}
		if reader == nil {
			return // Cancelled
		}
		defer reader.Close()

		if err := a.loadPath(reader.URI().Path()); err != nil {
			a.showError(err)
		}
	}, a.mainWindow)
}

// loadPath loads an image file together with its sibling images, or every
// image in a directory.
func (a *App) loadPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	dir, start := path, ""
	if !info.IsDir() {
		dir, start = filepath.Dir(path), path
	}

	images, err := viewport.List(dir)
	if err != nil {
		return err
	}
	if len(images) == 0 {
		return fmt.Errorf("no images in %s", dir)
	}

	a.images = images
	a.current = 0
	for i, p := range images {
		if p == start {
			a.current = i
		}
	}

	return a.showCurrent()
}

// showCurrent decodes and displays the current image.
func (a *App) showCurrent() error {
	if len(a.images) == 0 {
		return nil
	}

	path := a.images[a.current]
	img, err := viewport.Load(path)
	if err != nil {
		return err
	}

	a.viewer.SetImage(img)
	a.mainWindow.SetTitle(fmt.Sprintf("Zoomable - %s", filepath.Base(path)))
	a.toolbar.SetIndex(a.current, len(a.images))
	a.statusBar.SetStatus(fmt.Sprintf("%s (%dx%d)", filepath.Base(path), img.Bounds().Dx(), img.Bounds().Dy()))
	return nil
}

// prevImage navigates to the previous image.
func (a *App) prevImage() {
	a.goToImage(a.current - 1)
}

// nextImage navigates to the next image.
func (a *App) nextImage() {
	a.goToImage(a.current + 1)
}

// goToImage navigates to a specific image.
func (a *App) goToImage(index int) {
	if len(a.images) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(a.images) {
		index = len(a.images) - 1
	}
	if index == a.current {
		return
	}
	a.current = index
	if err := a.showCurrent(); err != nil {
		a.showError(err)
	}
}

func (a *App) showError(err error) {
	log.Printf("zoomable: %v", err)
	dialog.ShowError(err, a.mainWindow)
}
