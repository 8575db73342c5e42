package gui

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"zoomable/pkg/viewport"
	"zoomable/pkg/zoomable"
)

func newTestViewer(t *testing.T) *ZoomViewer {
	t.Helper()
	v, err := NewZoomViewer(zoomable.DefaultOptions())
	if err != nil {
		t.Fatalf("NewZoomViewer: %v", err)
	}
	v.SetImage(image.NewRGBA(image.Rect(0, 0, 200, 200)))
	v.Resize(fyne.NewSize(100, 100))
	return v
}

func TestNewZoomViewer_InvalidOptions(t *testing.T) {
	if _, err := NewZoomViewer(zoomable.WithMaxScale(0.5)); err == nil {
		t.Fatalf("expected error for maxScale below 1")
	}
}

func TestZoomViewer_ResizeFitsContent(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	v := newTestViewer(t)
	st := v.State()
	if st.LayoutSize() != (zoomable.Size{Width: 100, Height: 100}) {
		t.Fatalf("layout = %+v", st.LayoutSize())
	}
	if st.ContentSize() != (zoomable.Size{Width: 100, Height: 100}) {
		t.Fatalf("content = %+v, want the image fitted to the viewer", st.ContentSize())
	}
}

func TestZoomViewer_ScrollZoomsAtCursor(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	v := newTestViewer(t)
	var seen []zoomable.State
	v.OnChanged = func(st zoomable.State) { seen = append(seen, st) }

	v.Scrolled(&fyne.ScrollEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(0, 0)},
		Scrolled:   fyne.NewDelta(0, 100),
	})

	st := v.State()
	if st.Scale() != 2 || st.OffsetX() != 50 || st.OffsetY() != 50 {
		t.Fatalf("scale %v offset %+v, want 2 at (50, 50)", st.Scale(), st.Offset())
	}
	if len(seen) != 1 || seen[0] != st {
		t.Fatalf("OnChanged saw %d states", len(seen))
	}
}

func TestZoomViewer_ElasticZoomOutSettles(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	v, err := NewZoomViewer(zoomable.ElasticOptions())
	if err != nil {
		t.Fatalf("NewZoomViewer: %v", err)
	}
	v.SetImage(image.NewRGBA(image.Rect(0, 0, 200, 200)))
	v.Resize(fyne.NewSize(100, 100))
	center := fyne.PointEvent{Position: fyne.NewPos(50, 50)}

	v.Scrolled(&fyne.ScrollEvent{PointEvent: center, Scrolled: fyne.NewDelta(0, -5)})
	if s := v.State().Scale(); s >= 1 || s < zoomable.ElasticMinScale {
		t.Fatalf("scroll out: scale %v, want a dip below 1", s)
	}
	v.Scrolled(&fyne.ScrollEvent{PointEvent: center, Scrolled: fyne.NewDelta(0, -50)})
	if s := v.State().Scale(); s != zoomable.ElasticMinScale {
		t.Fatalf("scroll out: scale %v, want clamped to %v", s, zoomable.ElasticMinScale)
	}

	v.DragEnd()
	if st := v.State(); st.Scale() != 1 || !st.Offset().IsZero() {
		t.Fatalf("DragEnd: scale %v offset %+v, want settled at 1", st.Scale(), st.Offset())
	}

	v.Scrolled(&fyne.ScrollEvent{PointEvent: center, Scrolled: fyne.NewDelta(0, -5)})
	v.Scrolled(&fyne.ScrollEvent{PointEvent: center, Scrolled: fyne.NewDelta(0, 10)})
	if s := v.State().Scale(); s <= 1 {
		t.Fatalf("scroll in: scale %v, want settled then zoomed past 1", s)
	}

	v.ResetView()
	v.ZoomOut()
	if s := v.State().Scale(); s != 1 {
		t.Fatalf("ZoomOut: scale %v, want 1", s)
	}
}

func TestZoomViewer_DragPansAndReportsOverscroll(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	v := newTestViewer(t)
	v.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, 100)})

	var over zoomable.Offset
	calls := 0
	v.OnOverscroll = func(o zoomable.Offset) {
		over = o
		calls++
	}

	// Left edge is showing, so dragging right is refused.
	v.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(30, 0)})
	v.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(20, 0)})
	if v.State().OffsetX() != 50 {
		t.Fatalf("offsetX = %v, want 50", v.State().OffsetX())
	}
	v.DragEnd()
	if calls != 1 || over != (zoomable.Offset{X: 50}) {
		t.Fatalf("overscroll = %+v after %d calls", over, calls)
	}

	v.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-10, 0)})
	if v.State().OffsetX() != 40 {
		t.Fatalf("offsetX = %v, want 40", v.State().OffsetX())
	}
	v.DragEnd()
	if calls != 1 {
		t.Fatalf("consumed drag must not report overscroll")
	}
}

func TestZoomViewer_DoubleTapToggles(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	v := newTestViewer(t)
	v.DoubleTapped(&fyne.PointEvent{Position: fyne.NewPos(100, 100)})
	if st := v.State(); st.Scale() != 2.5 || st.OffsetX() != -75 {
		t.Fatalf("scale %v offset %+v", st.Scale(), st.Offset())
	}
	v.DoubleTapped(&fyne.PointEvent{Position: fyne.NewPos(100, 100)})
	if st := v.State(); st.Scale() != 1 || !st.Offset().IsZero() {
		t.Fatalf("second double tap should reset, got scale %v", st.Scale())
	}
}

func TestZoomViewer_ButtonsAndLayout(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	v := newTestViewer(t)
	v.FitWidth()
	if v.State().Scale() != 1 {
		t.Fatalf("FitWidth on a fitted square: scale %v", v.State().Scale())
	}

	v.ZoomIn()
	v.ZoomIn()
	if got := v.State().Scale(); got < 1.43 || got > 1.45 {
		t.Fatalf("scale after two zoom-ins = %v", got)
	}
	v.ZoomOut()
	v.ZoomOut()
	v.ZoomOut()
	if v.State().Scale() != 1 {
		t.Fatalf("zoom out should stop at the minimum, got %v", v.State().Scale())
	}

	v.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, 100)})
	v.Pan(-10, -20)
	r := test.WidgetRenderer(v).(*zoomViewerRenderer)
	r.Layout(v.Size())
	if pos := v.image.Position(); pos != fyne.NewPos(-10, -20) {
		t.Fatalf("image position = %v, want (-10, -20)", pos)
	}
	if size := v.image.Size(); size != fyne.NewSize(200, 200) {
		t.Fatalf("image size = %v, want 200x200", size)
	}

	v.ResetView()
	if !v.State().Offset().IsZero() || v.State().Scale() != 1 {
		t.Fatalf("ResetView left %+v", v.State())
	}
}

func writeImages(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		img := image.NewRGBA(image.Rect(0, 0, 4, 3))
		img.Set(0, 0, color.White)
		if err := viewport.Save(filepath.Join(dir, n), img); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	return dir
}

func TestApp_Navigation(t *testing.T) {
	fa := test.NewApp()
	defer fa.Quit()

	a, err := newApp(fa, zoomable.DefaultOptions())
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}

	dir := writeImages(t, "a.png", "b.png", "c.png")
	if err := a.loadPath(filepath.Join(dir, "b.png")); err != nil {
		t.Fatalf("loadPath: %v", err)
	}
	if a.current != 1 || len(a.images) != 3 {
		t.Fatalf("current %d of %d, want 1 of 3", a.current, len(a.images))
	}

	a.handleKey(&fyne.KeyEvent{Name: fyne.KeyPageDown})
	if a.current != 2 {
		t.Fatalf("PageDown: current %d, want 2", a.current)
	}
	a.nextImage()
	if a.current != 2 {
		t.Fatalf("next past the end: current %d, want 2", a.current)
	}

	a.handleOverscroll(zoomable.Offset{X: 120, Y: 10})
	if a.current != 1 {
		t.Fatalf("overscroll right: current %d, want 1", a.current)
	}
	a.handleOverscroll(zoomable.Offset{X: -20})
	if a.current != 1 {
		t.Fatalf("short overscroll must not turn the page")
	}
	a.handleOverscroll(zoomable.Offset{X: -100, Y: 300})
	if a.current != 1 {
		t.Fatalf("mostly vertical overscroll must not turn the page")
	}

	a.handleKey(&fyne.KeyEvent{Name: fyne.KeyHome})
	if a.current != 0 {
		t.Fatalf("Home: current %d, want 0", a.current)
	}
}

func TestApp_LoadPathErrors(t *testing.T) {
	fa := test.NewApp()
	defer fa.Quit()

	a, err := newApp(fa, zoomable.DefaultOptions())
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	if err := a.loadPath(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
	if err := a.loadPath(t.TempDir()); err == nil {
		t.Fatalf("expected error for a directory without images")
	}
}
