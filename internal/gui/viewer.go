package gui

import (
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"zoomable/pkg/zoomable"
)

// zoomStep is the factor applied by ZoomIn and ZoomOut.
const zoomStep = 1.2

// ZoomViewer is a custom widget for viewing an image with pan/zoom.
type ZoomViewer struct {
	widget.BaseWidget

	image   *canvas.Image
	pageImg image.Image

	// View state
	state zoomable.State
	start time.Time

	// Propagation decides when a drag belongs to the viewer.
	Propagation zoomable.Propagation
	// DoubleTapScale is the scale a double tap zooms to.
	DoubleTapScale float64

	// Drags the state refused, reported on DragEnd.
	overscroll zoomable.Offset

	OnChanged    func(zoomable.State)
	OnOverscroll func(zoomable.Offset)
}

// NewZoomViewer creates a new viewer widget.
func NewZoomViewer(opts zoomable.Options) (*ZoomViewer, error) {
	st, err := zoomable.New(opts)
	if err != nil {
		return nil, err
	}

	v := &ZoomViewer{
		state:          st,
		start:          time.Now(),
		Propagation:    zoomable.PropagateContentEdge,
		DoubleTapScale: zoomable.DefaultDoubleTapScale,
	}
	v.ExtendBaseWidget(v)

	v.image = canvas.NewImageFromImage(nil)
	v.image.FillMode = canvas.ImageFillStretch
	v.image.ScaleMode = canvas.ImageScaleSmooth

	return v, nil
}

// State returns the committed zoom state.
func (v *ZoomViewer) State() zoomable.State {
	return v.state
}

// SetImage sets the image to display and resets the view.
func (v *ZoomViewer) SetImage(img image.Image) {
	v.pageImg = img
	v.image.Image = img
	v.state = v.state.WithContentSize(v.fittedContent(v.state.LayoutSize())).Reset()
	v.commit()
}

// Resize records the new viewport size before laying out.
func (v *ZoomViewer) Resize(size fyne.Size) {
	layout := zoomable.Size{Width: float64(size.Width), Height: float64(size.Height)}
	v.state = v.state.WithLayoutSize(layout).WithContentSize(v.fittedContent(layout))
	v.BaseWidget.Resize(size)
	v.notify()
}

// fittedContent is the image size scaled to fit layout.
func (v *ZoomViewer) fittedContent(layout zoomable.Size) zoomable.Size {
	if v.pageImg == nil {
		return zoomable.Size{}
	}
	b := v.pageImg.Bounds()
	return zoomable.Fit(zoomable.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}, layout)
}

// CreateRenderer creates the renderer for this widget.
func (v *ZoomViewer) CreateRenderer() fyne.WidgetRenderer {
	return &zoomViewerRenderer{
		viewer: v,
	}
}

// Dragged handles drag events for panning.
func (v *ZoomViewer) Dragged(event *fyne.DragEvent) {
	pan := zoomable.Offset{X: float64(event.Dragged.DX), Y: float64(event.Dragged.DY)}
	if !v.state.ConsumesPan(pan, v.Propagation) {
		v.overscroll = v.overscroll.Add(pan)
		return
	}
	g := zoomable.PanBy(pan.X, pan.Y)
	g.Time = v.now()
	v.apply(g)
}

// DragEnd settles the scale and reports refused drags.
func (v *ZoomViewer) DragEnd() {
	over := v.overscroll
	v.overscroll = zoomable.Offset{}

	v.state = v.state.Settle()
	v.commit()

	if !over.IsZero() && v.OnOverscroll != nil {
		v.OnOverscroll(over)
	}
}

// Scrolled handles scroll events for zooming toward the cursor. Scrolling
// out may dip below the resting scale; the first step back in settles.
func (v *ZoomViewer) Scrolled(event *fyne.ScrollEvent) {
	if event.Scrolled.DY > 0 {
		v.state = v.state.Settle()
	}
	g := zoomable.ZoomAt(1+float64(event.Scrolled.DY)/100, toOffset(event.Position))
	g.Time = v.now()
	v.apply(g)
}

// DoubleTapped toggles between the resting scale and DoubleTapScale.
func (v *ZoomViewer) DoubleTapped(event *fyne.PointEvent) {
	v.state = v.state.ToggleZoom(toOffset(event.Position), v.DoubleTapScale)
	v.commit()
}

// Pan moves the content by a fixed amount.
func (v *ZoomViewer) Pan(dx, dy float64) {
	v.apply(zoomable.PanBy(dx, dy))
}

// ZoomIn increases zoom level about the center.
func (v *ZoomViewer) ZoomIn() {
	v.apply(zoomable.ZoomAt(zoomStep, v.state.LayoutSize().Center()))
}

// ZoomOut decreases zoom level about the center. A button press has no
// gesture end, so it settles at once.
func (v *ZoomViewer) ZoomOut() {
	v.state = v.state.Apply(zoomable.ZoomAt(1/zoomStep, v.state.LayoutSize().Center())).Settle()
	v.commit()
}

// FitWidth zooms until the content fills the viewer width.
func (v *ZoomViewer) FitWidth() {
	content := v.state.ContentSize()
	if content.IsEmpty() {
		return
	}
	v.state = v.state.ZoomTo(v.state.LayoutSize().Width/content.Width, v.state.LayoutSize().Center())
	v.commit()
}

// ResetView fits the whole image in the viewer.
func (v *ZoomViewer) ResetView() {
	v.state = v.state.Reset()
	v.commit()
}

func (v *ZoomViewer) apply(g zoomable.Gesture) {
	v.state = v.state.Apply(g)
	v.commit()
}

func (v *ZoomViewer) commit() {
	v.Refresh()
	v.notify()
}

func (v *ZoomViewer) notify() {
	if v.OnChanged != nil {
		v.OnChanged(v.state)
	}
}

func (v *ZoomViewer) now() time.Duration {
	return time.Since(v.start)
}

func toOffset(p fyne.Position) zoomable.Offset {
	return zoomable.Offset{X: float64(p.X), Y: float64(p.Y)}
}

// zoomViewerRenderer renders the viewer.
type zoomViewerRenderer struct {
	viewer *ZoomViewer
}

func (r *zoomViewerRenderer) Layout(size fyne.Size) {
	if r.viewer.pageImg == nil {
		return
	}

	st := r.viewer.state
	origin := st.Transform().TransformPoint(zoomable.Offset{})
	content := st.ContentSize()

	r.viewer.image.Move(fyne.NewPos(float32(origin.X), float32(origin.Y)))
	r.viewer.image.Resize(fyne.NewSize(
		float32(content.Width*st.Scale()),
		float32(content.Height*st.Scale()),
	))
}

func (r *zoomViewerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(200, 200)
}

func (r *zoomViewerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.viewer.image}
}

func (r *zoomViewerRenderer) Refresh() {
	r.Layout(r.viewer.Size())
	r.viewer.image.Refresh()
}

func (r *zoomViewerRenderer) Destroy() {}
