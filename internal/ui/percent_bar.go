package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/yeager/fedora-l10n/internal/model"
)

// Bar sizing
const (
	percentBarHeight       float32 = 8
	percentBarCornerRadius float32 = 4
)

// percentBar is a thin horizontal completion bar with a colored fill sized by
// a 0-100 value.
type percentBar struct {
	widget.BaseWidget

	value float64
	fill  color.Color
}

func newPercentBar() *percentBar {
	b := &percentBar{fill: model.ColorBandEmpty}
	b.ExtendBaseWidget(b)
	return b
}

// SetValue sets the bar value (0-100) and fill color
func (b *percentBar) SetValue(value float64, fill color.Color) {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	b.value = value
	b.fill = fill
	b.Refresh()
}

// CreateRenderer creates the widget renderer
func (b *percentBar) CreateRenderer() fyne.WidgetRenderer {
	track := canvas.NewRectangle(color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x30})
	track.CornerRadius = percentBarCornerRadius
	fill := canvas.NewRectangle(b.fill)
	fill.CornerRadius = percentBarCornerRadius
	return &percentBarRenderer{bar: b, track: track, fill: fill}
}

type percentBarRenderer struct {
	bar   *percentBar
	track *canvas.Rectangle
	fill  *canvas.Rectangle
}

func (r *percentBarRenderer) Layout(size fyne.Size) {
	barY := (size.Height - percentBarHeight) / 2
	if barY < 0 {
		barY = 0
	}
	r.track.Move(fyne.NewPos(0, barY))
	r.track.Resize(fyne.NewSize(size.Width, percentBarHeight))

	fillWidth := size.Width * float32(r.bar.value/100)
	r.fill.Move(fyne.NewPos(0, barY))
	r.fill.Resize(fyne.NewSize(fillWidth, percentBarHeight))
}

func (r *percentBarRenderer) MinSize() fyne.Size {
	return fyne.NewSize(percentBarHeight*2, percentBarHeight)
}

func (r *percentBarRenderer) Refresh() {
	r.fill.FillColor = r.bar.fill
	r.fill.Refresh()
	r.track.Refresh()
	size := r.track.Size()
	if size.Width > 0 {
		r.Layout(fyne.NewSize(size.Width, size.Height))
	}
}

func (r *percentBarRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.track, r.fill}
}

func (r *percentBarRenderer) Destroy() {}
