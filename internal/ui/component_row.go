package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/yeager/fedora-l10n/internal/model"
)

// ComponentRow represents a compact component row widget inside the project
// view: component name, completion bar and translated percentage.
type ComponentRow struct {
	widget.BaseWidget

	row model.ComponentOverview

	// UI components
	nameLabel    *widget.Label
	percentBar   *percentBar
	percentLabel *canvas.Text
	linkBtn      *widget.Button

	// Callbacks
	onLink func(url string)
}

// NewComponentRow creates a new component row widget
func NewComponentRow(row model.ComponentOverview) *ComponentRow {
	cr := &ComponentRow{row: row}
	cr.ExtendBaseWidget(cr)
	cr.createUI()
	cr.updateFromRow()
	return cr
}

// SetCallbacks sets the action callbacks
func (cr *ComponentRow) SetCallbacks(onLink func(url string)) {
	cr.onLink = onLink
}

// UpdateRow updates the widget with new overview data
func (cr *ComponentRow) UpdateRow(row model.ComponentOverview) {
	cr.row = row
	cr.updateFromRow()
	cr.Refresh()
}

// createUI creates the UI components
func (cr *ComponentRow) createUI() {
	cr.nameLabel = widget.NewLabel("")
	cr.nameLabel.Truncation = fyne.TextTruncateEllipsis
	cr.nameLabel.Alignment = fyne.TextAlignLeading

	cr.percentBar = newPercentBar()

	cr.percentLabel = canvas.NewText("", color.White)
	cr.percentLabel.Alignment = fyne.TextAlignTrailing
	cr.percentLabel.TextStyle = fyne.TextStyle{Monospace: true}

	cr.linkBtn = widget.NewButton(IconLink, func() {
		if cr.onLink != nil && cr.row.Component.WebURL != "" {
			cr.onLink(cr.row.Component.WebURL)
		}
	})
	cr.linkBtn.Importance = widget.LowImportance
}

// updateFromRow updates UI components based on the overview data
func (cr *ComponentRow) updateFromRow() {
	cr.nameLabel.SetText(cr.row.Component.DisplayName())

	pct := cr.row.TranslatedPercent
	band := model.BandForPercent(pct)

	cr.percentBar.SetValue(pct, band.Color())

	cr.percentLabel.Text = fmt.Sprintf(PercentLabelFormat, pct)
	cr.percentLabel.Color = band.Color()
	cr.percentLabel.Refresh()

	if cr.row.Component.WebURL == "" {
		cr.linkBtn.Disable()
	} else {
		cr.linkBtn.Enable()
	}
}

// CreateRenderer creates the widget renderer
func (cr *ComponentRow) CreateRenderer() fyne.WidgetRenderer {
	return &componentRowRenderer{componentRow: cr}
}

// componentRowRenderer renders the component row widget
type componentRowRenderer struct {
	componentRow *ComponentRow
	layout       *fyne.Container
}

// Layout arranges the components
func (r *componentRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *componentRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *componentRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *componentRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *componentRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *componentRowRenderer) createLayout() {
	cr := r.componentRow

	rightCluster := container.NewHBox(
		fixedWidth(PercentBarWidth, cr.percentBar),
		fixedWidth(PercentLabelWidth, cr.percentLabel),
		cr.linkBtn,
	)

	mainContent := container.NewBorder(nil, nil, nil, rightCluster, cr.nameLabel)

	r.layout = container.NewVBox(
		mainContent,
		widget.NewSeparator(),
	)
}
