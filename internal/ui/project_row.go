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

// ProjectRow represents a compact project row widget showing the project name,
// a colored completion bar, and the translated percentage for the selected
// language. Tapping the row opens the project's component view.
type ProjectRow struct {
	widget.BaseWidget

	row          model.ProjectOverview
	localization *Localization

	// UI components
	nameLabel    *widget.Label
	percentBar   *percentBar
	percentLabel *canvas.Text
	linkBtn      *widget.Button

	// Callbacks
	onOpen func(project model.ProjectSummary)
	onLink func(url string)
}

// NewProjectRow creates a new project row widget
func NewProjectRow(row model.ProjectOverview, localization *Localization) *ProjectRow {
	pr := &ProjectRow{
		row:          row,
		localization: localization,
	}
	pr.ExtendBaseWidget(pr)
	pr.createUI()
	pr.updateFromRow()
	return pr
}

// SetCallbacks sets the action callbacks
func (pr *ProjectRow) SetCallbacks(onOpen func(project model.ProjectSummary), onLink func(url string)) {
	pr.onOpen = onOpen
	pr.onLink = onLink
}

// UpdateRow updates the widget with new overview data
func (pr *ProjectRow) UpdateRow(row model.ProjectOverview) {
	pr.row = row
	pr.updateFromRow()
	pr.Refresh()
}

// Tapped opens the project's component view
func (pr *ProjectRow) Tapped(_ *fyne.PointEvent) {
	if pr.onOpen != nil {
		pr.onOpen(pr.row.Project)
	}
}

// createUI creates the UI components
func (pr *ProjectRow) createUI() {
	pr.nameLabel = widget.NewLabel("")
	pr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	pr.nameLabel.Truncation = fyne.TextTruncateEllipsis
	pr.nameLabel.Alignment = fyne.TextAlignLeading

	pr.percentBar = newPercentBar()

	pr.percentLabel = canvas.NewText("", color.White)
	pr.percentLabel.Alignment = fyne.TextAlignTrailing
	pr.percentLabel.TextStyle = fyne.TextStyle{Monospace: true}

	pr.linkBtn = widget.NewButton(IconLink, func() {
		if pr.onLink != nil && pr.row.Project.WebURL != "" {
			pr.onLink(pr.row.Project.WebURL)
		}
	})
	pr.linkBtn.Importance = widget.LowImportance
}

// updateFromRow updates UI components based on the overview data
func (pr *ProjectRow) updateFromRow() {
	pr.nameLabel.SetText(pr.row.Project.DisplayName())

	pct := pr.row.TranslatedPercent
	band := model.BandForPercent(pct)

	pr.percentBar.SetValue(pct, band.Color())

	pr.percentLabel.Text = fmt.Sprintf(PercentLabelFormat, pct)
	pr.percentLabel.Color = band.Color()
	pr.percentLabel.Refresh()

	if pr.row.Project.WebURL == "" {
		pr.linkBtn.Disable()
	} else {
		pr.linkBtn.Enable()
	}
}

// CreateRenderer creates the widget renderer
func (pr *ProjectRow) CreateRenderer() fyne.WidgetRenderer {
	return &projectRowRenderer{projectRow: pr}
}

// projectRowRenderer renders the project row widget
type projectRowRenderer struct {
	projectRow *ProjectRow
	layout     *fyne.Container
}

// Layout arranges the components
func (r *projectRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *projectRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		min := r.layout.MinSize()
		if min.Width < RowMinWidth {
			min.Width = RowMinWidth
		}
		if min.Height < RowMinHeight {
			min.Height = RowMinHeight
		}
		return min
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *projectRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *projectRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *projectRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *projectRowRenderer) createLayout() {
	pr := r.projectRow

	// Right cluster: bar, percent value and Weblate link at fixed widths so
	// the columns line up across rows.
	rightCluster := container.NewHBox(
		fixedWidth(PercentBarWidth, pr.percentBar),
		fixedWidth(PercentLabelWidth, pr.percentLabel),
		pr.linkBtn,
	)

	// Border with the name expanding into the remaining space on the left.
	mainContent := container.NewBorder(nil, nil, nil, rightCluster, pr.nameLabel)

	r.layout = container.NewVBox(
		mainContent,
		widget.NewSeparator(),
	)
}

// fixedWidth pins an object to a fixed width using a transparent rectangle
// underneath.
func fixedWidth(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
	return container.NewStack(spacer, obj)
}
