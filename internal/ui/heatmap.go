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

// HeatCell is a tappable colored heatmap tile for one project. The fill color
// reflects the translated percentage bucket for the selected language.
type HeatCell struct {
	widget.BaseWidget

	row model.ProjectOverview

	background *canvas.Rectangle
	nameText   *canvas.Text
	pctText    *canvas.Text

	onOpen func(project model.ProjectSummary)
}

// NewHeatCell creates a new heatmap cell widget
func NewHeatCell(row model.ProjectOverview, onOpen func(project model.ProjectSummary)) *HeatCell {
	c := &HeatCell{row: row, onOpen: onOpen}
	c.ExtendBaseWidget(c)

	c.background = canvas.NewRectangle(model.HeatColorForPercent(row.TranslatedPercent))
	c.background.CornerRadius = 6

	c.nameText = canvas.NewText(row.Project.DisplayName(), color.White)
	c.nameText.TextStyle = fyne.TextStyle{Bold: true}
	c.nameText.TextSize = 12

	c.pctText = canvas.NewText(fmt.Sprintf(PercentLabelFormat, row.TranslatedPercent), color.White)
	c.pctText.TextSize = 14

	return c
}

// UpdateRow updates the cell with new overview data
func (c *HeatCell) UpdateRow(row model.ProjectOverview) {
	c.row = row
	c.background.FillColor = model.HeatColorForPercent(row.TranslatedPercent)
	c.nameText.Text = row.Project.DisplayName()
	c.pctText.Text = fmt.Sprintf(PercentLabelFormat, row.TranslatedPercent)
	c.Refresh()
}

// Tapped opens the project's component view
func (c *HeatCell) Tapped(_ *fyne.PointEvent) {
	if c.onOpen != nil {
		c.onOpen(c.row.Project)
	}
}

// CreateRenderer creates the widget renderer
func (c *HeatCell) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewPadded(container.NewVBox(c.nameText, c.pctText))
	return widget.NewSimpleRenderer(container.NewStack(c.background, content))
}

// MinSize returns the fixed cell size
func (c *HeatCell) MinSize() fyne.Size {
	return fyne.NewSize(HeatCellWidth, HeatCellHeight)
}

// NewHeatmap builds a wrapping grid of heatmap cells for the given rows.
func NewHeatmap(rows []model.ProjectOverview, onOpen func(project model.ProjectSummary)) *fyne.Container {
	cells := make([]fyne.CanvasObject, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, NewHeatCell(row, onOpen))
	}
	return container.NewGridWrap(fyne.NewSize(HeatCellWidth, HeatCellHeight), cells...)
}
