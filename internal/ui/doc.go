package ui

// Package ui provides the Fyne user interface: the main window with project
// list, heatmap and component views, dialogs, theme, and localization of the
// app's own strings.
