package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRefresh  = "⟳"
	IconHeatmap  = "▦"
	IconExport   = "⇩"
	IconBack     = "←"
	IconLink     = "🌐"
)

// Text fragments
const (
	PercentLabelFormat = "%.0f%%"
)

// Layout sizing (rows / lists)
const (
	PercentBarWidth   float32 = 120
	PercentLabelWidth float32 = 48

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 40

	HeatCellWidth  float32 = 140
	HeatCellHeight float32 = 64

	WindowWidth  float32 = 800
	WindowHeight float32 = 600
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 440
	SettingsDialogHeight float32 = 320
	APIKeyDialogWidth    float32 = 460
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)

// URLs
const (
	WeblateProfileURL = "https://translate.fedoraproject.org/accounts/profile/#api"
	ProjectHomeURL    = "https://github.com/yeager/fedora-l10n"
)
