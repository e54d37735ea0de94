package model

import "image/color"

// PercentBand classifies a translated percentage into a display band
type PercentBand int

const (
	// BandComplete means the project is fully translated
	BandComplete PercentBand = iota

	// BandHigh means most strings are translated
	BandHigh

	// BandMedium means roughly half of the strings are translated
	BandMedium

	// BandLow means a small share of strings are translated
	BandLow

	// BandMinimal means almost nothing is translated
	BandMinimal
)

// Band colors matching the Fedora translation status palette
var (
	ColorBandComplete = color.RGBA{R: 0x26, G: 0xa2, B: 0x69, A: 0xff}
	ColorBandHigh     = color.RGBA{R: 0x2e, G: 0xc2, B: 0x7e, A: 0xff}
	ColorBandMedium   = color.RGBA{R: 0xe5, G: 0xa5, B: 0x0a, A: 0xff}
	ColorBandLow      = color.RGBA{R: 0xff, G: 0x78, B: 0x00, A: 0xff}
	ColorBandMinimal  = color.RGBA{R: 0xc0, G: 0x1c, B: 0x28, A: 0xff}
	ColorBandEmpty    = color.RGBA{R: 0x77, G: 0x76, B: 0x7b, A: 0xff}
)

// BandForPercent maps a translated percentage to its list display band.
func BandForPercent(pct float64) PercentBand {
	switch {
	case pct >= 100:
		return BandComplete
	case pct >= 80:
		return BandHigh
	case pct >= 50:
		return BandMedium
	case pct >= 20:
		return BandLow
	default:
		return BandMinimal
	}
}

// Color returns the display color for the band.
func (b PercentBand) Color() color.Color {
	switch b {
	case BandComplete:
		return ColorBandComplete
	case BandHigh:
		return ColorBandHigh
	case BandMedium:
		return ColorBandMedium
	case BandLow:
		return ColorBandLow
	default:
		return ColorBandMinimal
	}
}

// HeatColorForPercent maps a percentage to a heatmap cell color. The heatmap
// uses coarser thresholds than the list view and a neutral gray for projects
// with no translated strings at all.
func HeatColorForPercent(pct float64) color.Color {
	switch {
	case pct >= 100:
		return ColorBandComplete
	case pct >= 75:
		return ColorBandMedium
	case pct >= 50:
		return ColorBandLow
	case pct > 0:
		return ColorBandMinimal
	default:
		return ColorBandEmpty
	}
}
