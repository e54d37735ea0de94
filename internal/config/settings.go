package config

import (
	"os"
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage      = "stats_language"
	KeyAppLanguage   = "app_language"
	KeyHeatmapMode   = "heatmap_mode"
	KeyNotifications = "notifications_enabled"
	KeyWelcomeDone   = "welcome_done"
	KeyDarkTheme     = "dark_theme"
)

// Default values
const (
	DefaultLanguage      = "en"
	DefaultAppLanguage   = "system"
	DefaultHeatmapMode   = false
	DefaultNotifications = false
	DefaultDarkTheme     = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the language code used for translation statistics.
// Defaults to the detected system language.
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		lang = DetectSystemLanguage()
		s.SetLanguage(lang)
	}
	return lang
}

// ApplyDefaultLanguage seeds the statistics language when the user has not
// chosen one yet. Used for the config file override, which takes precedence
// over locale detection but never over an explicit choice.
func (s *Settings) ApplyDefaultLanguage(lang string) {
	if lang == "" {
		return
	}
	if s.app.Preferences().String(KeyLanguage) != "" {
		return
	}
	s.SetLanguage(lang)
}

// SetLanguage sets the statistics language code
func (s *Settings) SetLanguage(lang string) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAppLanguage returns the configured UI language
func (s *Settings) GetAppLanguage() string {
	lang := s.app.Preferences().String(KeyAppLanguage)
	if lang == "" {
		s.SetAppLanguage(DefaultAppLanguage)
		return DefaultAppLanguage
	}
	return lang
}

// SetAppLanguage sets the UI language
func (s *Settings) SetAppLanguage(lang string) {
	s.app.Preferences().SetString(KeyAppLanguage, lang)
}

// GetHeatmapMode returns whether the heatmap view is active
func (s *Settings) GetHeatmapMode() bool {
	return s.app.Preferences().BoolWithFallback(KeyHeatmapMode, DefaultHeatmapMode)
}

// SetHeatmapMode sets the heatmap view state
func (s *Settings) SetHeatmapMode(enabled bool) {
	s.app.Preferences().SetBool(KeyHeatmapMode, enabled)
}

// GetNotificationsEnabled returns whether low-translation notifications are on
func (s *Settings) GetNotificationsEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyNotifications, DefaultNotifications)
}

// SetNotificationsEnabled toggles low-translation notifications
func (s *Settings) SetNotificationsEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyNotifications, enabled)
}

// GetWelcomeDone returns whether the first-run welcome dialog has been shown
func (s *Settings) GetWelcomeDone() bool {
	return s.app.Preferences().Bool(KeyWelcomeDone)
}

// SetWelcomeDone marks the welcome dialog as shown
func (s *Settings) SetWelcomeDone(done bool) {
	s.app.Preferences().SetBool(KeyWelcomeDone, done)
}

// GetDarkTheme returns whether the dark theme is forced
func (s *Settings) GetDarkTheme() bool {
	return s.app.Preferences().BoolWithFallback(KeyDarkTheme, DefaultDarkTheme)
}

// SetDarkTheme sets the dark theme preference
func (s *Settings) SetDarkTheme(dark bool) {
	s.app.Preferences().SetBool(KeyDarkTheme, dark)
}

// DetectSystemLanguage returns the two-letter language code from the process
// locale, falling back to English.
func DetectSystemLanguage() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		loc := os.Getenv(env)
		if loc == "" || loc == "C" || loc == "POSIX" {
			continue
		}
		// e.g. "sv_SE.UTF-8" -> "sv"
		if idx := strings.IndexAny(loc, "_."); idx > 0 {
			loc = loc[:idx]
		}
		if len(loc) >= 2 {
			return strings.ToLower(loc[:2])
		}
	}
	return DefaultLanguage
}
