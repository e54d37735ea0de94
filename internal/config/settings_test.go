package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default is detected from the environment, never empty
	if lang := settings.GetLanguage(); lang == "" {
		t.Error("Language should never be empty")
	}

	// Custom value round-trips
	settings.SetLanguage("sv")
	if got := settings.GetLanguage(); got != "sv" {
		t.Errorf("Expected language 'sv', got %s", got)
	}

	// Whitespace and empty fall back to the default
	settings.SetLanguage("  ")
	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, got)
	}
}

func TestApplyDefaultLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Seeds the language when nothing has been chosen yet
	settings.ApplyDefaultLanguage("pt")
	if got := settings.GetLanguage(); got != "pt" {
		t.Errorf("Expected seeded language 'pt', got %s", got)
	}

	// Never overrides an existing choice
	settings.ApplyDefaultLanguage("sv")
	if got := settings.GetLanguage(); got != "pt" {
		t.Errorf("Expected language to stay 'pt', got %s", got)
	}

	// Empty default is a no-op
	other := NewSettings(test.NewApp())
	other.SetLanguage("sv")
	other.ApplyDefaultLanguage("")
	if got := other.GetLanguage(); got != "sv" {
		t.Errorf("Expected language to stay 'sv', got %s", got)
	}
}

func TestAppLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetAppLanguage(); got != DefaultAppLanguage {
		t.Errorf("Expected default app language %s, got %s", DefaultAppLanguage, got)
	}

	settings.SetAppLanguage("sv")
	if got := settings.GetAppLanguage(); got != "sv" {
		t.Errorf("Expected app language 'sv', got %s", got)
	}
}

func TestHeatmapMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetHeatmapMode() != DefaultHeatmapMode {
		t.Error("Unexpected default heatmap mode")
	}

	settings.SetHeatmapMode(true)
	if !settings.GetHeatmapMode() {
		t.Error("Heatmap mode should persist")
	}
}

func TestNotificationsEnabled(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetNotificationsEnabled() != DefaultNotifications {
		t.Error("Unexpected default notifications setting")
	}

	settings.SetNotificationsEnabled(true)
	if !settings.GetNotificationsEnabled() {
		t.Error("Notifications setting should persist")
	}
}

func TestWelcomeDone(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetWelcomeDone() {
		t.Error("Welcome should not be marked done initially")
	}

	settings.SetWelcomeDone(true)
	if !settings.GetWelcomeDone() {
		t.Error("Welcome done flag should persist")
	}
}

func TestDetectSystemLanguage(t *testing.T) {
	tests := []struct {
		name     string
		lcAll    string
		lang     string
		expected string
	}{
		{"full locale", "sv_SE.UTF-8", "", "sv"},
		{"plain code", "de", "", "de"},
		{"LANG fallback", "", "pt_BR.UTF-8", "pt"},
		{"C locale ignored", "C", "", DefaultLanguage},
		{"unset", "", "", DefaultLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tt.lcAll)
			t.Setenv("LC_MESSAGES", "")
			t.Setenv("LANG", tt.lang)

			if got := DetectSystemLanguage(); got != tt.expected {
				t.Errorf("DetectSystemLanguage() = %q, want %q", got, tt.expected)
			}
		})
	}
}
