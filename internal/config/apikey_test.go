package config

import (
	"testing"
)

func TestAPIKeyFromEnvironment(t *testing.T) {
	t.Setenv(EnvAPIKey, "primary-key")
	t.Setenv(EnvAPIKeyFallback, "fallback-key")

	if got := APIKey(); got != "primary-key" {
		t.Errorf("Expected primary env key, got %q", got)
	}
}

func TestAPIKeyFallbackEnvironment(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvAPIKeyFallback, "fallback-key")

	if got := APIKey(); got != "fallback-key" {
		t.Errorf("Expected fallback env key, got %q", got)
	}
}

func TestSaveAndLoadAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvAPIKeyFallback, "")
	// Redirect the config dir to a temp location
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if HasAPIKey() {
		t.Fatal("No key should be configured initially")
	}

	if err := SaveAPIKey("  wlu_abc123  \n"); err != nil {
		t.Fatalf("SaveAPIKey failed: %v", err)
	}

	if got := APIKey(); got != "wlu_abc123" {
		t.Errorf("Expected trimmed stored key, got %q", got)
	}
	if !HasAPIKey() {
		t.Error("HasAPIKey should report true after save")
	}
}
