package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissing(t *testing.T) {
	f, err := loadFileFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Missing config file should not be an error: %v", err)
	}
	if f != (File{}) {
		t.Errorf("Expected empty config, got %+v", f)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "base_url: https://weblate.example.org/api\nlanguage: sv\npage_size: 100\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	f, err := loadFileFrom(path)
	if err != nil {
		t.Fatalf("loadFileFrom failed: %v", err)
	}

	if f.BaseURL != "https://weblate.example.org/api" {
		t.Errorf("Unexpected base URL: %s", f.BaseURL)
	}
	if f.Language != "sv" {
		t.Errorf("Unexpected language: %s", f.Language)
	}
	if f.PageSize != 100 {
		t.Errorf("Unexpected page size: %d", f.PageSize)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0644); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if _, err := loadFileFrom(path); err == nil {
		t.Error("Malformed config file should be an error")
	}
}
