package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/yeager/fedora-l10n/internal/platform"
)

// API key sources, in resolution order
const (
	EnvAPIKey         = "WEBLATE_API_KEY"
	EnvAPIKeyFallback = "FEDORA_WEBLATE_KEY"
	APIKeyFileName    = "api-key"
)

// APIKey returns the Weblate API key from the environment or the config file.
// Returns "" when no key is configured; the API then serves anonymous
// (rate-limited) requests.
func APIKey() string {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}
	if key := os.Getenv(EnvAPIKeyFallback); key != "" {
		return key
	}

	path, err := apiKeyPath()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// HasAPIKey reports whether an API key is configured.
func HasAPIKey() bool {
	return APIKey() != ""
}

// SaveAPIKey stores the key in the config file with owner-only permissions.
func SaveAPIKey(key string) error {
	path, err := apiKeyPath()
	if err != nil {
		return err
	}
	return platform.WritePrivateFile(path, []byte(strings.TrimSpace(key)))
}

func apiKeyPath() (string, error) {
	dir, err := platform.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, APIKeyFileName), nil
}
