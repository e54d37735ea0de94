package platform

import (
	"os"
	"path/filepath"
)

// AppDirName is the per-user directory name used under the system cache and
// config roots.
const AppDirName = "fedora-l10n"

// File permissions
const (
	DefaultDirPermissions  = 0755
	PrivateFilePermissions = 0600
)

// CacheDir returns the app cache directory (~/.cache/fedora-l10n on Linux).
func CacheDir() (string, error) {
	root, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, AppDirName), nil
}

// ConfigDir returns the app config directory (~/.config/fedora-l10n on Linux).
func ConfigDir() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, AppDirName), nil
}

// CreateDirectoryIfNotExists creates the directory and any parents
func CreateDirectoryIfNotExists(dir string) error {
	return os.MkdirAll(dir, DefaultDirPermissions)
}

// WritePrivateFile writes data to path with owner-only permissions, creating
// parent directories as needed. Used for the API key file.
func WritePrivateFile(path string, data []byte) error {
	if err := CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, PrivateFilePermissions); err != nil {
		return err
	}
	// WriteFile does not tighten permissions on pre-existing files
	return os.Chmod(path, PrivateFilePermissions)
}
