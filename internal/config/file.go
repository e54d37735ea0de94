package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yeager/fedora-l10n/internal/platform"
)

// ConfigFileName is the optional YAML config file under the config directory.
const ConfigFileName = "config.yaml"

// File holds optional overrides loaded from ~/.config/fedora-l10n/config.yaml.
// All fields are optional; zero values mean "use the default".
type File struct {
	BaseURL  string `yaml:"base_url"`
	Language string `yaml:"language"`
	PageSize int    `yaml:"page_size"`
}

// LoadFile reads the optional config file. A missing file returns an empty
// config and no error; a malformed file is an error.
func LoadFile() (File, error) {
	dir, err := platform.ConfigDir()
	if err != nil {
		return File{}, err
	}
	return loadFileFrom(filepath.Join(dir, ConfigFileName))
}

func loadFileFrom(path string) (File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return File{}, nil
	}
	if err != nil {
		return File{}, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, err
	}
	return f, nil
}
