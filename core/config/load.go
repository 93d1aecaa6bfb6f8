package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// UserConfigDir returns the per-user shell state directory,
// ~/.daffash by default.
func UserConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigDirName), nil
}

// Default returns the embedded default configuration bound to the
// given filesystem and directory.
func Default(fsys afero.Fs, dir string) *Configuration {
	out := defaultConfig()
	out.configFs = fsys
	out.configDir = dir
	return out
}

// Load reads the configuration from dir. A missing file is an error
// the caller may recover from by falling back to Default.
func Load(fsys afero.Fs, dir string) (*Configuration, error) {
	contents, err := afero.ReadFile(fsys, filepath.Join(dir, ConfigurationName))
	if err != nil {
		return nil, err
	}

	var out Configuration
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigurationName, err)
	}
	out.configFs = fsys
	out.configDir = dir

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigurationName, err)
	}
	return &out, nil
}

// Initialize writes the default configuration into dir unless one
// already exists.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	path := filepath.Join(dir, ConfigurationName)
	if exists, err := afero.Exists(fsys, path); err != nil {
		return nil, err
	} else if exists {
		logger.Printf("Configuration already exists at %s", path)
		return Load(fsys, dir)
	}

	out := Default(fsys, dir)
	if err := out.Save(); err != nil {
		return nil, err
	}
	logger.Printf("Wrote default configuration to %s", path)
	return out, nil
}
