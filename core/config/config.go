// Package config loads and persists the shell's configuration.
package config

import (
	_ "embed"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"daffa.dev/daffash/core/theme"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	// ConfigDirName is the per-user directory holding shell state.
	ConfigDirName = ".daffash"
	// ConfigurationName is the configuration file inside ConfigDirName.
	ConfigurationName = "config.yaml"
	// HistoryName is the readline history file inside ConfigDirName.
	HistoryName = "history"
)

type Configuration struct {
	configFs  afero.Fs
	configDir string

	PromptSymbol  string            `json:"prompt_symbol" validate:"required"`
	Theme         string            `json:"theme" validate:"required,theme"`
	ColoredOutput bool              `json:"colored_output"`
	MaxHistory    int               `json:"max_history" validate:"gte=1"`
	Aliases       map[string]string `json:"aliases"`
	Env           map[string]string `json:"env"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})
	if err := validate.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
		return theme.Valid(fl.Field().String())
	}); err != nil {
		return err
	}

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		c.configFs = afero.NewOsFs()
	}
	return c.configFs
}

// Path returns the location of the configuration file.
func (c *Configuration) Path() string {
	return filepath.Join(c.configDir, ConfigurationName)
}

// HistoryPath returns the location of the readline history file.
func (c *Configuration) HistoryPath() string {
	return filepath.Join(c.configDir, HistoryName)
}

// Save writes the configuration back to its directory.
func (c *Configuration) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := c.fs().MkdirAll(c.configDir, 0700); err != nil {
		return err
	}
	return afero.WriteFile(c.fs(), c.Path(), data, 0600)
}

// Persist stores alias and theme mutations. It implements the
// persistence contract the session state expects.
func (c *Configuration) Persist(aliases map[string]string, themeName string) error {
	c.Aliases = aliases
	c.Theme = themeName
	return c.Save()
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
