// Package internal provides the application configuration and runtime wiring.
package internal

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration, layered from
// defaults plus an optional config.yml in the store directory.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Store    StoreConfig       `yaml:"store"`
	Projects ProjectRules      `yaml:"projects"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Store.Validate(); err != nil {
		return err
	}
	return c.Projects.Validate()
}

// ApplicationConfig holds application-level configuration. Logs go to
// a file because stdout belongs to the terminal UI.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	LogFile  string     `yaml:"log_file"`
}

// StoreConfig holds the path to the base directory. An empty path
// resolves to ~/daylog at startup.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the store configuration.
func (c *StoreConfig) Validate() error {
	return nil
}

// ProjectRules holds the status and group vocabularies offered by the
// project editor. Statuses must not be empty; groups may be.
type ProjectRules struct {
	Statuses []string `yaml:"statuses"`
	Groups   []string `yaml:"groups"`
}

// Validate validates the project rules.
func (c *ProjectRules) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Statuses, validation.Required, validation.Each(validation.Required)),
		validation.Field(&c.Groups, validation.Each(validation.Required)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Projects: ProjectRules{
			Statuses: []string{"open", "on-hold", "done"},
		},
	}
}
