// Package config provides configuration loading, validation, and management
// for the aidebot application. It handles reading from YAML files, applying
// default values, environment variable overrides, and validating parameters.
package config

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel wrapped by all configuration validation failures.
var ErrValidation = errors.New("validation error")

// Config defines the application configuration parameters for all components:
// logging, storage, scheduled tasks, and the simulation script the console
// driver replays.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`

	// Users are the simulated profiles; each is bound to one assistant variant.
	Users []UserConfig `mapstructure:"users" validate:"min=1,dive"`

	// Script lists the raw inputs replayed against the users' assistants,
	// in order. Each step references a user by name.
	Script []ScriptStep `mapstructure:"script" validate:"min=1,dive"`
}

// LogConfig controls log verbosity and output format.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// SchedulerConfig holds per-task scheduling settings keyed by task name.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// TaskConfig enables a named scheduled task and sets its cron schedule.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// UserConfig describes one simulated user profile and the assistant variant
// that serves it.
type UserConfig struct {
	Name        string            `mapstructure:"name"      validate:"required"`
	Age         int               `mapstructure:"age"       validate:"gte=0"`
	Premium     bool              `mapstructure:"premium"`
	Preferences map[string]string `mapstructure:"preferences"`
	Assistant   string            `mapstructure:"assistant" validate:"oneof=music fitness study"`
}

// ScriptStep is one simulated interaction: a user name and the raw input text.
type ScriptStep struct {
	User  string `mapstructure:"user"  validate:"required"`
	Input string `mapstructure:"input" validate:"required"`
}

// Validate checks cross-field constraints the struct tags cannot express:
// every script step must reference a configured user, and user names must be
// unique since they key the assistant lookup.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Users))
	for _, u := range c.Users {
		if seen[u.Name] {
			return fmt.Errorf("%w: duplicate user name %q", ErrValidation, u.Name)
		}
		seen[u.Name] = true
	}

	for i, step := range c.Script {
		if !seen[step.User] {
			return fmt.Errorf("%w: script step %d references unknown user %q", ErrValidation, i, step.User)
		}
	}

	return nil
}
