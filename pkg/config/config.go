// Package config holds the YAML configuration of the dialogsim demo
// binary. The bridge itself takes no configuration; scenarios script
// the simulated toolkit and the host-side calls replayed against it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/NahejL/electron/pkg/logging"
)

// Outcome result values for file-dialog steps.
const (
	OutcomeSelect = "select"
	OutcomeMulti  = "multi"
	OutcomeCancel = "cancel"
)

// Config represents a complete demo configuration.
type Config struct {
	LogDir   string   `yaml:"log_dir"`
	LogLevel string   `yaml:"log_level"`
	Scenario Scenario `yaml:"scenario"`
}

// Scenario is an ordered script of host-side dialog calls.
type Scenario struct {
	MessageBoxes []MessageBoxStep `yaml:"message_boxes"`
	FileDialogs  []FileDialogStep `yaml:"file_dialogs"`
}

// MessageBoxStep replays one showMessageBox call with a scripted user
// response.
type MessageBoxStep struct {
	Type     int      `yaml:"type"`
	Buttons  []string `yaml:"buttons"`
	Title    string   `yaml:"title"`
	Message  string   `yaml:"message"`
	Detail   string   `yaml:"detail"`
	Response int      `yaml:"response"`
}

// FileDialogStep replays one selectFile call with a scripted outcome.
type FileDialogStep struct {
	Type             int          `yaml:"type"`
	Title            string       `yaml:"title"`
	DefaultPath      string       `yaml:"default_path"`
	FileTypes        []FileFilter `yaml:"file_types"`
	FileTypeIndex    int          `yaml:"file_type_index"`
	DefaultExtension string       `yaml:"default_extension"`
	CallbackID       int64        `yaml:"callback_id"`
	Outcome          Outcome      `yaml:"outcome"`
}

// FileFilter is one named extension group.
type FileFilter struct {
	Description string   `yaml:"description"`
	Extensions  []string `yaml:"extensions"`
}

// Outcome scripts how the simulated user completes a file dialog.
type Outcome struct {
	Result string   `yaml:"result"`
	Paths  []string `yaml:"paths"`
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		LogDir:   ".dialogsim",
		LogLevel: string(logging.LevelInfo),
	}
}

// Load reads a YAML config file over the defaults and validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks field values the YAML schema cannot express.
func (c *Config) Validate() error {
	switch logging.Level(c.LogLevel) {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError:
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	for i, step := range c.Scenario.FileDialogs {
		switch step.Outcome.Result {
		case OutcomeSelect:
			if len(step.Outcome.Paths) != 1 {
				return fmt.Errorf("file_dialogs[%d]: select outcome needs exactly one path", i)
			}
		case OutcomeMulti:
			if len(step.Outcome.Paths) == 0 {
				return fmt.Errorf("file_dialogs[%d]: multi outcome needs at least one path", i)
			}
		case OutcomeCancel:
			if len(step.Outcome.Paths) != 0 {
				return fmt.Errorf("file_dialogs[%d]: cancel outcome takes no paths", i)
			}
		default:
			return fmt.Errorf("file_dialogs[%d]: unknown outcome result %q", i, step.Outcome.Result)
		}
	}

	for i, step := range c.Scenario.MessageBoxes {
		if len(step.Buttons) == 0 {
			return fmt.Errorf("message_boxes[%d]: buttons must not be empty", i)
		}
	}

	return nil
}
