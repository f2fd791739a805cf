package contract

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default values for configuration.
const (
	DefaultRepoPath = "."
	DefaultColor    = "yes"
	MaxWidth        = 1000
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a report.
// This struct is the "final, validated" config.
type Config struct {
	RepoPath   string // Absolute path of the directory git runs in
	OutputFile string // Optional path to write the report to instead of stdout
	Bars       bool   // Append proportional bars to count lines
	Width      int    // Terminal width override (0 = auto-detect)
	UseColors  bool   // Enable colored section headers
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	OutputFile string `mapstructure:"output-file"`
	Bars       bool   `mapstructure:"bars"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	repoPath, err := ResolveRepoPath(input.RepoPathStr)
	if err != nil {
		return err
	}
	cfg.RepoPath = repoPath
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Bars = input.Bars

	if input.Width < 0 || input.Width > MaxWidth {
		return fmt.Errorf("width must be between 0 and %d (received %d)", MaxWidth, input.Width)
	}
	cfg.Width = input.Width

	colorStr := input.Color
	if colorStr == "" {
		colorStr = DefaultColor
	}
	colors, err := ParseBoolString(colorStr)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	// Escape codes never go into a report file.
	cfg.UseColors = colors && cfg.OutputFile == ""

	return nil
}

// ResolveRepoPath turns a user-supplied path into the absolute directory git
// should run in. A file path resolves to its parent directory. Whether the
// directory is inside a repository is left for git itself to decide, so a
// report still costs exactly three git invocations.
func ResolveRepoPath(searchPath string) (string, error) {
	if searchPath == "" {
		searchPath = DefaultRepoPath
	}
	absPath, err := filepath.Abs(searchPath)
	if err != nil {
		return "", err
	}
	absPath = filepath.Clean(absPath)

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("repository path %q is not accessible: %w", searchPath, err)
	}
	if !info.IsDir() {
		absPath = filepath.Dir(absPath)
	}
	return absPath, nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
