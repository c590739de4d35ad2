// Package config loads prreport settings from YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spiffcs/prreport/internal/constants"
	"gopkg.in/yaml.v3"
)

const (
	appName        = "prreport"
	configFileName = "config.yaml"
	localFileName  = ".prreport.yaml"
)

// Config represents the application configuration.
// The GitHub token is never read from or written to config files.
type Config struct {
	DefaultFormat string `yaml:"default_format,omitempty" json:"default_format,omitempty"`
	Filename      string `yaml:"filename,omitempty" json:"filename,omitempty"`
	Workers       *int   `yaml:"workers,omitempty" json:"workers,omitempty"`
	APIURL        string `yaml:"api_url,omitempty" json:"api_url,omitempty"`
}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(configDir, appName)
}

// ConfigPath returns the path to the global config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), configFileName)
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return localFileName
}

// Load loads the configuration from disk.
// It first loads the global config from the XDG config directory, then merges
// any local .prreport.yaml on top (local values take precedence).
func Load() (*Config, error) {
	return LoadFrom(ConfigPath(), LocalConfigPath())
}

// LoadFrom loads and merges the config files at globalPath and localPath.
// Missing files are skipped.
func LoadFrom(globalPath, localPath string) (*Config, error) {
	cfg := &Config{}

	global, err := readFile(globalPath)
	if err != nil {
		return nil, fmt.Errorf("global config: %w", err)
	}
	if global != nil {
		cfg = global
	}

	local, err := readFile(localPath)
	if err != nil {
		return nil, fmt.Errorf("local config: %w", err)
	}
	if local != nil {
		cfg = mergeConfig(cfg, local)
	}

	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = "table"
	}
	return cfg, nil
}

// readFile parses the config at path, returning nil when the file is absent.
func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

func mergeConfig(global, local *Config) *Config {
	result := *global

	if local.DefaultFormat != "" {
		result.DefaultFormat = local.DefaultFormat
	}
	if local.Filename != "" {
		result.Filename = local.Filename
	}
	if local.Workers != nil {
		result.Workers = local.Workers
	}
	if local.APIURL != "" {
		result.APIURL = local.APIURL
	}

	return &result
}

// GetWorkers returns the configured worker count, or the default.
func (c *Config) GetWorkers() int {
	if c.Workers != nil && *c.Workers > 0 {
		return *c.Workers
	}
	return constants.DefaultWorkers
}

// GetFilename returns the configured spreadsheet name, or the default.
func (c *Config) GetFilename() string {
	if c.Filename != "" {
		return c.Filename
	}
	return constants.DefaultFilename
}

// GetGitHubToken returns the GitHub token from the GITHUB_TOKEN environment variable.
// Tokens are only read from the environment or the command line.
func (c *Config) GetGitHubToken() string {
	return os.Getenv("GITHUB_TOKEN")
}

// DefaultConfig returns a fully populated config with all default values.
// This is useful for generating a complete config file template.
func DefaultConfig() *Config {
	workers := constants.DefaultWorkers
	return &Config{
		DefaultFormat: "table",
		Filename:      constants.DefaultFilename,
		Workers:       &workers,
		APIURL:        "https://api.github.com/",
	}
}

// ToYAML returns the config as a YAML string
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// ConfigPathInfo contains information about config file paths
type ConfigPathInfo struct {
	GlobalPath   string
	GlobalExists bool
	LocalPath    string
	LocalExists  bool
}

// GetConfigPaths returns path info for both global and local configs
func GetConfigPaths() ConfigPathInfo {
	globalPath := ConfigPath()
	localPath := LocalConfigPath()

	// Get absolute path for local config
	absLocalPath, err := filepath.Abs(localPath)
	if err != nil {
		absLocalPath = localPath
	}

	_, globalErr := os.Stat(globalPath)
	_, localErr := os.Stat(localPath)

	return ConfigPathInfo{
		GlobalPath:   globalPath,
		GlobalExists: globalErr == nil,
		LocalPath:    absLocalPath,
		LocalExists:  localErr == nil,
	}
}

// MinimalConfig returns a minimal config template with comments
func MinimalConfig() string {
	return `# prreport configuration file
# See: prreport config defaults  (for all available options)

# Console output format: table, json or markdown
default_format: table

# Spreadsheet written by --excel (optional)
# filename: pr_report.xlsx

# Pull requests fetched concurrently (optional)
# workers: 8

# GitHub Enterprise API endpoint (optional)
# api_url: https://github.example.com/api/v3/

# The token is read from GITHUB_TOKEN or --token, never from this file.
`
}

// SaveTo writes content to a specific path, creating directories as needed
func SaveTo(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}
