package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Window  string        `json:"window" yaml:"window"` // e.g. "1.week"
	Output  OutputConfig  `json:"output" yaml:"output"`
	Filters FilterConfig  `json:"filters" yaml:"filters"`
	GitHub  GitHubConfig  `json:"github" yaml:"github"`
	History HistoryConfig `json:"history" yaml:"history"`
}

// OutputConfig holds report output options.
type OutputConfig struct {
	Dir          string `json:"dir" yaml:"dir"`                   // Default: "."
	Format       string `json:"format" yaml:"format"`             // console, markdown, json
	IncludeDiffs bool   `json:"includeDiffs" yaml:"includeDiffs"` // Default: true
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Include []string `json:"include" yaml:"include"`
	Exclude []string `json:"exclude" yaml:"exclude"`
}

// GitHubConfig holds options for the gh-backed activity summary.
type GitHubConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"` // Default: true
	Limit   int  `json:"limit" yaml:"limit"`     // Max items per list query, default 1000
}

// HistoryConfig holds options for reading commit history.
type HistoryConfig struct {
	Branch string `json:"branch" yaml:"branch"` // Default: HEAD
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Window: "1.week",
		Output: OutputConfig{
			Dir:          ".",
			Format:       "console",
			IncludeDiffs: true,
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
		GitHub: GitHubConfig{
			Enabled: true,
			Limit:   1000,
		},
		History: HistoryConfig{
			Branch: "HEAD",
		},
	}
}

// configBasenames are the dotfiles probed when no explicit path is given,
// in cwd first and then the home directory.
var configBasenames = []string{".gitreport.json", ".gitreport.yaml", ".gitreport.yml"}

// LoadConfig loads configuration from a file, merging with defaults.
// An empty path probes the default locations; a missing file means defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findConfigFile()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := unmarshalConfig(path, data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func findConfigFile() string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home)
	} else if envHome := os.Getenv("HOME"); envHome != "" {
		dirs = append(dirs, envHome)
	}

	for _, dir := range dirs {
		for _, base := range configBasenames {
			p := filepath.Join(dir, base)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return ""
}

func unmarshalConfig(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return json.Unmarshal(data, cfg)
	}
}

// SaveConfig saves configuration to a file, JSON or YAML by extension.
func SaveConfig(cfg *Config, path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
