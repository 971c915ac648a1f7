// Package config handles the .kadry directory every project using the
// register gets in its root: the config file, the log directory and the
// location of the personnel data file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// KadryDir is the name of the directory created next to the data.
const KadryDir = ".kadry"

const defaultDataFile = "personnel.json"

const defaultProjectConfigYAML = `# kadry project configuration
version: 1

# Personnel data file, resolved relative to the project directory.
data_file: personnel.json

# Operations journal shown in the status pane and kept on disk.
journal:
  enabled: true
`

// JournalConfig toggles the on-disk operations journal.
type JournalConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ProjectConfig models .kadry/config.yaml.
type ProjectConfig struct {
	Version  int           `yaml:"version"`
	DataFile string        `yaml:"data_file"`
	Journal  JournalConfig `yaml:"journal"`
}

// Config holds the runtime configuration for one register.
type Config struct {
	// ProjectDir is the directory kadry was started from.
	ProjectDir string

	// KadryProjectDir is ProjectDir/.kadry.
	KadryProjectDir string

	Project ProjectConfig
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version:  1,
		DataFile: defaultDataFile,
		Journal:  JournalConfig{Enabled: true},
	}
}

// InitKadryDir creates the .kadry directory structure and writes the default
// config file when none exists yet. Called once at startup.
func InitKadryDir(projectDir string) error {
	kadryDir := filepath.Join(projectDir, KadryDir)
	if err := os.MkdirAll(filepath.Join(kadryDir, "logs"), 0o755); err != nil {
		return err
	}
	return ensureProjectConfig(filepath.Join(kadryDir, "config.yaml"))
}

// NewConfig loads the project configuration, falling back to defaults when
// the config file is absent.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:      projectDir,
		KadryProjectDir: filepath.Join(projectDir, KadryDir),
		Project:         defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DataFilePath returns the absolute path of the personnel data file.
func (c *Config) DataFilePath() string {
	path := c.Project.DataFile
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(c.ProjectDir, filepath.FromSlash(path))
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.KadryProjectDir, "logs")
}

// JournalPath returns the on-disk location of the operations journal.
func (c *Config) JournalPath() string {
	return filepath.Join(c.LogsDir(), "journal.log")
}

// JournalEnabled reports whether the operations journal should be kept.
func (c *Config) JournalEnabled() bool {
	return c.Project.Journal.Enabled
}

// ProjectConfigPath returns the on-disk location for the config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.KadryProjectDir, "config.yaml")
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	parsed := defaultProjectConfig()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	c.Project = parsed
	return nil
}

func (p *ProjectConfig) validate() error {
	if p.Version < 1 {
		return fmt.Errorf("version must be >= 1")
	}
	if strings.TrimSpace(p.DataFile) == "" {
		return fmt.Errorf("data_file is required")
	}
	return nil
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644); err != nil {
		return fmt.Errorf("config: write default %s: %w", path, err)
	}
	return nil
}
