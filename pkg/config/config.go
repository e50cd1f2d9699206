package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	xdgAppName = "cronograma"
	configFile = "config.yaml"

	// EnvConfig overrides the config file location.
	EnvConfig = "CRONOGRAMA_CONFIG"

	DefaultPlanningYear   = 2025
	DefaultBaselineHours  = 160
	DefaultExportFile     = "linea_del_tiempo.png"
	DefaultSchedulePath   = "Cronograma IT.xlsx"
	DefaultResourcesPath  = "Estimacion_RecursosIT.xlsx"
	defaultStoreFile      = "history.db"
	defaultColorCacheFile = "person_colors.json"
)

// Config is everything a render needs to locate and interpret its sources.
type Config struct {
	PlanningYear         int     `yaml:"planning_year"`
	UpdatedAt            string  `yaml:"updated_at,omitempty"`
	MonthlyBaselineHours float64 `yaml:"monthly_baseline_hours"`
	ExportFile           string  `yaml:"export_file"`
	ExportDir            string  `yaml:"export_dir,omitempty"`
	StorePath            string  `yaml:"store_path,omitempty"`
	ColorCachePath       string  `yaml:"color_cache_path,omitempty"`

	Schedule  ScheduleSource `yaml:"schedule"`
	Resources Source         `yaml:"resources"`
}

// Source locates one table. Engine is xlsx, xls, csv or gsheet; empty picks by extension.
type Source struct {
	Path          string `yaml:"path,omitempty"`
	Engine        string `yaml:"engine,omitempty"`
	Sheet         string `yaml:"sheet,omitempty"`
	SpreadsheetID string `yaml:"spreadsheet_id,omitempty"`
	Range         string `yaml:"range,omitempty"`
}

// ScheduleSource adds the header names of the schedule columns.
type ScheduleSource struct {
	Source  `yaml:",inline"`
	Columns Columns `yaml:"columns"`
}

// Columns maps schedule fields to header names.
type Columns struct {
	Name         string `yaml:"name"`
	Start        string `yaml:"start"`
	Finish       string `yaml:"finish"`
	Duration     string `yaml:"duration"`
	OutlineLevel string `yaml:"outline_level"`
}

// DefaultColumns are the headers of an MS Project export.
func DefaultColumns() Columns {
	return Columns{
		Name:         "Name",
		Start:        "Start",
		Finish:       "Finish",
		Duration:     "Duration",
		OutlineLevel: "Outline Level",
	}
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		PlanningYear:         DefaultPlanningYear,
		MonthlyBaselineHours: DefaultBaselineHours,
		ExportFile:           DefaultExportFile,
		Schedule: ScheduleSource{
			Source:  Source{Path: DefaultSchedulePath},
			Columns: DefaultColumns(),
		},
		Resources: Source{Path: DefaultResourcesPath},
	}
}

// Dir is the per-user config directory, ~/.config/cronograma.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", xdgAppName), nil
}

// GetConfigPath returns $CRONOGRAMA_CONFIG or the default file in Dir.
func GetConfigPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the config at the default location.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads path over the defaults. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg.withDerived()
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return cfg.withDerived()
}

// withDerived fills zero values left by a partial file and resolves per-user paths.
func (c *Config) withDerived() (*Config, error) {
	if c.PlanningYear <= 0 {
		c.PlanningYear = DefaultPlanningYear
	}
	if c.MonthlyBaselineHours <= 0 {
		c.MonthlyBaselineHours = DefaultBaselineHours
	}
	if c.ExportFile == "" {
		c.ExportFile = DefaultExportFile
	}
	c.Schedule.Columns = c.Schedule.Columns.withDefaults()

	if c.StorePath == "" || c.ColorCachePath == "" {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		if c.StorePath == "" {
			c.StorePath = filepath.Join(dir, defaultStoreFile)
		}
		if c.ColorCachePath == "" {
			c.ColorCachePath = filepath.Join(dir, defaultColorCacheFile)
		}
	}
	return c, nil
}

func (c Columns) withDefaults() Columns {
	d := DefaultColumns()
	if c.Name == "" {
		c.Name = d.Name
	}
	if c.Start == "" {
		c.Start = d.Start
	}
	if c.Finish == "" {
		c.Finish = d.Finish
	}
	if c.Duration == "" {
		c.Duration = d.Duration
	}
	if c.OutlineLevel == "" {
		c.OutlineLevel = d.OutlineLevel
	}
	return c
}

// Save writes cfg to the default location.
func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(cfg, path)
}

// SaveFile writes cfg as YAML, creating the directory if needed.
func SaveFile(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
