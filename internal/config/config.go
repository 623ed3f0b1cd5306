package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds input/output paths, plot settings and logging.
type Config struct {
	// Paths
	BaseDir      string `json:"base_dir" yaml:"base_dir"`
	PointListXML string `json:"point_list_xml" yaml:"point_list_xml"`
	Backdrop     string `json:"backdrop" yaml:"backdrop"`
	OutputDir    string `json:"output_dir" yaml:"output_dir"`

	// Plot settings
	PlotSize    int     `json:"plot_size" yaml:"plot_size"`
	Supersample int     `json:"supersample" yaml:"supersample"`
	Workers     int     `json:"workers" yaml:"workers"`
	PointRadius float64 `json:"point_radius" yaml:"point_radius"`

	// Logging
	LogLevel  string `json:"log_level" yaml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format"`
}

// Load reads a JSON or YAML (.yaml/.yml) config file.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	PointList string
	OutputDir string
	Backdrop  string
	Workers   int
	LogLevel  string
}

// Resolve fills in empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.PointList != "" {
		c.PointListXML = flags.PointList
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Backdrop != "" {
		c.Backdrop = flags.Backdrop
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}

	if c.PointListXML == "" {
		c.PointListXML = "points.xml"
	}
	if c.OutputDir == "" {
		c.OutputDir = "plots"
	}
	c.PointListXML = c.abs(c.PointListXML)
	c.OutputDir = c.abs(c.OutputDir)
	if c.Backdrop != "" {
		c.Backdrop = c.abs(c.Backdrop)
	}

	if c.PlotSize <= 0 {
		c.PlotSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.PointRadius <= 0 {
		c.PointRadius = 2
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "console"
	}
}

func (c *Config) abs(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}
