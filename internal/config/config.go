package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for an igreport run.
type Config struct {
	FilePath      string // results workbook (.xlsx/.xlsm/.csv)
	OutputDir     string
	TemplateDir   string
	SignatureDir  string
	RendererPath  string // WeasyPrint executable, name or path
	TimeoutSec    int    // per-invocation renderer bound, seconds
	IDSuffix      bool   // include patient ID in output filenames
	LogFormat     string // "text" or "json"
	ExportParquet string // optional analytics sidecar path
}

// yamlConfig is the on-disk YAML structure for site-stable settings.
type yamlConfig struct {
	OutputDir    string `yaml:"output_dir"`
	TemplateDir  string `yaml:"template_dir"`
	SignatureDir string `yaml:"signature_dir"`
	Renderer     string `yaml:"renderer"`
	TimeoutSec   int    `yaml:"render_timeout_seconds"`
	IDSuffix     bool   `yaml:"id_suffix"`
}

// LoadFromFile reads a YAML config file and merges its values into
// Config. Values already set by flags win over file values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if c.OutputDir == "" {
		c.OutputDir = yc.OutputDir
	}
	if c.TemplateDir == "" {
		c.TemplateDir = yc.TemplateDir
	}
	if c.SignatureDir == "" {
		c.SignatureDir = yc.SignatureDir
	}
	if c.RendererPath == "" {
		c.RendererPath = yc.Renderer
	}
	if c.TimeoutSec == 0 {
		c.TimeoutSec = yc.TimeoutSec
	}
	if yc.IDSuffix {
		c.IDSuffix = true
	}
	return nil
}

// ApplyDefaults fills unset fields with the conventional run layout.
func (c *Config) ApplyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = "output_reports"
	}
	if c.TemplateDir == "" {
		c.TemplateDir = "templates"
	}
	if c.RendererPath == "" {
		c.RendererPath = "weasyprint"
	}
	if c.TimeoutSec == 0 {
		c.TimeoutSec = 120
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
}

// RenderTimeout returns the per-invocation renderer bound.
func (c *Config) RenderTimeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// Validate checks required fields and returns an error if the config is
// invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	if c.TimeoutSec < 0 {
		return fmt.Errorf("render timeout must not be negative")
	}
	if c.TemplateDir == "" {
		return fmt.Errorf("template dir is required")
	}
	if _, err := os.Stat(c.TemplateDir); err != nil {
		return fmt.Errorf("template dir not accessible: %w", err)
	}
	return nil
}
