package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Output
	OutputDir   string `mapstructure:"output_dir" yaml:"output_dir"`
	ReportTitle string `mapstructure:"report_title" yaml:"report_title"`
	PageSize    string `mapstructure:"page_size" yaml:"page_size"`

	// Loading
	MaxRows   int      `mapstructure:"max_rows" yaml:"max_rows"`
	Encodings []string `mapstructure:"encodings" yaml:"encodings"`

	// Analysis
	TopN           int `mapstructure:"top_n" yaml:"top_n"`
	MaxCategorical int `mapstructure:"max_categorical" yaml:"max_categorical"`

	// Charts
	ChartWidth    int `mapstructure:"chart_width" yaml:"chart_width"`
	ChartHeight   int `mapstructure:"chart_height" yaml:"chart_height"`
	HistogramBins int `mapstructure:"histogram_bins" yaml:"histogram_bins"`
	MaxHistograms int `mapstructure:"max_histograms" yaml:"max_histograms"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.autoreport/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".autoreport")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("AUTOREPORT")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("output_dir", "")
	v.SetDefault("report_title", "Data Analysis Report")
	v.SetDefault("page_size", "A4")
	v.SetDefault("max_rows", 100000)
	v.SetDefault("encodings", []string{"utf-8", "latin-1", "cp1252"})
	v.SetDefault("top_n", 10)
	v.SetDefault("max_categorical", 20)
	v.SetDefault("chart_width", 640)
	v.SetDefault("chart_height", 400)
	v.SetDefault("histogram_bins", 20)
	v.SetDefault("max_histograms", 6)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".autoreport")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
