package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/ehrqc-cli/internal/qc"
)

// Global configuration structure.
type Global struct {
	OutputDir         string     `mapstructure:"output_dir" yaml:"output_dir"`
	Delimiter         string     `mapstructure:"delimiter" yaml:"delimiter"`
	AgeToleranceYears int        `mapstructure:"age_tolerance_years" yaml:"age_tolerance_years"`
	GenderCodes       []string   `mapstructure:"gender_codes" yaml:"gender_codes"`
	ReferenceDate     string     `mapstructure:"reference_date" yaml:"reference_date"`
	Ranges            []qc.Range `mapstructure:"ranges" yaml:"ranges"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.ehrqc/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".ehrqc")
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
	v.SetEnvPrefix("EHRQC")
	v.AutomaticEnv()

	defaults := qc.DefaultConfig()
	v.SetDefault("output_dir", "ehr_qc_output")
	v.SetDefault("delimiter", "")
	v.SetDefault("age_tolerance_years", defaults.AgeToleranceYears)
	v.SetDefault("gender_codes", defaults.AllowedGenderCodes)
	v.SetDefault("reference_date", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".ehrqc")
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

// QC resolves the loaded overrides into engine thresholds. Unset fields
// keep the clinical defaults.
func (c *Global) QC() (qc.Config, error) {
	cfg := qc.DefaultConfig()
	if c.AgeToleranceYears > 0 {
		cfg.AgeToleranceYears = c.AgeToleranceYears
	}
	if len(c.GenderCodes) > 0 {
		cfg.AllowedGenderCodes = c.GenderCodes
	}
	if len(c.Ranges) > 0 {
		cfg.Ranges = c.Ranges
	}
	if c.ReferenceDate != "" {
		t, err := time.Parse("2006-01-02", c.ReferenceDate)
		if err != nil {
			return cfg, fmt.Errorf("parse reference_date: %w", err)
		}
		cfg.ReferenceDate = t
	}
	return cfg, nil
}
