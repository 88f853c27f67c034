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
	// DataDir holds the state database. Defaults to ~/.doco/state.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
	// SnapshotKey is the blob-store key the workspace snapshot lives under.
	SnapshotKey string `mapstructure:"snapshot_key" yaml:"snapshot_key"`

	// Workspace defaults applied to a fresh state.
	AutoSave         bool    `mapstructure:"auto_save" yaml:"auto_save"`
	ViewMode         string  `mapstructure:"view_mode" yaml:"view_mode"`
	DefaultColor     string  `mapstructure:"default_color" yaml:"default_color"`
	DefaultThickness float64 `mapstructure:"default_thickness" yaml:"default_thickness"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.doco/config.yaml, creating the directory if
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
		dir := filepath.Join(home, ".doco")
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
	v.SetEnvPrefix("DOCO")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("snapshot_key", "doco-app-state")
	v.SetDefault("auto_save", true)
	v.SetDefault("view_mode", "single")
	v.SetDefault("default_color", "#FACC15")
	v.SetDefault("default_thickness", 2.0)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".doco")
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
	// Resolve data_dir default: ~/.doco/state
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.DataDir = filepath.Join(home, ".doco", "state")
	}
	return &c, nil
}
