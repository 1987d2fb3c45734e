package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Camera     CameraConfig     `yaml:"camera" mapstructure:"camera"`
	Simulation SimulationConfig `yaml:"simulation" mapstructure:"simulation"`
	Scene      SceneConfig      `yaml:"scene" mapstructure:"scene"`
}

// ServerConfig contains frame-streaming server settings
type ServerConfig struct {
	ListenAddr  string `yaml:"listen_addr" mapstructure:"listen_addr"`
	FrameRate   int    `yaml:"frame_rate" mapstructure:"frame_rate"`
	StatsWindow int    `yaml:"stats_window" mapstructure:"stats_window"`
}

// CameraConfig contains the orbit-camera defaults restored by reset
type CameraConfig struct {
	Radius    float64 `yaml:"radius" mapstructure:"radius"`
	Azimuth   float64 `yaml:"azimuth_deg" mapstructure:"azimuth_deg"`
	Elevation float64 `yaml:"elevation_deg" mapstructure:"elevation_deg"`
}

// SimulationConfig contains the initial simulation context
type SimulationConfig struct {
	Speed       float64 `yaml:"speed" mapstructure:"speed"`
	StartPaused bool    `yaml:"start_paused" mapstructure:"start_paused"`
}

// SceneConfig selects the scene description; an empty file means the
// built-in default scene
type SceneConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:  ":8090",
			FrameRate:   60,
			StatsWindow: 240,
		},
		Camera: CameraConfig{
			Radius:    18,
			Azimuth:   35,
			Elevation: 25,
		},
		Simulation: SimulationConfig{
			Speed:       1,
			StartPaused: false,
		},
		Scene: SceneConfig{},
	}
}

// ConfigDir returns the per-user configuration directory
func ConfigDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".orrery")
}

// LoadConfig loads configuration from file or falls back to defaults
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(ConfigDir())
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("ORRERY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// SaveConfig saves configuration to the per-user config file
func SaveConfig(config *Config) error {
	configDir := ConfigDir()
	configFile := filepath.Join(configDir, "config.yaml")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Configuration saved to: %s\n", configFile)
	return nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if config.Server.ListenAddr == "" {
		return fmt.Errorf("server listen address cannot be empty")
	}
	if config.Server.FrameRate <= 0 || config.Server.FrameRate > 240 {
		return fmt.Errorf("frame rate must be in (0, 240], got %d", config.Server.FrameRate)
	}
	if config.Server.StatsWindow <= 0 {
		return fmt.Errorf("stats window must be positive, got %d", config.Server.StatsWindow)
	}
	if config.Camera.Radius <= 0 {
		return fmt.Errorf("camera radius must be positive")
	}
	if config.Simulation.Speed < 0 {
		return fmt.Errorf("simulation speed cannot be negative")
	}
	return nil
}
