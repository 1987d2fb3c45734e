package utils

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := ValidateConfig(DefaultConfig()); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateConfigRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty listen addr", func(c *Config) { c.Server.ListenAddr = "" }, "listen address"},
		{"zero frame rate", func(c *Config) { c.Server.FrameRate = 0 }, "frame rate"},
		{"absurd frame rate", func(c *Config) { c.Server.FrameRate = 1000 }, "frame rate"},
		{"zero stats window", func(c *Config) { c.Server.StatsWindow = 0 }, "stats window"},
		{"non-positive camera radius", func(c *Config) { c.Camera.Radius = 0 }, "camera radius"},
		{"negative speed", func(c *Config) { c.Simulation.Speed = -1 }, "speed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	orig := DefaultConfig()
	orig.Scene.File = "scenes/binary.yaml"
	orig.Simulation.StartPaused = true

	data, err := yaml.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	var back Config
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != *orig {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, *orig)
	}
}
