package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := Validate(&cfg); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero baud", func(c *Config) { c.Serial.Baud = 0 }, "serial.baud"},
		{"negative timeout", func(c *Config) { c.Serial.ReadTimeout = -1 }, "read_timeout"},
		{"volume above one", func(c *Config) { c.Audio.Volume = 1.5 }, "audio.volume"},
		{"unknown shape", func(c *Config) { c.Signal.Shape = "square" }, "signal.shape"},
		{"zero frequency", func(c *Config) { c.Signal.Frequency = 0 }, "signal.frequency"},
		{"aliased frequency", func(c *Config) { c.Signal.Frequency = 5000 }, "capture rate"},
		{"negative amplitude", func(c *Config) { c.Signal.Amplitude = -0.1 }, "signal.amplitude"},
		{"zero scale", func(c *Config) { c.Display.Scale = 0 }, "display.scale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := Validate(&cfg)
			if err == nil {
				t.Fatal("Validate accepted a bad config")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestDefaultRoundTripsThroughYAML(t *testing.T) {
	data, err := yaml.Marshal(Default())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Config
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != Default() {
		t.Errorf("round trip changed config:\n got %+v\nwant %+v", got, Default())
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chirpscope.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	for _, key := range []string{"serial:", "device:", "signal:", "shape: sine"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("written config missing %q:\n%s", key, data)
		}
	}

	if err := WriteDefault(path); err == nil {
		t.Fatal("WriteDefault overwrote an existing file")
	}
}
