// Package config holds the host tool configuration. Values come from
// a YAML file, environment variables with the CHIRPSCOPE prefix, and
// command line flags, in rising priority.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration for chirpscope-host.
type Config struct {
	Serial  SerialConfig  `mapstructure:"serial" yaml:"serial"`
	Audio   AudioConfig   `mapstructure:"audio" yaml:"audio"`
	Signal  SignalConfig  `mapstructure:"signal" yaml:"signal"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

// SerialConfig selects the firmware console for the monitor command.
type SerialConfig struct {
	Device      string `mapstructure:"device" yaml:"device"`
	Baud        int    `mapstructure:"baud" yaml:"baud"`
	ReadTimeout int    `mapstructure:"read_timeout" yaml:"read_timeout"`
}

// AudioConfig controls the simulator's sound card output.
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled" yaml:"enabled"`
	Volume  float64 `mapstructure:"volume" yaml:"volume"`
}

// SignalConfig shapes the simulator's synthetic microphone input.
type SignalConfig struct {
	Shape     string  `mapstructure:"shape" yaml:"shape"`
	Frequency float64 `mapstructure:"frequency" yaml:"frequency"`
	Amplitude float64 `mapstructure:"amplitude" yaml:"amplitude"`
}

// DisplayConfig controls the simulator's spectrum window.
type DisplayConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	Scale   int  `mapstructure:"scale" yaml:"scale"`
}

// SignalShapes lists the generator shapes the simulator accepts.
var SignalShapes = []string{"sine", "chirp", "noise"}

// SetDefaults registers default values with viper.
func SetDefaults() {
	viper.SetDefault("serial.device", "/dev/ttyACM0")
	viper.SetDefault("serial.baud", 115200)
	viper.SetDefault("serial.read_timeout", 0)

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.volume", 0.5)

	viper.SetDefault("signal.shape", "sine")
	viper.SetDefault("signal.frequency", 488.28125)
	viper.SetDefault("signal.amplitude", 0.8)

	viper.SetDefault("display.enabled", true)
	viper.SetDefault("display.scale", 1)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Serial: SerialConfig{
			Device: "/dev/ttyACM0",
			Baud:   115200,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Signal: SignalConfig{
			Shape:     "sine",
			Frequency: 488.28125,
			Amplitude: 0.8,
		},
		Display: DisplayConfig{
			Enabled: true,
			Scale:   1,
		},
	}
}

// Load unmarshals the merged viper state into a validated Config.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the tools cannot run
// with.
func Validate(cfg *Config) error {
	if cfg.Serial.Baud <= 0 {
		return fmt.Errorf("serial.baud must be positive, got %d", cfg.Serial.Baud)
	}
	if cfg.Serial.ReadTimeout < 0 {
		return fmt.Errorf("serial.read_timeout must not be negative, got %d", cfg.Serial.ReadTimeout)
	}
	if cfg.Audio.Volume < 0 || cfg.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be in [0, 1], got %g", cfg.Audio.Volume)
	}
	if !validShape(cfg.Signal.Shape) {
		return fmt.Errorf("signal.shape must be one of %v, got %q", SignalShapes, cfg.Signal.Shape)
	}
	if cfg.Signal.Frequency <= 0 {
		return fmt.Errorf("signal.frequency must be positive, got %g", cfg.Signal.Frequency)
	}
	if cfg.Signal.Frequency >= 5000 {
		return fmt.Errorf("signal.frequency must stay below half the 10 kHz capture rate, got %g", cfg.Signal.Frequency)
	}
	if cfg.Signal.Amplitude < 0 || cfg.Signal.Amplitude > 1 {
		return fmt.Errorf("signal.amplitude must be in [0, 1], got %g", cfg.Signal.Amplitude)
	}
	if cfg.Display.Scale < 1 || cfg.Display.Scale > 4 {
		return fmt.Errorf("display.scale must be in [1, 4], got %d", cfg.Display.Scale)
	}
	return nil
}

func validShape(shape string) bool {
	for _, s := range SignalShapes {
		if s == shape {
			return true
		}
	}
	return false
}

// WriteDefault writes the built-in configuration to path as YAML,
// refusing to clobber an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
