// Package config provides unified configuration loading for cortexview.
// It supports loading from a YAML file with defaults for every field;
// command-line flags override file values in main.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration for YAML: accepts "2s" style strings
// or integer nanoseconds
type Duration time.Duration

// Std returns the wrapped time.Duration
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(n)
		return nil
	}
	return fmt.Errorf("invalid duration %q", value.Value)
}

// Config contains all cortexview settings
type Config struct {
	// Sim contains simulation tunables
	Sim SimConfig `yaml:"sim"`

	// Network configures the event ingress client
	Network NetworkConfig `yaml:"network"`

	// Telemetry configures the local host-metrics activity source
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Audio configures the activation chime
	Audio AudioConfig `yaml:"audio"`

	// Logging configures operational logging
	Logging LoggingConfig `yaml:"logging"`
}

// SimConfig holds the simulation tunables that are configurable per
// run. Probabilities and effect timings that define the look of the
// visualization stay in the constant package.
type SimConfig struct {
	// Seed for the simulation random source. 0 means derive from the
	// current time.
	Seed int64 `yaml:"seed"`

	// NeuronCount is the size of the background neuron pool
	NeuronCount int `yaml:"neuron_count"`

	// SynapseCount is the number of undirected neuron pairings
	SynapseCount int `yaml:"synapse_count"`

	// ShellRadiusMin/Max bound the annulus neurons are placed in
	ShellRadiusMin float64 `yaml:"shell_radius_min"`
	ShellRadiusMax float64 `yaml:"shell_radius_max"`

	// PulseDuration is the activation decay window
	PulseDuration Duration `yaml:"pulse_duration"`

	// TickInterval is the simulation step interval
	TickInterval Duration `yaml:"tick_interval"`
}

// NetworkConfig configures the ingress connection
type NetworkConfig struct {
	// Enabled turns the ingress client on. When false (or after a
	// connection failure) the fallback generator drives the scene.
	Enabled bool `yaml:"enabled"`

	// Address is the host:port of the activity feed
	Address string `yaml:"address"`

	// ConnectTimeout bounds the initial dial
	ConnectTimeout Duration `yaml:"connect_timeout"`

	// ReadTimeout bounds a single frame read; expiry counts as a
	// connection failure (no retry)
	ReadTimeout Duration `yaml:"read_timeout"`
}

// TelemetryConfig configures the gopsutil-backed local source
type TelemetryConfig struct {
	// Enabled samples host CPU/memory and feeds them in as component
	// activity, giving the scene a live feed without the external app
	Enabled bool `yaml:"enabled"`

	// SampleInterval is the host metrics polling period
	SampleInterval Duration `yaml:"sample_interval"`
}

// AudioConfig configures the activation chime
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig configures operational logging
type LoggingConfig struct {
	// Level sets verbosity: "info" (default) or "debug"
	Level string `yaml:"level"`

	// File is the log destination; empty discards output (the
	// fullscreen terminal owns stdout)
	File string `yaml:"file"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Sim: SimConfig{
			Seed:           0,
			NeuronCount:    800,
			SynapseCount:   400,
			ShellRadiusMin: 6.0,
			ShellRadiusMax: 14.0,
			PulseDuration:  Duration(2000 * time.Millisecond),
			TickInterval:   Duration(33 * time.Millisecond),
		},
		Network: NetworkConfig{
			Enabled:        false,
			Address:        "localhost:8765",
			ConnectTimeout: Duration(5 * time.Second),
			ReadTimeout:    Duration(60 * time.Second),
		},
		Telemetry: TelemetryConfig{
			Enabled:        false,
			SampleInterval: Duration(2 * time.Second),
		},
		Audio: AudioConfig{
			Enabled: false,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file
// is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyFloors()
	return cfg, nil
}

// applyFloors restores defaults for zero or nonsensical values so a
// sparse config file never produces a degenerate simulation
func (c *Config) applyFloors() {
	def := Default()
	if c.Sim.NeuronCount <= 0 {
		c.Sim.NeuronCount = def.Sim.NeuronCount
	}
	if c.Sim.SynapseCount < 0 {
		c.Sim.SynapseCount = def.Sim.SynapseCount
	}
	if c.Sim.ShellRadiusMin <= 0 || c.Sim.ShellRadiusMax <= c.Sim.ShellRadiusMin {
		c.Sim.ShellRadiusMin = def.Sim.ShellRadiusMin
		c.Sim.ShellRadiusMax = def.Sim.ShellRadiusMax
	}
	if c.Sim.PulseDuration <= 0 {
		c.Sim.PulseDuration = def.Sim.PulseDuration
	}
	if c.Sim.TickInterval <= 0 {
		c.Sim.TickInterval = def.Sim.TickInterval
	}
	if c.Network.ConnectTimeout <= 0 {
		c.Network.ConnectTimeout = def.Network.ConnectTimeout
	}
	if c.Network.ReadTimeout <= 0 {
		c.Network.ReadTimeout = def.Network.ReadTimeout
	}
	if c.Telemetry.SampleInterval <= 0 {
		c.Telemetry.SampleInterval = def.Telemetry.SampleInterval
	}
}
