package hwsim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	trajerr "github.com/motionkit/traject/errors"
)

// Config describes one simulated arm.
type Config struct {
	// Name is the registry name the trajectory handle is registered under.
	Name string `yaml:"name"`

	// ControlRateHz is the feedback publishing rate of the executor.
	ControlRateHz int `yaml:"control_rate_hz"`

	// Joints is the ordered resource group claimed as one unit.
	Joints []string `yaml:"joints"`
}

// DefaultConfig returns a six-joint arm at 100 Hz.
func DefaultConfig() Config {
	return Config{
		Name:          "sim_arm",
		ControlRateHz: 100,
		Joints: []string{
			"shoulder_pan",
			"shoulder_lift",
			"elbow_flex",
			"wrist_flex",
			"wrist_roll",
			"gripper",
		},
	}
}

// ParseConfig decodes and validates a YAML configuration.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, trajerr.InvalidConfig("parse yaml", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, trajerr.InvalidConfig(fmt.Sprintf("read %s", path), err)
	}
	return ParseConfig(data)
}

// Validate checks the configuration for structural problems.
func (c Config) Validate() error {
	if c.Name == "" {
		return trajerr.InvalidConfig("name is required", nil)
	}
	if c.ControlRateHz <= 0 {
		return trajerr.InvalidConfig(fmt.Sprintf("control_rate_hz must be positive, got %d", c.ControlRateHz), nil)
	}
	if len(c.Joints) == 0 {
		return trajerr.InvalidConfig("at least one joint is required", nil)
	}
	seen := make(map[string]bool, len(c.Joints))
	for _, j := range c.Joints {
		if j == "" {
			return trajerr.InvalidConfig("joint names must be non-empty", nil)
		}
		if seen[j] {
			return trajerr.InvalidConfig(fmt.Sprintf("duplicate joint %q", j), nil)
		}
		seen[j] = true
	}
	return nil
}
