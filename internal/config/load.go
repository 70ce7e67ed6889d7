// internal/config/load.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns the built-in configuration.
// Every value here matches the display firmware; a config file is optional.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			BaudRate:  115200,
			TimeoutMs: 1000,
			SettleMs:  2000,
			Keywords:  []string{"ch340", "ch341", "cp210", "usb", "serial", "arduino"},
		},
		Poll: PollConfig{
			IntervalMs:  100,
			CPUWindowMs: 100,
		},
		Color: ColorConfig{
			MinC: 30,
			MaxC: 90,
		},
		CPU: CPUConfig{
			FallbackTempC: 50,
		},
		GPU: GPUConfig{
			Command:       "nvidia-smi",
			TimeoutMs:     2000,
			FallbackTempC: 50,
		},
		Reconnect: ReconnectConfig{
			BackoffMs:   2000,
			MaxAttempts: 1,
		},
	}
}

// Load overlays the YAML file at path onto Default().
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.StatusMemory != nil && cfg.StatusMemory.TimeoutMs == 0 {
		cfg.StatusMemory.TimeoutMs = 1000
	}

	return cfg, nil
}
