// internal/config/config.go
package config

import "time"

type Config struct {
	Serial    SerialConfig    `yaml:"serial"`
	Poll      PollConfig      `yaml:"poll"`
	Color     ColorConfig     `yaml:"color"`
	CPU       CPUConfig       `yaml:"cpu"`
	GPU       GPUConfig       `yaml:"gpu"`
	Reconnect ReconnectConfig `yaml:"reconnect"`

	// Link status export (optional, opt-in)
	StatusMemory *StatusMemoryConfig `yaml:"status_memory"`
}

// ---- SERIAL ----

type SerialConfig struct {
	Port      string   `yaml:"port"` // explicit device; empty => discovery
	BaudRate  int      `yaml:"baud_rate"`
	TimeoutMs int      `yaml:"timeout_ms"`
	SettleMs  int      `yaml:"settle_ms"`
	Keywords  []string `yaml:"keywords"` // auto-select match set (port description)
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs  int `yaml:"interval_ms"`
	CPUWindowMs int `yaml:"cpu_window_ms"`
}

// ---- COLOR RAMP ----

type ColorConfig struct {
	MinC float64 `yaml:"min_c"`
	MaxC float64 `yaml:"max_c"`
}

// ---- SENSORS ----

type CPUConfig struct {
	FallbackTempC float64 `yaml:"fallback_temp_c"`
}

type GPUConfig struct {
	Disabled      bool    `yaml:"disabled"`
	Command       string  `yaml:"command"`
	TimeoutMs     int     `yaml:"timeout_ms"`
	FallbackTempC float64 `yaml:"fallback_temp_c"`
}

// ---- RECONNECT ----

type ReconnectConfig struct {
	BackoffMs   int `yaml:"backoff_ms"`
	MaxAttempts int `yaml:"max_attempts"`
}

// ---- STATUS MEMORY ----

type StatusMemoryConfig struct {
	Endpoint   string `yaml:"endpoint"`
	UnitID     uint8  `yaml:"unit_id"`
	Slot       uint16 `yaml:"slot"`
	DeviceName string `yaml:"device_name"`
	TimeoutMs  int    `yaml:"timeout_ms"`
}

// ---- duration helpers ----

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

func (s SerialConfig) Timeout() time.Duration { return ms(s.TimeoutMs) }
func (s SerialConfig) Settle() time.Duration { return ms(s.SettleMs) }
func (p PollConfig) Interval() time.Duration { return ms(p.IntervalMs) }
func (p PollConfig) CPUWindow() time.Duration { return ms(p.CPUWindowMs) }
func (g GPUConfig) Timeout() time.Duration { return ms(g.TimeoutMs) }
func (r ReconnectConfig) Backoff() time.Duration { return ms(r.BackoffMs) }
func (s StatusMemoryConfig) Timeout() time.Duration { return ms(s.TimeoutMs) }
