// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
	"math"
)

// statusBlockSlots mirrors status.SlotsPerDevice without importing it.
const statusBlockSlots = 20

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil")
	}

	// ------------------------------------------------------------
	// SERIAL
	// ------------------------------------------------------------

	if cfg.Serial.BaudRate <= 0 {
		return fmt.Errorf("serial.baud_rate must be > 0 (got %d)", cfg.Serial.BaudRate)
	}
	if cfg.Serial.TimeoutMs <= 0 {
		return fmt.Errorf("serial.timeout_ms must be > 0 (got %d)", cfg.Serial.TimeoutMs)
	}
	if cfg.Serial.SettleMs < 0 {
		return fmt.Errorf("serial.settle_ms must be >= 0 (got %d)", cfg.Serial.SettleMs)
	}

	// ------------------------------------------------------------
	// POLL
	// ------------------------------------------------------------

	if cfg.Poll.IntervalMs <= 0 {
		return fmt.Errorf("poll.interval_ms must be > 0 (got %d)", cfg.Poll.IntervalMs)
	}
	if cfg.Poll.CPUWindowMs <= 0 {
		return fmt.Errorf("poll.cpu_window_ms must be > 0 (got %d)", cfg.Poll.CPUWindowMs)
	}

	// ------------------------------------------------------------
	// COLOR RAMP
	// ------------------------------------------------------------

	if math.IsNaN(cfg.Color.MinC) || math.IsNaN(cfg.Color.MaxC) {
		return errors.New("color: min_c and max_c must be numbers")
	}
	if cfg.Color.MinC >= cfg.Color.MaxC {
		return fmt.Errorf(
			"color: min_c (%.1f) must be below max_c (%.1f)",
			cfg.Color.MinC,
			cfg.Color.MaxC,
		)
	}

	// ------------------------------------------------------------
	// GPU
	// ------------------------------------------------------------

	if !cfg.GPU.Disabled {
		if cfg.GPU.Command == "" {
			return errors.New("gpu.command required unless gpu.disabled is set")
		}
		if cfg.GPU.TimeoutMs <= 0 {
			return fmt.Errorf("gpu.timeout_ms must be > 0 (got %d)", cfg.GPU.TimeoutMs)
		}
	}

	// ------------------------------------------------------------
	// RECONNECT
	// ------------------------------------------------------------

	if cfg.Reconnect.BackoffMs < 0 {
		return fmt.Errorf("reconnect.backoff_ms must be >= 0 (got %d)", cfg.Reconnect.BackoffMs)
	}
	if cfg.Reconnect.MaxAttempts < 1 {
		return fmt.Errorf("reconnect.max_attempts must be >= 1 (got %d)", cfg.Reconnect.MaxAttempts)
	}

	// ------------------------------------------------------------
	// STATUS MEMORY (OPT-IN)
	// ------------------------------------------------------------

	sm := cfg.StatusMemory
	if sm == nil {
		return nil
	}

	if sm.Endpoint == "" {
		return errors.New("status_memory.endpoint required when status_memory is set")
	}
	if sm.TimeoutMs <= 0 {
		return fmt.Errorf("status_memory.timeout_ms must be > 0 (got %d)", sm.TimeoutMs)
	}

	// device_name sanity (ASCII only)
	for i := 0; i < len(sm.DeviceName); i++ {
		if sm.DeviceName[i] > 0x7F {
			return errors.New("status_memory.device_name must contain ASCII characters only")
		}
	}

	// the whole block must be addressable
	if int(sm.Slot)*statusBlockSlots+statusBlockSlots > 65536 {
		return fmt.Errorf("status_memory.slot %d exceeds register address space", sm.Slot)
	}

	return nil
}
