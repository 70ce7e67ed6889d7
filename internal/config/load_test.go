// internal/config/load_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hwmon.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() err=%v", err)
	}
	if cfg.Serial.BaudRate != 115200 {
		t.Fatalf("baud: got=%d want=115200", cfg.Serial.BaudRate)
	}
	if cfg.Poll.Interval() != 100*time.Millisecond {
		t.Fatalf("interval: got=%v", cfg.Poll.Interval())
	}
	if cfg.Serial.Settle() != 2*time.Second || cfg.Reconnect.Backoff() != 2*time.Second {
		t.Fatalf("settle/backoff defaults wrong: %v %v", cfg.Serial.Settle(), cfg.Reconnect.Backoff())
	}
	if cfg.StatusMemory != nil {
		t.Fatalf("status memory must be opt-in")
	}
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := writeConfig(t, `
serial:
  port: /dev/ttyACM0
poll:
  interval_ms: 250
reconnect:
  max_attempts: 5
status_memory:
  endpoint: 127.0.0.1:502
  slot: 2
  device_name: DESK-01
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err=%v", err)
	}

	if cfg.Serial.Port != "/dev/ttyACM0" {
		t.Fatalf("port: got=%q", cfg.Serial.Port)
	}
	// untouched keys keep their defaults
	if cfg.Serial.BaudRate != 115200 || cfg.Poll.CPUWindowMs != 100 {
		t.Fatalf("defaults lost: baud=%d window=%d", cfg.Serial.BaudRate, cfg.Poll.CPUWindowMs)
	}
	if cfg.Poll.IntervalMs != 250 || cfg.Reconnect.MaxAttempts != 5 {
		t.Fatalf("overlay not applied: %+v %+v", cfg.Poll, cfg.Reconnect)
	}
	if cfg.StatusMemory == nil || cfg.StatusMemory.TimeoutMs != 1000 {
		t.Fatalf("status memory timeout default not applied: %+v", cfg.StatusMemory)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() err=%v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	path := writeConfig(t, "serial: [not, a, map]\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
