// internal/config/normalize.go
package config

import "strings"

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// ------------------------------------------------------------
	// AUTO-SELECT KEYWORDS
	// ------------------------------------------------------------

	// Matching is case-insensitive; blanks would match every port.
	kw := cfg.Serial.Keywords[:0]
	for _, k := range cfg.Serial.Keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			kw = append(kw, k)
		}
	}
	cfg.Serial.Keywords = kw

	cfg.Serial.Port = strings.TrimSpace(cfg.Serial.Port)

	// ------------------------------------------------------------
	// STATUS MEMORY NORMALIZATION (OPT-IN)
	// ------------------------------------------------------------

	if cfg.StatusMemory == nil {
		return
	}

	// Normalize device_name:
	// - ASCII already validated
	// - Truncate to max 16 characters
	if len(cfg.StatusMemory.DeviceName) > 16 {
		cfg.StatusMemory.DeviceName = cfg.StatusMemory.DeviceName[:16]
	}
}
