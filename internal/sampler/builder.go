// internal/sampler/builder.go
package sampler

import (
	cfg "github.com/tamzrod/hwmon-serial/internal/config"
)

// Build constructs a Sampler on the host's real sources.
// The temperature chain is platform-specific; the GPU driver is optional.
func Build(c *cfg.Config) (*Sampler, error) {
	var gpu GPUDriver
	if !c.GPU.Disabled {
		gpu = NvidiaSMI{
			Command: c.GPU.Command,
			Timeout: c.GPU.Timeout(),
		}
	}

	return New(
		Config{
			CPUWindow:        c.Poll.CPUWindow(),
			CPUFallbackTempC: c.CPU.FallbackTempC,
			GPUFallbackTempC: c.GPU.FallbackTempC,
		},
		Host{},
		DefaultTempChain(),
		gpu,
	)
}
