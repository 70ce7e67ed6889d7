// internal/sampler/types.go
package sampler

import (
	"time"

	"github.com/tamzrod/hwmon-serial/internal/rate"
)

// Snapshot is one instantaneous reading of the host.
// Produced by SampleOnce and never mutated afterwards.
type Snapshot struct {
	CPUPercent float64
	CPUTempC   float64
	RAMPercent float64

	// GPUPercent mirrors VRAMPercent: the vendor query carries no utilization column.
	GPUPercent  float64
	GPUTempC    float64
	VRAMPercent float64

	// Cumulative totals; throughput is derived by the rate package.
	Counters rate.Counters

	// TakenAt keeps the monotonic clock reading from time.Now.
	TakenAt time.Time
}

// GPUReading is one parsed answer from the GPU vendor tool.
type GPUReading struct {
	TempC       float64
	MemUsedMiB  float64
	MemTotalMiB float64
}

// VRAMPercent returns used/total*100, or 0 when total is unknown.
func (g GPUReading) VRAMPercent() float64 {
	if g.MemTotalMiB <= 0 {
		return 0
	}
	return g.MemUsedMiB / g.MemTotalMiB * 100
}
