// internal/packet/packet.go
package packet

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/tamzrod/hwmon-serial/internal/color"
	"github.com/tamzrod/hwmon-serial/internal/rate"
	"github.com/tamzrod/hwmon-serial/internal/sampler"
)

//
// ---- Telemetry frame (LOCKED) ----
//
// Layout (2-byte marker + 14-byte payload, little-endian):
// 0–1    Marker 0xFF 0xFF
// 2      cpu_usage   u8 0–99
// 3–4    cpu_color   RGB565
// 5      ram_usage   u8 0–99
// 6      gpu_usage   u8 0–99
// 7–8    gpu_color   RGB565
// 9      vram_usage  u8 0–99
// 10–11  vram_color  RGB565 (= gpu_color)
// 12     disk_read   u8 MB/s
// 13     disk_write  u8 MB/s
// 14     net_up      u8 MB/s
// 15     net_down    u8 MB/s
//

const (
	MarkerByte  byte = 0xFF
	MarkerSize       = 2
	PayloadSize      = 14
	FrameSize        = MarkerSize + PayloadSize

	// MaxValue is the largest value any scalar field carries.
	MaxValue = 99
)

var order = binary.LittleEndian

// Colors are the derived colors carried by a frame. VRAM reuses GPU's.
type Colors struct {
	CPU  color.RGB565
	GPU  color.RGB565
	VRAM color.RGB565
}

// Frame holds the clamped wire values of one cycle.
type Frame struct {
	CPUUsage  uint8
	CPUColor  color.RGB565
	RAMUsage  uint8
	GPUUsage  uint8
	GPUColor  color.RGB565
	VRAMUsage uint8
	VRAMColor color.RGB565
	DiskRead  uint8
	DiskWrite uint8
	NetUp     uint8
	NetDown   uint8
}

// Build clamps a snapshot and its rates into a Frame.
func Build(s sampler.Snapshot, r rate.Rates, c Colors) Frame {
	return Frame{
		CPUUsage:  Clamp(s.CPUPercent),
		CPUColor:  c.CPU,
		RAMUsage:  Clamp(s.RAMPercent),
		GPUUsage:  Clamp(s.GPUPercent),
		GPUColor:  c.GPU,
		VRAMUsage: Clamp(s.VRAMPercent),
		VRAMColor: c.VRAM,
		DiskRead:  Clamp(r.DiskRead),
		DiskWrite: Clamp(r.DiskWrite),
		NetUp:     Clamp(r.NetUp),
		NetDown:   Clamp(r.NetDown),
	}
}

// Encode returns marker + payload, ready for a single write.
func (f Frame) Encode() []byte {
	b := make([]byte, FrameSize)
	b[0] = MarkerByte
	b[1] = MarkerByte

	p := b[MarkerSize:]
	p[0] = f.CPUUsage
	order.PutUint16(p[1:3], uint16(f.CPUColor))
	p[3] = f.RAMUsage
	p[4] = f.GPUUsage
	order.PutUint16(p[5:7], uint16(f.GPUColor))
	p[7] = f.VRAMUsage
	order.PutUint16(p[8:10], uint16(f.VRAMColor))
	p[10] = f.DiskRead
	p[11] = f.DiskWrite
	p[12] = f.NetUp
	p[13] = f.NetDown

	return b
}

// Decode parses a frame the way the display firmware does.
func Decode(b []byte) (Frame, error) {
	if len(b) != FrameSize {
		return Frame{}, fmt.Errorf("packet: frame length %d, want %d", len(b), FrameSize)
	}
	if b[0] != MarkerByte || b[1] != MarkerByte {
		return Frame{}, errors.New("packet: missing frame marker")
	}

	p := b[MarkerSize:]
	return Frame{
		CPUUsage:  p[0],
		CPUColor:  color.RGB565(order.Uint16(p[1:3])),
		RAMUsage:  p[3],
		GPUUsage:  p[4],
		GPUColor:  color.RGB565(order.Uint16(p[5:7])),
		VRAMUsage: p[7],
		VRAMColor: color.RGB565(order.Uint16(p[8:10])),
		DiskRead:  p[10],
		DiskWrite: p[11],
		NetUp:     p[12],
		NetDown:   p[13],
	}, nil
}

// Clamp truncates toward zero into [0, MaxValue]. NaN and negatives become 0.
// Over-range values saturate instead of wrapping.
func Clamp(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= MaxValue {
		return MaxValue
	}
	return uint8(v)
}
