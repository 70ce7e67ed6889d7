// internal/packet/packet_test.go
package packet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/hwmon-serial/internal/color"
	"github.com/tamzrod/hwmon-serial/internal/rate"
	"github.com/tamzrod/hwmon-serial/internal/sampler"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{150, 99},
		{100, 99},
		{99.9, 99},
		{45.7, 45},
		{0.4, 0},
		{-3, 0},
		{math.NaN(), 0},
		{math.Inf(1), 99},
		{300, 99}, // would wrap to 44 as a raw byte
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp(tt.in), "in=%v", tt.in)
	}
}

func TestEncode_OverRangeCPUIsClamped(t *testing.T) {
	f := Build(sampler.Snapshot{CPUPercent: 150}, rate.Rates{}, Colors{})
	b := f.Encode()

	require.Len(t, b, FrameSize)
	assert.Equal(t, byte(99), b[2])
}

func TestEncode_LayoutIsLittleEndian(t *testing.T) {
	f := Frame{
		CPUUsage:  1,
		CPUColor:  0x1234,
		RAMUsage:  2,
		GPUUsage:  3,
		GPUColor:  0xABCD,
		VRAMUsage: 4,
		VRAMColor: 0xABCD,
		DiskRead:  5,
		DiskWrite: 6,
		NetUp:     7,
		NetDown:   8,
	}

	want := []byte{
		0xFF, 0xFF,
		1, 0x34, 0x12,
		2,
		3, 0xCD, 0xAB,
		4, 0xCD, 0xAB,
		5, 6, 7, 8,
	}
	assert.Equal(t, want, f.Encode())
}

func TestDecode_RoundTrip(t *testing.T) {
	snap := sampler.Snapshot{
		CPUPercent:  37.9,
		CPUTempC:    64,
		RAMPercent:  81.2,
		GPUPercent:  12.5,
		GPUTempC:    77,
		VRAMPercent: 12.5,
	}
	rates := rate.Rates{DiskRead: 120, DiskWrite: 0.2, NetUp: 9.99, NetDown: -1}
	gpuColor := color.Map(snap.GPUTempC, color.DefaultRange)
	colors := Colors{
		CPU:  color.Map(snap.CPUTempC, color.DefaultRange),
		GPU:  gpuColor,
		VRAM: gpuColor,
	}

	got, err := Decode(Build(snap, rates, colors).Encode())
	require.NoError(t, err)

	assert.Equal(t, uint8(37), got.CPUUsage)
	assert.Equal(t, colors.CPU, got.CPUColor)
	assert.Equal(t, uint8(81), got.RAMUsage)
	assert.Equal(t, uint8(12), got.GPUUsage)
	assert.Equal(t, gpuColor, got.GPUColor)
	assert.Equal(t, uint8(12), got.VRAMUsage)
	assert.Equal(t, got.GPUColor, got.VRAMColor)
	assert.Equal(t, uint8(99), got.DiskRead)
	assert.Equal(t, uint8(0), got.DiskWrite)
	assert.Equal(t, uint8(9), got.NetUp)
	assert.Equal(t, uint8(0), got.NetDown)
}

func TestDecode_Rejects(t *testing.T) {
	_, err := Decode(make([]byte, FrameSize-1))
	assert.Error(t, err)

	b := Frame{}.Encode()
	b[1] = 0x00
	_, err = Decode(b)
	assert.Error(t, err)
}

func TestBuild_EndToEndScenario(t *testing.T) {
	snap := sampler.Snapshot{
		CPUPercent:  45,
		CPUTempC:    55,
		RAMPercent:  60,
		GPUTempC:    70,
		VRAMPercent: 30,
		GPUPercent:  30,
	}
	rates := rate.Rates{DiskRead: 2.5, DiskWrite: 1.1, NetUp: 0.5, NetDown: 3.9}
	gpuColor := color.Map(snap.GPUTempC, color.DefaultRange)

	b := Build(snap, rates, Colors{
		CPU:  color.Map(snap.CPUTempC, color.DefaultRange),
		GPU:  gpuColor,
		VRAM: gpuColor,
	}).Encode()

	require.Len(t, b, 16)
	f, err := Decode(b)
	require.NoError(t, err)

	assert.Equal(t, uint8(45), f.CPUUsage)
	assert.Equal(t, uint8(60), f.RAMUsage)
	assert.Equal(t, uint8(30), f.VRAMUsage)
	assert.Equal(t, uint8(2), f.DiskRead)
	assert.Equal(t, uint8(1), f.DiskWrite)
	assert.Equal(t, uint8(0), f.NetUp)
	assert.Equal(t, uint8(3), f.NetDown)

	// 55C sits in the green -> yellow segment: full green, some red, no blue.
	r5, g6, b5 := f.CPUColor.Channels()
	assert.NotZero(t, r5)
	assert.Less(t, r5, uint8(0x1F))
	assert.Equal(t, uint8(0x3F), g6)
	assert.Zero(t, b5)
}
