// internal/color/color_test.go
package color

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_ColdIsPureBlue(t *testing.T) {
	for _, temp := range []float64{-40, 0, 29.9, 30} {
		r5, g6, b5 := Map(temp, DefaultRange).Channels()
		assert.Equal(t, uint8(0), r5, "temp=%v", temp)
		assert.Equal(t, uint8(0), g6, "temp=%v", temp)
		assert.Equal(t, uint8(0x1F), b5, "temp=%v", temp)
	}
	assert.Equal(t, RGB565(0x001F), Map(30, DefaultRange))
}

func TestMap_HotIsPureRed(t *testing.T) {
	for _, temp := range []float64{90, 90.1, 120, math.Inf(1)} {
		assert.Equal(t, RGB565(0xF800), Map(temp, DefaultRange), "temp=%v", temp)
	}
}

func TestMap_ContinuousAtSegmentBoundaries(t *testing.T) {
	// ratio 1/3 -> 50C, ratio 2/3 -> 70C
	for _, boundary := range []float64{50, 70} {
		lo := Map(boundary-1e-6, DefaultRange)
		hi := Map(boundary+1e-6, DefaultRange)

		lr, lg, lb := lo.Channels()
		hr, hg, hb := hi.Channels()

		assert.LessOrEqual(t, absDiff(lr, hr), 1, "red jump at %v", boundary)
		assert.LessOrEqual(t, absDiff(lg, hg), 1, "green jump at %v", boundary)
		assert.LessOrEqual(t, absDiff(lb, hb), 1, "blue jump at %v", boundary)
	}
}

func TestMap_Segments(t *testing.T) {
	tests := []struct {
		name  string
		temp  float64
		check func(t *testing.T, r5, g6, b5 uint8)
	}{
		{
			name: "blue to green",
			temp: 40,
			check: func(t *testing.T, r5, g6, b5 uint8) {
				assert.Zero(t, r5)
				assert.NotZero(t, g6)
				assert.NotZero(t, b5)
			},
		},
		{
			name: "green to yellow",
			temp: 55,
			check: func(t *testing.T, r5, g6, b5 uint8) {
				assert.NotZero(t, r5)
				assert.Equal(t, uint8(0x3F), g6)
				assert.Zero(t, b5)
			},
		},
		{
			name: "yellow to red",
			temp: 80,
			check: func(t *testing.T, r5, g6, b5 uint8) {
				assert.Equal(t, uint8(0x1F), r5)
				assert.NotZero(t, g6)
				assert.Less(t, g6, uint8(0x3F))
				assert.Zero(t, b5)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r5, g6, b5 := Map(tt.temp, DefaultRange).Channels()
			tt.check(t, r5, g6, b5)
		})
	}
}

func TestMap_DegenerateInputs(t *testing.T) {
	assert.Equal(t, RGB565(0x001F), Map(math.NaN(), DefaultRange))
	assert.Equal(t, RGB565(0x001F), Map(50, Range{MinC: 60, MaxC: 60}))
}

func TestPackAndHex(t *testing.T) {
	c := Pack(0xFF, 0xFF, 0xFF)
	assert.Equal(t, RGB565(0xFFFF), c)
	assert.Equal(t, "#f8fcf8", c.Hex())
	assert.Equal(t, "#0000f8", RGB565(0x001F).Hex())
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
