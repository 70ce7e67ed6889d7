// internal/sampler/sampler_test.go
package sampler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v4/sensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/hwmon-serial/internal/rate"
)

// ---- fakes ----

type fakeHost struct {
	cpu      float64
	ram      float64
	counters rate.Counters
	fail     bool
	window   time.Duration
}

func (f *fakeHost) CPUPercent(_ context.Context, window time.Duration) (float64, error) {
	f.window = window
	if f.fail {
		return 0, errors.New("cpu unavailable")
	}
	return f.cpu, nil
}

func (f *fakeHost) MemoryPercent(context.Context) (float64, error) {
	if f.fail {
		return 0, errors.New("mem unavailable")
	}
	return f.ram, nil
}

func (f *fakeHost) Counters(context.Context) (rate.Counters, error) {
	if f.fail {
		return rate.Counters{}, errors.New("counters unavailable")
	}
	return f.counters, nil
}

type fakeGPU struct {
	reading GPUReading
	err     error
}

func (f fakeGPU) Query(context.Context) (GPUReading, error) { return f.reading, f.err }

type fixedTemp struct {
	v  float64
	ok bool
}

func (fixedTemp) Name() string { return "fixed" }

func (f fixedTemp) Temperature(context.Context) (float64, bool) { return f.v, f.ok }

var testConfig = Config{
	CPUWindow:        100 * time.Millisecond,
	CPUFallbackTempC: 50,
	GPUFallbackTempC: 50,
}

// ---- tests ----

func TestNew_RequiresHostAndWindow(t *testing.T) {
	_, err := New(testConfig, nil, nil, nil)
	assert.Error(t, err)

	_, err = New(Config{}, &fakeHost{}, nil, nil)
	assert.Error(t, err)
}

func TestSampleOnce_AllSourcesAvailable(t *testing.T) {
	host := &fakeHost{
		cpu:      45,
		ram:      60,
		counters: rate.Counters{DiskRead: 1, DiskWrite: 2, NetSent: 3, NetRecv: 4},
	}
	gpu := fakeGPU{reading: GPUReading{TempC: 70, MemUsedMiB: 2560, MemTotalMiB: 10240}}
	temps := TempChain{fixedTemp{ok: false}, fixedTemp{v: 55, ok: true}}

	s, err := New(testConfig, host, temps, gpu)
	require.NoError(t, err)

	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }

	snap := s.SampleOnce(context.Background())

	assert.Equal(t, 100*time.Millisecond, host.window)
	assert.Equal(t, 45.0, snap.CPUPercent)
	assert.Equal(t, 55.0, snap.CPUTempC)
	assert.Equal(t, 60.0, snap.RAMPercent)
	assert.Equal(t, 70.0, snap.GPUTempC)
	assert.Equal(t, 25.0, snap.VRAMPercent)
	assert.Equal(t, snap.VRAMPercent, snap.GPUPercent)
	assert.Equal(t, host.counters, snap.Counters)
	assert.Equal(t, at, snap.TakenAt)
}

func TestSampleOnce_FallbacksNeverFail(t *testing.T) {
	s, err := New(
		testConfig,
		&fakeHost{fail: true},
		TempChain{fixedTemp{ok: false}},
		fakeGPU{err: errors.New("nvidia-smi: executable file not found")},
	)
	require.NoError(t, err)

	snap := s.SampleOnce(context.Background())

	assert.Equal(t, 50.0, snap.CPUTempC)
	assert.Equal(t, 50.0, snap.GPUTempC)
	assert.Zero(t, snap.VRAMPercent)
	assert.Zero(t, snap.GPUPercent)
	assert.Zero(t, snap.CPUPercent)
	assert.Zero(t, snap.RAMPercent)
	assert.Equal(t, rate.Counters{}, snap.Counters)
	assert.False(t, snap.TakenAt.IsZero())
}

func TestSampleOnce_NoGPUDriver(t *testing.T) {
	s, err := New(testConfig, &fakeHost{}, nil, nil)
	require.NoError(t, err)

	snap := s.SampleOnce(context.Background())
	assert.Equal(t, 50.0, snap.GPUTempC)
	assert.Equal(t, 50.0, snap.CPUTempC)
}

func TestSensorSet_VendorGroupsBeforeAny(t *testing.T) {
	read := func(context.Context) ([]sensors.TemperatureStat, error) {
		return []sensors.TemperatureStat{
			{SensorKey: "acpitz", Temperature: 27.8},
			{SensorKey: "nvme_composite", Temperature: 38},
			{SensorKey: "k10temp_tctl", Temperature: 61.5},
		}, nil
	}

	chain := TempChain{SensorSet{Groups: []string{"coretemp", "k10temp"}, Read: read}}
	assert.Equal(t, 61.5, chain.Temperature(context.Background(), 50))
}

func TestSensorSet_ReadsSensorsOncePerCall(t *testing.T) {
	reads := 0
	read := func(context.Context) ([]sensors.TemperatureStat, error) {
		reads++
		return nil, nil
	}

	chain := TempChain{SensorSet{Groups: sensorGroups, Read: read}}
	assert.Equal(t, 50.0, chain.Temperature(context.Background(), 50))
	assert.Equal(t, 1, reads)
}

func TestSensorSet_AnyGroupSkipsZeroReadings(t *testing.T) {
	read := func(context.Context) ([]sensors.TemperatureStat, error) {
		return []sensors.TemperatureStat{
			{SensorKey: "iwlwifi_1", Temperature: 0},
			{SensorKey: "acpitz", Temperature: 41},
		}, errors.New("partial read")
	}

	chain := TempChain{SensorSet{Groups: []string{"coretemp"}, Read: read}}
	assert.Equal(t, 41.0, chain.Temperature(context.Background(), 50))
}

func TestTempChain_AllUnavailableFallsBack(t *testing.T) {
	read := func(context.Context) ([]sensors.TemperatureStat, error) {
		return nil, errors.New("no sensors")
	}

	chain := TempChain{SensorSet{Groups: sensorGroups, Read: read}}
	assert.Equal(t, 50.0, chain.Temperature(context.Background(), 50))
	assert.Equal(t, 50.0, TempChain(nil).Temperature(context.Background(), 50))
}

func TestIsPartition(t *testing.T) {
	devices := map[string]int{
		"sda": 0, "sda1": 0, "sda2": 0,
		"nvme0n1": 0, "nvme0n1p1": 0,
		"mmcblk0": 0, "mmcblk0p1": 0,
		"sdab": 0,
		"loop1": 0, "loop10": 0,
		"dm-1": 0, "dm-10": 0,
		"md1": 0, "md12": 0, "md127": 0, "md127p1": 0,
	}

	for _, name := range []string{"sda1", "sda2", "nvme0n1p1", "mmcblk0p1", "md127p1"} {
		assert.True(t, isPartition(name, devices), name)
	}
	for _, name := range []string{"sda", "nvme0n1", "mmcblk0", "sdab", "loop10", "dm-10", "md12", "md127"} {
		assert.False(t, isPartition(name, devices), name)
	}
}
