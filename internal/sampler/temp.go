// internal/sampler/temp.go
package sampler

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v4/sensors"
)

// TempProvider is one candidate source of CPU temperature.
// ok=false means "unavailable"; errors are never surfaced.
type TempProvider interface {
	Name() string
	Temperature(ctx context.Context) (celsius float64, ok bool)
}

// TempChain evaluates providers in priority order. First available wins.
type TempChain []TempProvider

// Temperature returns the first available reading, or fallback.
func (c TempChain) Temperature(ctx context.Context, fallback float64) float64 {
	for _, p := range c {
		if v, ok := p.Temperature(ctx); ok {
			return v
		}
	}
	return fallback
}

// SensorReader lists host temperature sensors.
type SensorReader func(ctx context.Context) ([]sensors.TemperatureStat, error)

// ReadSensors is the gopsutil sensor reader.
func ReadSensors(ctx context.Context) ([]sensors.TemperatureStat, error) {
	return sensors.TemperaturesWithContext(ctx)
}

// SensorSet picks a CPU temperature from a single read of the host sensors:
// the first vendor group present wins (Groups in priority order), then the
// first non-zero reading of any group.
type SensorSet struct {
	Groups []string
	Read   SensorReader
}

func (s SensorSet) Name() string { return "sensors" }

func (s SensorSet) Temperature(ctx context.Context) (float64, bool) {
	return pickSensor(readAll(ctx, s.Read), s.Groups)
}

func pickSensor(stats []sensors.TemperatureStat, groups []string) (float64, bool) {
	for _, g := range groups {
		for _, st := range stats {
			if strings.HasPrefix(strings.ToLower(st.SensorKey), g) {
				return st.Temperature, true
			}
		}
	}
	for _, st := range stats {
		if st.Temperature != 0 {
			return st.Temperature, true
		}
	}
	return 0, false
}

// readAll keeps partial results: gopsutil reports unreadable sensors as
// warnings alongside the ones it could read.
func readAll(ctx context.Context, read SensorReader) []sensors.TemperatureStat {
	if read == nil {
		read = ReadSensors
	}
	stats, _ := read(ctx)
	return stats
}

// sensorGroups is the vendor priority order for hwmon-style sensor groups.
var sensorGroups = []string{"coretemp", "k10temp", "zenpower"}
