//go:build windows

// internal/sampler/temp_windows.go
package sampler

import (
	"context"
	"strings"

	wmi "github.com/StackExchange/wmi"
)

// hardwareMonitorSensor mirrors the Sensor class exposed by
// OpenHardwareMonitor / LibreHardwareMonitor.
type hardwareMonitorSensor struct {
	Name       string
	SensorType string
	Value      float32
}

const hardwareMonitorQuery = "SELECT Name, SensorType, Value FROM Sensor WHERE SensorType='Temperature'"

// WMISensor reads CPU temperature from a hardware monitor WMI namespace.
// Only available while the monitor application is running.
type WMISensor struct {
	Namespace string
}

func (w WMISensor) Name() string { return "wmi:" + w.Namespace }

func (w WMISensor) Temperature(ctx context.Context) (float64, bool) {
	if ctx.Err() != nil {
		return 0, false
	}

	var rows []hardwareMonitorSensor
	if err := wmi.QueryNamespace(hardwareMonitorQuery, &rows, w.Namespace); err != nil {
		return 0, false
	}
	for _, r := range rows {
		if strings.Contains(r.Name, "CPU") {
			return float64(r.Value), true
		}
	}
	return 0, false
}

// DefaultTempChain: OpenHardwareMonitor, LibreHardwareMonitor, then any ACPI zone.
func DefaultTempChain() TempChain {
	return TempChain{
		WMISensor{Namespace: `root\OpenHardwareMonitor`},
		WMISensor{Namespace: `root\LibreHardwareMonitor`},
		SensorSet{Read: ReadSensors},
	}
}
