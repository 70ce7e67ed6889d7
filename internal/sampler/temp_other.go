//go:build !windows

// internal/sampler/temp_other.go
package sampler

// DefaultTempChain: vendor sensor groups first (Intel, AMD, AMD Ryzen), then anything.
func DefaultTempChain() TempChain {
	return TempChain{SensorSet{Groups: sensorGroups, Read: ReadSensors}}
}
