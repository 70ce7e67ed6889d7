// internal/status/snapshot.go
package status

// Snapshot is the live part of the status block.
// It carries no history; the tracker that produces it owns the counting.
type Snapshot struct {
	Health         uint16
	LastErrorCode  uint16
	SecondsInError uint16
	Reconnects     uint16
}

// Saturate converts a counter into a register value that never wraps.
func Saturate(n uint64) uint16 {
	if n > 0xFFFF {
		return 0xFFFF
	}
	return uint16(n)
}
