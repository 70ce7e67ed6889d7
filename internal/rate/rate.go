// internal/rate/rate.go
package rate

import "time"

// bytesPerMB is the divisor for MB/s (binary megabytes).
const bytesPerMB = 1024 * 1024

// Counters are cumulative byte totals as reported by the host.
type Counters struct {
	DiskRead  uint64
	DiskWrite uint64
	NetSent   uint64
	NetRecv   uint64
}

// State is the previous observation used for differencing.
// The zero State means "no previous observation".
type State struct {
	Counters Counters
	At       time.Time
}

// Rates are throughputs in MB/s.
type Rates struct {
	DiskRead  float64
	DiskWrite float64
	NetUp     float64
	NetDown   float64
}

// Compute derives throughput from prev to cur.
// Pure: the caller owns State and replaces it with Advance afterwards.
// Non-positive elapsed time (or no previous observation) yields zero rates.
func Compute(prev State, cur Counters, at time.Time) Rates {
	if prev.At.IsZero() {
		return Rates{}
	}

	elapsed := at.Sub(prev.At).Seconds()
	if elapsed <= 0 {
		return Rates{}
	}

	return Rates{
		DiskRead:  perSecond(prev.Counters.DiskRead, cur.DiskRead, elapsed),
		DiskWrite: perSecond(prev.Counters.DiskWrite, cur.DiskWrite, elapsed),
		NetUp:     perSecond(prev.Counters.NetSent, cur.NetSent, elapsed),
		NetDown:   perSecond(prev.Counters.NetRecv, cur.NetRecv, elapsed),
	}
}

// Advance returns the State to carry into the next cycle.
func Advance(cur Counters, at time.Time) State {
	return State{Counters: cur, At: at}
}

// perSecond treats a counter that went backwards (reset/overflow) as zero delta.
func perSecond(prev, cur uint64, elapsed float64) float64 {
	if cur < prev {
		return 0
	}
	return float64(cur-prev) / elapsed / bytesPerMB
}
