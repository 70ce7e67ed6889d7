// internal/monitor/health.go
package monitor

import (
	"errors"
	"io"
	"log"

	"github.com/tamzrod/hwmon-serial/internal/status"
	"github.com/tamzrod/hwmon-serial/internal/writer"
)

// Event is one link outcome reported by the loop.
type Event int

const (
	EventSent Event = iota
	EventFailed
	EventReconnecting
	EventReconnected
)

// Tracker owns the link status snapshot and delivers changes to an optional
// status writer. Loop-owned: no locking.
type Tracker struct {
	sw     writer.StatusWriter
	logger *log.Logger

	snap       status.Snapshot
	reconnects uint64
	errSeconds uint64
}

// NewTracker returns a tracker in HealthUnknown. sw may be nil.
func NewTracker(sw writer.StatusWriter, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Tracker{
		sw:     sw,
		logger: logger,
		snap:   status.Snapshot{Health: status.HealthUnknown},
	}
}

// Snapshot returns the current status.
func (t *Tracker) Snapshot() status.Snapshot { return t.snap }

// Start asserts the boot snapshot.
func (t *Tracker) Start() { t.publish("start") }

// Observe applies one loop event. err is only read for EventFailed.
func (t *Tracker) Observe(ev Event, err error) {
	next := t.snap

	switch ev {
	case EventSent:
		next.Health = status.HealthOK
		next.LastErrorCode = 0
		next.SecondsInError = 0
		t.errSeconds = 0
	case EventFailed:
		next.Health = status.HealthError
		next.LastErrorCode = errorCode(err)
	case EventReconnecting:
		next.Health = status.HealthReconnecting
	case EventReconnected:
		t.reconnects++
		next.Reconnects = status.Saturate(t.reconnects)
	}

	if next == t.snap {
		return
	}
	t.snap = next
	t.publish("event")
}

// Tick advances seconds_in_error; called at 1 Hz.
func (t *Tracker) Tick() {
	if t.snap.Health == status.HealthOK || t.snap.Health == status.HealthUnknown {
		return
	}
	t.errSeconds++
	v := status.Saturate(t.errSeconds)
	if v == t.snap.SecondsInError {
		return
	}
	t.snap.SecondsInError = v
	t.publish("seconds tick")
}

func (t *Tracker) publish(what string) {
	if t.sw == nil {
		return
	}
	if err := t.sw.WriteStatus(t.snap); err != nil {
		t.logger.Printf("status write failed (%s): %v", what, err)
	}
}

// errorCode extracts a best-effort uint16 code from an error without assuming concrete types.
// If the error does not expose a code, returns 1 (generic error).
func errorCode(err error) uint16 {
	if err == nil {
		return 0
	}

	type coder interface{ Code() uint16 }

	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return 1
}
