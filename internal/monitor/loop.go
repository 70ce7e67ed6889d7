// internal/monitor/loop.go
package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/tamzrod/hwmon-serial/internal/color"
	"github.com/tamzrod/hwmon-serial/internal/packet"
	"github.com/tamzrod/hwmon-serial/internal/rate"
	"github.com/tamzrod/hwmon-serial/internal/sampler"
)

// Sampler produces one snapshot per call and never fails.
type Sampler interface {
	SampleOnce(ctx context.Context) sampler.Snapshot
}

// Link is the connected serial transport.
type Link interface {
	Send(frame []byte) error
	Reconnect(ctx context.Context) error
	Port() string
	Close() error
}

// Config is the loop cadence and color ramp.
type Config struct {
	Interval time.Duration
	Color    color.Range
}

// Loop drives sample -> encode -> send at a fixed period.
// One goroutine; it owns the rate state and the health tracker.
type Loop struct {
	cfg     Config
	sampler Sampler
	link    Link
	display Display
	health  *Tracker
	logger  *log.Logger

	state rate.State
}

// New creates a loop over an already connected link.
// display and health may be nil.
func New(cfg Config, s Sampler, link Link, display Display, health *Tracker, logger *log.Logger) (*Loop, error) {
	if s == nil {
		return nil, errors.New("monitor: sampler required")
	}
	if link == nil {
		return nil, errors.New("monitor: link required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("monitor: interval must be > 0")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if health == nil {
		health = NewTracker(nil, logger)
	}
	return &Loop{
		cfg:     cfg,
		sampler: s,
		link:    link,
		display: display,
		health:  health,
		logger:  logger,
	}, nil
}

// Run blocks until ctx is cancelled (nil) or the link cannot be restored
// (error). The link is closed on every exit path.
func (l *Loop) Run(ctx context.Context) error {
	defer func() {
		if err := l.link.Close(); err != nil {
			l.logger.Printf("serial close failed (port=%s): %v", l.link.Port(), err)
		}
	}()

	l.health.Start()

	ticker := time.NewTicker(l.cfg.Interval)
	defer ticker.Stop()

	secTicker := time.NewTicker(time.Second)
	defer secTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.breakLine()
			return nil

		case <-secTicker.C:
			l.health.Tick()

		case <-ticker.C:
			// select does not prefer Done over a pending tick
			if ctx.Err() != nil {
				l.breakLine()
				return nil
			}
			if err := l.cycle(ctx); err != nil {
				return err
			}
		}
	}
}

// cycle runs one sample/send pass. A failed send triggers exactly one
// reconnect sequence before returning; only a failed reconnect is an error.
func (l *Loop) cycle(ctx context.Context) error {
	snap := l.sampler.SampleOnce(ctx)

	rates := rate.Compute(l.state, snap.Counters, snap.TakenAt)
	l.state = rate.Advance(snap.Counters, snap.TakenAt)

	colors := Colors(snap, l.cfg.Color)
	frame := packet.Build(snap, rates, colors)

	err := l.link.Send(frame.Encode())
	if err == nil {
		l.health.Observe(EventSent, nil)
		if l.display != nil {
			l.display.Show(snap, rates, colors)
		}
		return nil
	}

	l.breakLine()
	port := l.link.Port()
	l.logger.Printf("connection lost (port=%s): %v", port, err)
	l.health.Observe(EventFailed, err)

	l.logger.Printf("attempting to reconnect (port=%s)", port)
	l.health.Observe(EventReconnecting, nil)

	if err := l.link.Reconnect(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		l.health.Observe(EventFailed, err)
		return fmt.Errorf("monitor: %w", err)
	}

	l.health.Observe(EventReconnected, nil)
	l.logger.Printf("reconnected (port=%s)", l.link.Port())
	return nil
}

func (l *Loop) breakLine() {
	if l.display != nil {
		l.display.Break()
	}
}

// Colors maps the snapshot temperatures onto the frame colors.
// VRAM has no sensor of its own and shares the GPU color.
func Colors(s sampler.Snapshot, r color.Range) packet.Colors {
	gpu := color.Map(s.GPUTempC, r)
	return packet.Colors{
		CPU:  color.Map(s.CPUTempC, r),
		GPU:  gpu,
		VRAM: gpu,
	}
}
