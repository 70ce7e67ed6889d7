// internal/sampler/sampler.go
package sampler

import (
	"context"
	"errors"
	"time"

	"github.com/tamzrod/hwmon-serial/internal/rate"
)

// HostSource abstracts the host statistics the sampler needs.
type HostSource interface {
	CPUPercent(ctx context.Context, window time.Duration) (float64, error)
	MemoryPercent(ctx context.Context) (float64, error)
	Counters(ctx context.Context) (rate.Counters, error)
}

// GPUDriver queries the GPU vendor tool.
type GPUDriver interface {
	Query(ctx context.Context) (GPUReading, error)
}

// Config is the minimal runtime config the sampler needs.
type Config struct {
	CPUWindow        time.Duration
	CPUFallbackTempC float64
	GPUFallbackTempC float64
}

// Sampler gathers one Snapshot per call.
// It holds no state between calls.
type Sampler struct {
	cfg   Config
	host  HostSource
	temps TempChain
	gpu   GPUDriver
	now   func() time.Time
}

// New creates a sampler with immutable config.
func New(cfg Config, host HostSource, temps TempChain, gpu GPUDriver) (*Sampler, error) {
	if host == nil {
		return nil, errors.New("sampler: host source required")
	}
	if cfg.CPUWindow <= 0 {
		return nil, errors.New("sampler: cpu window must be > 0")
	}
	return &Sampler{
		cfg:   cfg,
		host:  host,
		temps: temps,
		gpu:   gpu,
		now:   time.Now,
	}, nil
}

// SampleOnce performs exactly one sampling pass.
// Failures never escape: unavailable readings fall back to fixed defaults
// (temperatures) or zero (percentages and counters).
func (s *Sampler) SampleOnce(ctx context.Context) Snapshot {
	var snap Snapshot

	if v, err := s.host.CPUPercent(ctx, s.cfg.CPUWindow); err == nil {
		snap.CPUPercent = v
	}

	snap.CPUTempC = s.temps.Temperature(ctx, s.cfg.CPUFallbackTempC)

	if v, err := s.host.MemoryPercent(ctx); err == nil {
		snap.RAMPercent = v
	}

	snap.GPUTempC = s.cfg.GPUFallbackTempC
	if s.gpu != nil {
		if g, err := s.gpu.Query(ctx); err == nil {
			snap.GPUTempC = g.TempC
			snap.VRAMPercent = g.VRAMPercent()
		}
	}
	snap.GPUPercent = snap.VRAMPercent

	if c, err := s.host.Counters(ctx); err == nil {
		snap.Counters = c
	}
	snap.TakenAt = s.now()

	return snap
}
