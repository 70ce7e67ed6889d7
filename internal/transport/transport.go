// internal/transport/transport.go
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"
)

// Config is the fixed link configuration.
type Config struct {
	BaudRate    int
	Timeout     time.Duration // per write, enforced by the port
	Settle      time.Duration // wait after open for the device reset
	Backoff     time.Duration // wait before each reconnect attempt
	MaxAttempts int           // reconnect attempts before giving up
}

// Transport owns the serial link.
// Disconnected --Connect--> Connected --Send failure--> Disconnected.
// Not safe for concurrent use: the monitor loop is its only caller.
type Transport struct {
	cfg    Config
	enum   Enumerator
	sel    Selector
	open   OpenFunc
	logger *log.Logger

	// sleep waits d or until ctx is done.
	sleep func(ctx context.Context, d time.Duration) error

	state LinkState
	port  string
	h     io.WriteCloser
}

// New creates a disconnected transport.
func New(cfg Config, enum Enumerator, sel Selector, open OpenFunc, logger *log.Logger) (*Transport, error) {
	if enum == nil {
		return nil, errors.New("transport: enumerator required")
	}
	if sel == nil {
		return nil, errors.New("transport: selector required")
	}
	if cfg.BaudRate <= 0 {
		return nil, errors.New("transport: baud rate must be > 0")
	}
	if open == nil {
		open = OpenSerial
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Transport{
		cfg:    cfg,
		enum:   enum,
		sel:    sel,
		open:   open,
		logger: logger,
		sleep:  sleepCtx,
	}, nil
}

// State returns the current link state.
func (t *Transport) State() LinkState { return t.state }

// Port returns the bound port name ("" when never connected).
func (t *Transport) Port() string { return t.port }

// Connect runs discovery, selection and open, then waits for the device to settle.
// One attempt per call.
func (t *Transport) Connect(ctx context.Context) error {
	t.drop()

	ports, err := Discover(t.enum)
	if err != nil {
		return err
	}
	t.logger.Printf("found %d serial port(s)", len(ports))
	for i, p := range ports {
		t.logger.Printf("  %d. %s", i+1, p)
	}

	p, err := t.sel.Select(ctx, ports)
	if err != nil {
		return err
	}
	t.logger.Printf("selected %s (%s)", p.Name, Explain(t.sel, p, ports))

	h, err := t.open(p.Name, t.cfg.BaudRate, t.cfg.Timeout)
	if err != nil {
		return &LinkError{Op: "open", Port: p.Name, Err: err}
	}
	t.logger.Printf("connected to %s at %d baud", p.Name, t.cfg.BaudRate)

	// The device resets on open; frames sent before it boots are lost.
	if err := t.sleep(ctx, t.cfg.Settle); err != nil {
		_ = h.Close()
		return &LinkError{Op: "settle", Port: p.Name, Err: err}
	}

	t.h = h
	t.port = p.Name
	t.state = Connected
	return nil
}

// Send writes one encoded frame. Any write error or short write is a link
// failure: the handle is released and the link becomes Disconnected.
func (t *Transport) Send(frame []byte) error {
	if t.state != Connected || t.h == nil {
		return ErrNotConnected
	}

	n, err := t.h.Write(frame)
	if err == nil && n != len(frame) {
		err = io.ErrShortWrite
	}
	if err != nil {
		t.drop()
		return &LinkError{Op: "write", Port: t.port, Err: err}
	}
	return nil
}

// Reconnect releases the handle, waits the backoff and connects again,
// up to MaxAttempts times. Operator abort and cancellation end it early.
func (t *Transport) Reconnect(ctx context.Context) error {
	t.drop()

	var last error
	attempts := 0
	for attempts < t.cfg.MaxAttempts {
		attempts++

		if err := t.sleep(ctx, t.cfg.Backoff); err != nil {
			return err
		}

		err := t.Connect(ctx)
		if err == nil {
			return nil
		}
		last = err
		t.logger.Printf("reconnect attempt %d/%d failed: %v", attempts, t.cfg.MaxAttempts, err)

		if errors.Is(err, ErrAborted) || errors.Is(err, ErrNotInteractive) || ctx.Err() != nil {
			break
		}
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("%w after %d attempt(s): %w", ErrReconnectFailed, attempts, last)
}

// Close releases the handle. Safe to call repeatedly.
func (t *Transport) Close() error {
	return t.drop()
}

func (t *Transport) drop() error {
	t.state = Disconnected
	if t.h == nil {
		return nil
	}
	h := t.h
	t.h = nil
	return h.Close()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
