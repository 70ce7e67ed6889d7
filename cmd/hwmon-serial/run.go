// cmd/hwmon-serial/run.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/tamzrod/hwmon-serial/internal/color"
	"github.com/tamzrod/hwmon-serial/internal/config"
	"github.com/tamzrod/hwmon-serial/internal/monitor"
	"github.com/tamzrod/hwmon-serial/internal/sampler"
	"github.com/tamzrod/hwmon-serial/internal/transport"
	"github.com/tamzrod/hwmon-serial/internal/writer"
)

type options struct {
	configPath  string
	port        string
	index       int
	interval    time.Duration
	intervalSet bool
	listPorts   bool
}

func run(parent context.Context, opts options) error {
	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	applyFlags(cfg, opts)

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)

	enum := transport.SystemEnumerator{}

	if opts.listPorts {
		return listPorts(enum)
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	banner()

	// --------------------
	// Build pipeline
	// --------------------

	s, err := sampler.Build(cfg)
	if err != nil {
		return fmt.Errorf("sampler build failed: %w", err)
	}

	tr, err := transport.New(
		transport.Config{
			BaudRate:    cfg.Serial.BaudRate,
			Timeout:     cfg.Serial.Timeout(),
			Settle:      cfg.Serial.Settle(),
			Backoff:     cfg.Reconnect.Backoff(),
			MaxAttempts: cfg.Reconnect.MaxAttempts,
		},
		enum,
		buildSelector(cfg.Serial, opts.index, term.IsTerminal(int(os.Stdin.Fd()))),
		transport.OpenSerial,
		log.Default(),
	)
	if err != nil {
		return fmt.Errorf("transport build failed: %w", err)
	}

	if err := tr.Connect(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		if errors.Is(err, transport.ErrNoPorts) {
			return errors.New("no serial ports found")
		}
		return fmt.Errorf("failed to connect to display. exiting: %w", err)
	}

	// status export is optional; a dead endpoint must not stop the display
	sw, closeStatus, err := writer.Build(cfg.StatusMemory)
	if err != nil {
		log.Printf("status export disabled (endpoint=%s): %v", cfg.StatusMemory.Endpoint, err)
		sw = nil
	}
	defer closeStatus()

	console := monitor.NewConsole(os.Stdout)
	loop, err := monitor.New(
		monitor.Config{
			Interval: cfg.Poll.Interval(),
			Color:    color.Range{MinC: cfg.Color.MinC, MaxC: cfg.Color.MaxC},
		},
		s,
		tr,
		console,
		monitor.NewTracker(sw, log.Default()),
		log.Default(),
	)
	if err != nil {
		_ = tr.Close()
		return fmt.Errorf("monitor build failed: %w", err)
	}

	fmt.Println("\nMonitoring started. Press Ctrl+C to stop.")
	fmt.Println()

	err = loop.Run(ctx)
	if err == nil {
		fmt.Println("\nStopping monitor...")
	} else {
		fmt.Println("Reconnection failed. Exiting...")
	}
	fmt.Println("Serial connection closed.")
	return err
}

// applyFlags lets CLI flags override the file.
func applyFlags(cfg *config.Config, opts options) {
	if opts.port != "" {
		cfg.Serial.Port = opts.port
	}
	if opts.intervalSet {
		cfg.Poll.IntervalMs = int(opts.interval / time.Millisecond)
	}
}

// buildSelector picks how the port is chosen:
// explicit name, explicit index, or keyword match with a prompt fallback
// when a terminal is attached.
func buildSelector(sc config.SerialConfig, index int, interactive bool) transport.Selector {
	switch {
	case sc.Port != "":
		return transport.NameSelector{Name: sc.Port}
	case index > 0:
		return transport.IndexSelector{Index: index}
	}

	sel := transport.KeywordSelector{Keywords: sc.Keywords}
	if interactive {
		sel.Next = transport.PromptSelector{}
	}
	return sel
}

func listPorts(enum transport.Enumerator) error {
	ports, err := transport.Discover(enum)
	if err != nil {
		if errors.Is(err, transport.ErrNoPorts) {
			return errors.New("no serial ports found")
		}
		return err
	}

	fmt.Println("Available serial ports:")
	for i, p := range ports {
		fmt.Printf("%d. %s\n", i+1, p)
	}
	return nil
}

func banner() {
	line := strings.Repeat("=", 80)
	fmt.Println(line)
	fmt.Println("System Monitor - Starting...")
	fmt.Println(line)
}
