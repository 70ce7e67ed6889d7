// internal/sampler/gpu.go
package sampler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// nvidiaQueryArgs are fixed: temperature, used memory, total memory (MiB), one line per GPU.
var nvidiaQueryArgs = []string{
	"--query-gpu=temperature.gpu,memory.used,memory.total",
	"--format=csv,noheader,nounits",
}

// CommandRunner runs an external command and returns its stdout.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs the command with os/exec; the context bounds its lifetime.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// NvidiaSMI implements GPUDriver by invoking nvidia-smi.
type NvidiaSMI struct {
	Command string
	Timeout time.Duration
	Run     CommandRunner
}

// Query runs one bounded nvidia-smi invocation and parses the first GPU.
func (n NvidiaSMI) Query(ctx context.Context) (GPUReading, error) {
	cmd := n.Command
	if cmd == "" {
		cmd = "nvidia-smi"
	}
	run := n.Run
	if run == nil {
		run = ExecRunner
	}
	if n.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.Timeout)
		defer cancel()
	}

	out, err := run(ctx, cmd, nvidiaQueryArgs...)
	if err != nil {
		return GPUReading{}, fmt.Errorf("%s: %w", cmd, err)
	}
	return ParseNvidiaSMI(string(out))
}

// ParseNvidiaSMI parses "temp, used, total" from the first non-empty line.
func ParseNvidiaSMI(output string) (GPUReading, error) {
	line := ""
	for _, l := range strings.Split(output, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			line = l
			break
		}
	}
	if line == "" {
		return GPUReading{}, errors.New("nvidia-smi: empty output")
	}

	fields := strings.Split(line, ",")
	if len(fields) < 3 {
		return GPUReading{}, fmt.Errorf("nvidia-smi: expected 3 fields, got %d", len(fields))
	}

	var vals [3]float64
	for i := range vals {
		raw := strings.TrimSpace(fields[i])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return GPUReading{}, fmt.Errorf("nvidia-smi: field %d %q: %w", i, raw, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return GPUReading{}, fmt.Errorf("nvidia-smi: field %d %q not finite", i, raw)
		}
		vals[i] = v
	}

	return GPUReading{
		TempC:       vals[0],
		MemUsedMiB:  vals[1],
		MemTotalMiB: vals[2],
	}, nil
}
