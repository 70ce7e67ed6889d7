// internal/monitor/display.go
package monitor

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/tamzrod/hwmon-serial/internal/packet"
	"github.com/tamzrod/hwmon-serial/internal/rate"
	"github.com/tamzrod/hwmon-serial/internal/sampler"
)

// Display renders the live status line.
type Display interface {
	// Show rewrites the status line for one sent frame.
	Show(s sampler.Snapshot, r rate.Rates, c packet.Colors)
	// Break ends the status line so the next message starts on its own line.
	Break()
}

// Console writes a single line rewritten in place with '\r'.
// Temperatures are tinted with the frame colors when styled.
type Console struct {
	w      io.Writer
	styled bool
	open   bool
}

// NewConsole writes to w; styling is enabled only when w is a terminal.
func NewConsole(w io.Writer) *Console {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return &Console{w: w, styled: styled}
}

func (c *Console) Show(s sampler.Snapshot, r rate.Rates, col packet.Colors) {
	fmt.Fprintf(c.w,
		"\rCPU: %5.1f%% (%s) | RAM: %5.1f%% | GPU: %5.1f%% (%s) | VRAM: %5.1f%% | "+
			"Disk: R:%6.2f W:%6.2f MB/s | Net: ↑%6.2f ↓%6.2f MB/s",
		s.CPUPercent, c.temp(s.CPUTempC, col.CPU.Hex()),
		s.RAMPercent,
		s.GPUPercent, c.temp(s.GPUTempC, col.GPU.Hex()),
		s.VRAMPercent,
		r.DiskRead, r.DiskWrite,
		r.NetUp, r.NetDown,
	)
	c.open = true
}

func (c *Console) Break() {
	if c.open {
		fmt.Fprintln(c.w)
		c.open = false
	}
}

func (c *Console) temp(v float64, hex string) string {
	txt := fmt.Sprintf("%4.1f°C", v)
	if !c.styled {
		return txt
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(txt)
}
