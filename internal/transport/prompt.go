// internal/transport/prompt.go
package transport

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// quitValue never collides with a device name.
const quitValue = "\x00quit"

// PromptSelector asks the operator to pick a port. The only unbounded
// blocking step of the program.
type PromptSelector struct{}

func (PromptSelector) Explain(PortInfo, []PortInfo) string { return "chosen at prompt" }

func (PromptSelector) Select(ctx context.Context, ports []PortInfo) (PortInfo, error) {
	// Can't show interactive prompts without a terminal
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return PortInfo{}, ErrNotInteractive
	}

	options := make([]huh.Option[string], 0, len(ports)+1)
	for i, p := range ports {
		options = append(options, huh.NewOption(fmt.Sprintf("%d. %s", i+1, p), p.Name))
	}
	options = append(options, huh.NewOption("Quit", quitValue))

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Select serial port (1-%d)", len(ports))).
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return PortInfo{}, ErrAborted
		}
		return PortInfo{}, fmt.Errorf("transport: port prompt: %w", err)
	}

	if selected == quitValue {
		return PortInfo{}, ErrAborted
	}
	for _, p := range ports {
		if p.Name == selected {
			return p, nil
		}
	}
	return PortInfo{}, ErrAborted
}
