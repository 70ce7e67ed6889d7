// internal/transport/select.go
package transport

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Selector picks one port out of the enumerated candidates.
// Implementations may block (interactive prompt); ports is never empty.
type Selector interface {
	Select(ctx context.Context, ports []PortInfo) (PortInfo, error)
}

// KeywordSelector auto-selects when exactly one port description matches a keyword.
// Any other outcome is delegated to Next; a nil Next makes it an error.
type KeywordSelector struct {
	Keywords []string
	Next     Selector
}

func (k KeywordSelector) Select(ctx context.Context, ports []PortInfo) (PortInfo, error) {
	matches := k.matches(ports)
	if len(matches) == 1 {
		return matches[0], nil
	}
	if k.Next == nil {
		return PortInfo{}, fmt.Errorf(
			"transport: %d of %d ports match the device keywords; choose one with --port or --index",
			len(matches), len(ports),
		)
	}
	return k.Next.Select(ctx, ports)
}

func (k KeywordSelector) Explain(picked PortInfo, ports []PortInfo) string {
	if m := k.matches(ports); len(m) == 1 && m[0].Name == picked.Name {
		return "auto-detected by device keyword"
	}
	return Explain(k.Next, picked, ports)
}

func (k KeywordSelector) matches(ports []PortInfo) []PortInfo {
	var out []PortInfo
	for _, p := range ports {
		if matchesAny(p.Description, k.Keywords) {
			out = append(out, p)
		}
	}
	return out
}

func matchesAny(desc string, keywords []string) bool {
	d := strings.ToLower(desc)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(d, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// NameSelector selects an explicit device. A name missing from the
// enumeration (a by-id symlink, for instance) is still honored.
type NameSelector struct {
	Name string
}

func (n NameSelector) Select(_ context.Context, ports []PortInfo) (PortInfo, error) {
	if n.Name == "" {
		return PortInfo{}, errors.New("transport: empty port name")
	}
	for _, p := range ports {
		if p.Name == n.Name {
			return p, nil
		}
	}
	return PortInfo{Name: n.Name}, nil
}

func (NameSelector) Explain(PortInfo, []PortInfo) string { return "explicit port name" }

// IndexSelector selects by 1-based position in the enumerated list.
type IndexSelector struct {
	Index int
}

func (s IndexSelector) Select(_ context.Context, ports []PortInfo) (PortInfo, error) {
	if s.Index < 1 || s.Index > len(ports) {
		return PortInfo{}, fmt.Errorf("transport: port index %d out of range (1-%d)", s.Index, len(ports))
	}
	return ports[s.Index-1], nil
}

func (s IndexSelector) Explain(PortInfo, []PortInfo) string {
	return fmt.Sprintf("port index %d", s.Index)
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func(ctx context.Context, ports []PortInfo) (PortInfo, error)

func (f SelectorFunc) Select(ctx context.Context, ports []PortInfo) (PortInfo, error) {
	return f(ctx, ports)
}

// Explainer is implemented by selectors that can say how a port was picked.
type Explainer interface {
	Explain(picked PortInfo, ports []PortInfo) string
}

// Explain describes how sel arrived at picked, for the connect log.
func Explain(sel Selector, picked PortInfo, ports []PortInfo) string {
	if e, ok := sel.(Explainer); ok {
		return e.Explain(picked, ports)
	}
	return "selected"
}
