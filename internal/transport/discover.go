// internal/transport/discover.go
package transport

import (
	"fmt"
	"sort"

	"go.bug.st/serial/enumerator"
)

// Enumerator lists the serial ports currently present.
type Enumerator interface {
	Ports() ([]PortInfo, error)
}

// SystemEnumerator enumerates host ports with USB product details.
type SystemEnumerator struct{}

func (SystemEnumerator) Ports() ([]PortInfo, error) {
	list, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}

	out := make([]PortInfo, 0, len(list))
	for _, d := range list {
		if d == nil {
			continue
		}
		p := PortInfo{
			Name:        d.Name,
			Description: d.Product,
			IsUSB:       d.IsUSB,
			VID:         d.VID,
			PID:         d.PID,
		}
		if d.IsUSB {
			tag := fmt.Sprintf("USB %s:%s", d.VID, d.PID)
			if p.Description == "" {
				p.Description = tag
			} else {
				p.Description += " (" + tag + ")"
			}
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Discover enumerates ports; an empty list is ErrNoPorts.
func Discover(e Enumerator) ([]PortInfo, error) {
	ports, err := e.Ports()
	if err != nil {
		return nil, &LinkError{Op: "discover", Err: err}
	}
	if len(ports) == 0 {
		return nil, ErrNoPorts
	}
	return ports, nil
}
