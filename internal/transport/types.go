// internal/transport/types.go
package transport

import "fmt"

// LinkState is the serial link status owned by Transport.
type LinkState int

const (
	Disconnected LinkState = iota
	Connected
)

func (s LinkState) String() string {
	if s == Connected {
		return "connected"
	}
	return "disconnected"
}

// PortInfo is one enumerated serial port.
type PortInfo struct {
	Name        string // device path or COM name
	Description string // product string, with a USB tag when applicable
	IsUSB       bool
	VID         string
	PID         string
}

func (p PortInfo) String() string {
	if p.Description == "" {
		return p.Name
	}
	return p.Name + " - " + p.Description
}

// ---- error codes ----

// Codes are exported through the link status block (slot 1).
const (
	CodeWrite     uint16 = 1
	CodeOpen      uint16 = 2
	CodeNoPorts   uint16 = 3
	CodeAborted   uint16 = 4
	CodeReconnect uint16 = 5
)

type codedError struct {
	msg  string
	code uint16
}

func (e *codedError) Error() string { return e.msg }
func (e *codedError) Code() uint16  { return e.code }

var (
	// ErrNoPorts means discovery found nothing: there is no data path.
	ErrNoPorts error = &codedError{"transport: no serial ports found", CodeNoPorts}

	// ErrAborted means the operator quit the port selection.
	ErrAborted error = &codedError{"transport: port selection aborted", CodeAborted}

	// ErrNotConnected is returned by Send while the link is down.
	ErrNotConnected error = &codedError{"transport: not connected", CodeWrite}

	// ErrReconnectFailed wraps the last failure of a reconnect sequence.
	ErrReconnectFailed error = &codedError{"transport: reconnect failed", CodeReconnect}

	// ErrNotInteractive means a prompt was required but stdin is not a terminal.
	ErrNotInteractive error = &codedError{"transport: port selection requires a terminal (use --port or --index)", CodeAborted}
)

// LinkError is a failure of one link operation on a given port.
type LinkError struct {
	Op   string // discover, open, settle, write
	Port string
	Err  error
}

func (e *LinkError) Error() string {
	if e.Port == "" {
		return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("transport: %s %s: %v", e.Op, e.Port, e.Err)
}

func (e *LinkError) Unwrap() error { return e.Err }

func (e *LinkError) Code() uint16 {
	switch e.Op {
	case "open", "settle":
		return CodeOpen
	case "discover":
		return CodeNoPorts
	default:
		return CodeWrite
	}
}
