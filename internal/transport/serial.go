// internal/transport/serial.go
package transport

import (
	"errors"
	"io"
	"time"

	"github.com/goburrow/serial"
)

// OpenFunc opens a write handle on a serial device.
type OpenFunc func(name string, baud int, timeout time.Duration) (io.WriteCloser, error)

// OpenSerial opens name as 8N1 at baud. timeout bounds each read/write.
func OpenSerial(name string, baud int, timeout time.Duration) (io.WriteCloser, error) {
	if name == "" {
		return nil, errors.New("serial: port name required")
	}
	return serial.Open(&serial.Config{
		Address:  name,
		BaudRate: baud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  timeout,
	})
}
