// Package serial opens serial ports preconfigured for the
// RN2903/RN2483 module's fixed UART settings.
//
// It is a thin convenience layer over go.bug.st/serial; the driver
// itself only needs an io.ReadWriter and works with any transport.
package serial

import (
	"fmt"
	"time"

	bugst "go.bug.st/serial"

	"github.com/wavetail/go-rn2903/protocol"
)

// DefaultReadTimeout is the initial per-read timeout armed on a freshly
// opened port. The driver rearms the timeout per transaction.
const DefaultReadTimeout = time.Second

// Mode returns the module's factory UART settings: 57600 baud, 8 data
// bits, no parity, 1 stop bit, no flow control.
func Mode() *bugst.Mode {
	return &bugst.Mode{
		BaudRate: protocol.BaudRate,
		DataBits: 8,
		Parity:   bugst.NoParity,
		StopBits: bugst.OneStopBit,
	}
}

// Open opens the named port ("/dev/ttyUSB0", "COM3", ...) with the
// module's settings and a default read timeout. The caller owns the
// port and must close it; the driver never does.
//
// Example:
//
//	port, err := serial.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	txvr, err := rn2903.New(port)
func Open(portName string) (bugst.Port, error) {
	port, err := bugst.Open(portName, Mode())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", portName, err)
	}

	if err := port.SetReadTimeout(DefaultReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", portName, err)
	}

	return port, nil
}
