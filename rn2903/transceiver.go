package rn2903

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/wavetail/go-rn2903/protocol"
)

// readTimeoutSetter is implemented by transports that support a
// per-read timeout, such as go.bug.st/serial ports. When the transport
// implements it, the engine arms it before every read; reads that
// return zero bytes with no error are then treated as timeouts.
type readTimeoutSetter interface {
	SetReadTimeout(time.Duration) error
}

// Transceiver is a typed driver for one RN2903 module over an
// already-open byte-stream transport.
//
// A Transceiver exclusively owns its transport: the transport must not
// be shared with another Transceiver or accessed concurrently. Calls
// are strictly sequential; the half-duplex protocol cannot accept a
// second command before answering the first, and the driver implements
// no internal locking or queueing. Callers needing multi-goroutine
// access must serialize calls themselves.
type Transceiver struct {
	device io.ReadWriter
	config Config
	state  deviceState
}

// New creates a Transceiver over the given transport and verifies that
// the connected device really is the expected module by checking its
// version banner. The transport must be open and configured for the
// module's serial settings (see the serial package).
//
// Example:
//
//	port, err := serial.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	txvr, err := rn2903.New(port, rn2903.WithReadTimeout(time.Second))
func New(device io.ReadWriter, opts ...Option) (*Transceiver, error) {
	if device == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Transceiver{
		device: device,
		config: cfg,
	}

	version, err := t.SystemVersion()
	if err != nil {
		return nil, fmt.Errorf("probe device: %w", err)
	}
	if !strings.HasPrefix(version, cfg.Model) {
		return nil, &WrongDeviceError{Version: version}
	}

	t.logDebug("connected", "version", version)
	return t, nil
}

// Transact performs one command/response round trip with the default
// read timeout: one write of the full terminated command, one read of a
// single terminated response line, classification of that line. It
// never retries and never writes twice.
//
// The command must be a complete terminated line as produced by the
// protocol package's Build* functions. Most callers want the typed
// methods instead; Transact is the escape hatch for commands the typed
// surface does not cover (e.g. "sys sleep").
func (t *Transceiver) Transact(cmd []byte) (protocol.Response, error) {
	return t.transact(cmd, t.config.ReadTimeout)
}

// TransactWithTimeout is Transact with an explicit maximum wait for
// the response line.
func (t *Transceiver) TransactWithTimeout(cmd []byte, timeout time.Duration) (protocol.Response, error) {
	return t.transact(cmd, timeout)
}

// transact is the transaction engine. Exactly one transaction may be
// in flight per Transceiver; enforcement is structural (sequential
// calls), not locked.
func (t *Transceiver) transact(cmd []byte, timeout time.Duration) (protocol.Response, error) {
	if _, err := t.device.Write(cmd); err != nil {
		return protocol.Response{}, fmt.Errorf("write command: %w", err)
	}

	if t.config.CommandDelay > 0 {
		time.Sleep(t.config.CommandDelay)
	}

	line, err := t.readLine(timeout)
	if err != nil {
		return protocol.Response{}, err
	}

	resp := protocol.Classify(line)
	t.logDebug("transaction",
		"command", strings.TrimRight(string(cmd), "\r\n"),
		"response", string(line),
	)
	return resp, nil
}

// readLine reads one terminated response line from the transport,
// stripping the terminator. On timeout it abandons the read and
// returns *TimeoutError; the transport's buffer state after a timeout
// is undefined unless the transport flushes stale input itself (a
// late-arriving response can corrupt the next transaction's read --
// see the package documentation).
func (t *Transceiver) readLine(timeout time.Duration) ([]byte, error) {
	if s, ok := t.device.(readTimeoutSetter); ok {
		if err := s.SetReadTimeout(timeout); err != nil {
			return nil, fmt.Errorf("set read timeout: %w", err)
		}
	}

	deadline := time.Now().Add(timeout)
	line := make([]byte, 0, 64)
	var buf [1]byte
	for {
		n, err := t.device.Read(buf[:])
		if err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}
		if n == 0 {
			// Zero bytes without error is how serial transports
			// report an expired read timeout.
			return nil, &TimeoutError{Timeout: timeout}
		}
		if buf[0] == protocol.LF {
			return bytes.TrimSuffix(line, []byte{protocol.CR}), nil
		}
		line = append(line, buf[0])
		if len(line) > protocol.MaxResponseLength {
			return nil, &BadResponseError{
				Operation: "read line",
				Response:  line,
			}
		}
		if time.Now().After(deadline) {
			return nil, &TimeoutError{Timeout: timeout}
		}
	}
}

// deviceErr builds the typed error for a device-rejected command.
func deviceErr(op string, resp protocol.Response) error {
	return &protocol.DeviceError{
		Operation: op,
		Kind:      resp.ErrKind,
		Token:     resp.Token,
	}
}
