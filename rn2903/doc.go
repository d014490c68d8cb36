// Package rn2903 provides a typed driver for the Microchip
// RN2903/RN2483 LoRa transceiver module's serial command protocol.
//
// # Overview
//
// The driver translates high-level operations into protocol-correct
// command lines, performs one write-then-read transaction per call
// over an injected byte-stream transport, classifies the response
// against the protocol's closed vocabulary, and surfaces typed values
// and typed errors -- never raw bytes.
//
// # Basic Usage
//
//	// User provides the transport (io.ReadWriter); the serial
//	// package opens one with the module's factory settings.
//	port, err := serial.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	txvr, err := rn2903.New(port)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	version, err := txvr.SystemVersion()
//
// # Radio Access
//
// The module boots with its LoRaWAN network stack running, and direct
// radio commands are illegal until the stack is paused. The driver
// tracks this mode locally and rejects radio operations before any
// I/O happens when the stack is active:
//
//	if _, err := txvr.MacPause(); err != nil {
//	    log.Fatal(err)
//	}
//	if err := txvr.RadioSetModulation(protocol.ModulationLoRa); err != nil {
//	    log.Fatal(err)
//	}
//
//	pkt, err := txvr.RadioRx(0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if pkt == nil {
//	    // window closed without data; a normal polling outcome
//	}
//
// The local mode tracking is optimistic: it is updated only on a
// confirmed successful transaction and can go stale if a response is
// lost mid-failure. The protocol offers no query for this property, so
// staleness is an accepted risk rather than something the driver polls
// for.
//
// # Concurrency
//
// The driver is synchronous and blocking, matching the half-duplex
// protocol: the device cannot be asked a second question before
// answering the first. A Transceiver exclusively owns its transport,
// and calls must be strictly sequential. There is no internal locking;
// wrap the Transceiver in a mutex or a single-owner goroutine if
// multiple goroutines need it.
//
// # Error Handling
//
// The package provides structured error types:
//   - WrongDeviceError: the version probe did not match the expected model
//   - BadResponseError: response matched no expected shape for the command
//   - TimeoutError: no terminated response line within the allowed wait
//   - TransceiverBusyError: radio precondition violated, no I/O performed
//   - CannotPauseError / CannotResumeError: pause/resume precondition failed
//   - protocol.DeviceError: the device understood and rejected the command
//
// None of these are retried or swallowed by the driver; retry and
// backoff policy belongs to the caller. A timeout is always a
// transport failure, distinct from protocol-level outcomes such as an
// empty receive window.
//
// After a timeout the transport's buffer state is undefined: a
// late-arriving response to the timed-out command may be read by the
// next transaction unless the transport flushes stale input. Callers
// that keep using a driver after a timeout should expect a possible
// BadResponseError on the following call.
//
// # Hardware Independence
//
// The driver does NOT open, configure, or close the serial link. Any
// io.ReadWriter works as the transport; implementations that also
// provide SetReadTimeout(time.Duration) error (such as go.bug.st/serial
// ports) get precise per-call read timeouts.
package rn2903
