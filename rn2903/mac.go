package rn2903

import (
	"time"

	"github.com/wavetail/go-rn2903/protocol"
)

// MacPause suspends the module's LoRaWAN network stack so that direct
// radio commands become legal. Returns the maximum duration the device
// reports the stack can stay paused.
//
// The driver's pause state is only updated on a confirmed successful
// response. A device answer of 0 milliseconds means the stack cannot
// pause right now and maps to *CannotPauseError, as does calling
// MacPause while the driver already holds the stack paused.
func (t *Transceiver) MacPause() (time.Duration, error) {
	if t.state.macPaused {
		return 0, &CannotPauseError{Reason: "network stack is already paused"}
	}

	resp, err := t.transact(protocol.BuildMacPauseCmd(), t.config.ReadTimeout)
	if err != nil {
		return 0, err
	}

	switch resp.Kind {
	case protocol.ResponseValue:
		ms, err := protocol.ParseMacPauseResponse(resp.Value)
		if err != nil {
			return 0, &BadResponseError{Operation: "mac pause", Response: resp.Value}
		}
		if ms == 0 {
			return 0, &CannotPauseError{Reason: "device reports the stack cannot pause now"}
		}
		t.state.macPaused = true
		t.logDebug("network stack paused", "max_ms", ms)
		return time.Duration(ms) * time.Millisecond, nil
	case protocol.ResponseDeviceErr:
		return 0, &CannotPauseError{Reason: deviceErr("mac pause", resp).Error()}
	default:
		return 0, &BadResponseError{Operation: "mac pause", Response: []byte(resp.Token)}
	}
}

// MacResume restarts the network stack after a pause, re-enabling
// MAC-layer functionality and making radio commands illegal again.
func (t *Transceiver) MacResume() error {
	if !t.state.macPaused {
		return &CannotResumeError{Reason: "network stack is not paused"}
	}
	if t.state.radioInFlight {
		return &TransceiverBusyError{
			Operation: "mac resume",
			Reason:    "a radio operation is in flight",
		}
	}

	resp, err := t.transact(protocol.BuildMacResumeCmd(), t.config.ReadTimeout)
	if err != nil {
		return err
	}
	if err := t.expectOk("mac resume", resp); err != nil {
		return err
	}

	t.state.macPaused = false
	t.logDebug("network stack resumed")
	return nil
}

// MacPaused reports whether the driver believes the network stack is
// currently paused. This is the driver's optimistic local state, not a
// device query; it can be stale if a prior response was lost.
func (t *Transceiver) MacPaused() bool {
	return t.state.macPaused
}
