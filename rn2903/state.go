package rn2903

// deviceState is the driver's optimistic model of the device's mode.
// The true source of truth is the device itself, which cannot be
// queried for these properties mid-flight; the driver tracks them
// locally and only mutates them on a confirmed successful transaction.
// If a response is lost or misclassified the local state can go stale;
// the next gated operation then fails at the device instead of
// locally, which is the accepted cost of skipping a round trip on the
// common path.
type deviceState struct {
	// macPaused is true once "mac pause" has been confirmed and until
	// "mac resume" (or a module reset) is confirmed. The device boots
	// with its network stack running, so the zero value is correct.
	macPaused bool

	// radioInFlight is true while a radio receive or transmit is being
	// serviced. One-transaction-at-a-time is enforced structurally by
	// sequential calls; this flag is a defense-in-depth check that
	// turns caller misuse into a typed error instead of interleaved
	// I/O.
	radioInFlight bool
}

// requireRadioAccess checks that a radio-layer command may be
// dispatched. It performs no I/O: failing here costs nothing on the
// wire.
func (s *deviceState) requireRadioAccess(op string) error {
	if !s.macPaused {
		return &TransceiverBusyError{
			Operation: op,
			Reason:    "network stack is active; call MacPause first",
		}
	}
	if s.radioInFlight {
		return &TransceiverBusyError{
			Operation: op,
			Reason:    "another radio operation is in flight",
		}
	}
	return nil
}

// beginRadioOp gates and marks a receive or transmit in flight.
// The caller must pair it with endRadioOp on every path out.
func (s *deviceState) beginRadioOp(op string) error {
	if err := s.requireRadioAccess(op); err != nil {
		return err
	}
	s.radioInFlight = true
	return nil
}

// endRadioOp clears the in-flight flag, on success and on error alike.
func (s *deviceState) endRadioOp() {
	s.radioInFlight = false
}

// reset restores the boot-time state. Called after a confirmed module
// or factory reset: the rebooted device comes up with its network
// stack active again.
func (s *deviceState) reset() {
	s.macPaused = false
	s.radioInFlight = false
}
