package rn2903

import (
	"bytes"

	"github.com/wavetail/go-rn2903/protocol"
)

// Packet is one received radio payload. This layer imposes no further
// structure on it.
type Packet []byte

// RadioSetModulation selects the radio's modulation scheme. Legal only
// while the network stack is paused; attempting it earlier fails
// locally with *TransceiverBusyError, without touching the transport.
func (t *Transceiver) RadioSetModulation(mode protocol.ModulationMode) error {
	if err := t.state.requireRadioAccess("radio set mod"); err != nil {
		return err
	}

	cmd, err := protocol.BuildRadioSetModCmd(mode)
	if err != nil {
		return err
	}

	resp, err := t.transact(cmd, t.config.ReadTimeout)
	if err != nil {
		return err
	}
	return t.expectOk("radio set mod", resp)
}

// RadioGetModulation queries the radio's current modulation scheme.
func (t *Transceiver) RadioGetModulation() (protocol.ModulationMode, error) {
	resp, err := t.transact(protocol.BuildRadioGetModCmd(), t.config.ReadTimeout)
	if err != nil {
		return 0, err
	}

	switch resp.Kind {
	case protocol.ResponseValue:
		mode, err := protocol.ParseModulationMode(string(resp.Value))
		if err != nil {
			return 0, &BadResponseError{Operation: "radio get mod", Response: resp.Value}
		}
		return mode, nil
	case protocol.ResponseDeviceErr:
		return 0, deviceErr("radio get mod", resp)
	default:
		return 0, &BadResponseError{Operation: "radio get mod", Response: []byte(resp.Token)}
	}
}

// RadioRx opens a receive window and waits for one packet. The window
// argument is the number of modulation symbols (LoRa) or milliseconds
// (FSK) to keep the receiver open; 0 receives continuously until a
// packet arrives or the radio watchdog fires.
//
// A window that closes without data is a normal outcome, not an error:
// RadioRx returns (nil, nil) and callers polling for traffic must
// treat a nil packet as "received nothing". A timeout waiting for the
// device is different and surfaces as *TimeoutError.
//
// Legal only while the network stack is paused.
func (t *Transceiver) RadioRx(window uint16) (Packet, error) {
	if err := t.state.beginRadioOp("radio rx"); err != nil {
		return nil, err
	}
	defer t.state.endRadioOp()

	resp, err := t.transact(protocol.BuildRadioRxCmd(window), t.config.ReadTimeout)
	if err != nil {
		return nil, err
	}

	switch resp.Kind {
	case protocol.ResponseOk:
		// Receiver is open; the result arrives as a second line.
	case protocol.ResponseDeviceErr:
		if resp.ErrKind == protocol.KindRadioErr {
			// Window already resolved empty.
			return nil, nil
		}
		return nil, deviceErr("radio rx", resp)
	default:
		return nil, &BadResponseError{Operation: "radio rx", Response: resp.Value}
	}

	line, err := t.readLine(t.config.WindowTimeout)
	if err != nil {
		return nil, err
	}

	event := protocol.Classify(line)
	switch {
	case event.Kind == protocol.ResponseDeviceErr && event.ErrKind == protocol.KindRadioErr:
		// No data before the window closed.
		return nil, nil
	case event.Kind == protocol.ResponseValue && event.Token == protocol.RadioRxPrefix:
		payload, err := protocol.ParseRadioRxEvent(line)
		if err != nil {
			return nil, &BadResponseError{Operation: "radio rx", Response: line}
		}
		t.logDebug("packet received", "bytes", len(payload))
		return Packet(payload), nil
	default:
		return nil, &BadResponseError{Operation: "radio rx", Response: line}
	}
}

// RadioTx transmits one packet of up to protocol.MaxRadioPayloadSize
// bytes and waits for the transmit confirmation. Legal only while the
// network stack is paused.
func (t *Transceiver) RadioTx(payload []byte) error {
	cmd, err := protocol.BuildRadioTxCmd(payload)
	if err != nil {
		return err
	}

	if err := t.state.beginRadioOp("radio tx"); err != nil {
		return err
	}
	defer t.state.endRadioOp()

	resp, err := t.transact(cmd, t.config.ReadTimeout)
	if err != nil {
		return err
	}

	switch resp.Kind {
	case protocol.ResponseOk:
		// Transmission started; the confirmation arrives as a second line.
	case protocol.ResponseDeviceErr:
		return deviceErr("radio tx", resp)
	default:
		return &BadResponseError{Operation: "radio tx", Response: resp.Value}
	}

	line, err := t.readLine(t.config.WindowTimeout)
	if err != nil {
		return err
	}

	event := protocol.Classify(line)
	switch {
	case event.Kind == protocol.ResponseValue && bytes.Equal(line, []byte(protocol.TokenRadioTxOk)):
		t.logDebug("packet transmitted", "bytes", len(payload))
		return nil
	case event.Kind == protocol.ResponseDeviceErr:
		return deviceErr("radio tx", event)
	default:
		return &BadResponseError{Operation: "radio tx", Response: line}
	}
}
