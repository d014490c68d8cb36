package rn2903

import (
	"github.com/wavetail/go-rn2903/protocol"
)

// SystemVersion queries the module for its firmware version banner.
//
// Returns a string like "RN2903 1.0.3 Aug  8 2017 15:11:09".
func (t *Transceiver) SystemVersion() (string, error) {
	version, err := t.SystemVersionBytes()
	if err != nil {
		return "", err
	}
	return string(version), nil
}

// SystemVersionBytes queries the module for its firmware version
// banner and returns the raw banner bytes.
func (t *Transceiver) SystemVersionBytes() ([]byte, error) {
	resp, err := t.transact(protocol.BuildSystemVersionCmd(), t.config.ReadTimeout)
	if err != nil {
		return nil, err
	}

	switch resp.Kind {
	case protocol.ResponseValue:
		return resp.Value, nil
	case protocol.ResponseDeviceErr:
		return nil, deviceErr("sys get ver", resp)
	default:
		return nil, &BadResponseError{Operation: "sys get ver", Response: []byte(resp.Token)}
	}
}

// SystemModuleReset resets the module's CPU. The device reboots and
// answers with its version banner, which is returned. After a reset
// the network stack is running again, so any earlier pause is
// forgotten, and the transport may need a moment before the next
// command (the device does not buffer input while booting).
func (t *Transceiver) SystemModuleReset() ([]byte, error) {
	return t.reset("sys reset", protocol.BuildSystemResetCmd())
}

// SystemFactoryReset resets the module and restores every
// configuration parameter, including user NVM, to its factory default.
// Returns the rebooted device's version banner.
func (t *Transceiver) SystemFactoryReset() ([]byte, error) {
	return t.reset("sys factoryRESET", protocol.BuildSystemFactoryResetCmd())
}

// reset issues a reset-family command. Success is the rebooted
// device's banner (or a bare "ok" from firmware variants that answer
// that way); anything else is a bad response.
func (t *Transceiver) reset(op string, cmd []byte) ([]byte, error) {
	resp, err := t.transact(cmd, t.config.ReadTimeout)
	if err != nil {
		return nil, err
	}

	switch resp.Kind {
	case protocol.ResponseValue:
		t.state.reset()
		t.logInfo("module reset", "version", string(resp.Value))
		return resp.Value, nil
	case protocol.ResponseOk:
		t.state.reset()
		return nil, nil
	case protocol.ResponseDeviceErr:
		return nil, deviceErr(op, resp)
	default:
		return nil, &BadResponseError{Operation: op, Response: []byte(resp.Token)}
	}
}

// SystemGetNvm reads one byte from user NVM at the given validated
// address.
func (t *Transceiver) SystemGetNvm(addr protocol.NvmAddress) (byte, error) {
	resp, err := t.transact(protocol.BuildSystemGetNvmCmd(addr), t.config.ReadTimeout)
	if err != nil {
		return 0, err
	}

	switch resp.Kind {
	case protocol.ResponseValue:
		value, err := protocol.ParseNvmByteResponse(resp.Value)
		if err != nil {
			return 0, &BadResponseError{Operation: "sys get nvm", Response: resp.Value}
		}
		return value, nil
	case protocol.ResponseDeviceErr:
		return 0, deviceErr("sys get nvm", resp)
	default:
		return 0, &BadResponseError{Operation: "sys get nvm", Response: []byte(resp.Token)}
	}
}

// SystemSetNvm writes one byte to user NVM at the given validated
// address.
func (t *Transceiver) SystemSetNvm(addr protocol.NvmAddress, value byte) error {
	resp, err := t.transact(protocol.BuildSystemSetNvmCmd(addr, value), t.config.ReadTimeout)
	if err != nil {
		return err
	}
	return t.expectOk("sys set nvm", resp)
}

// SystemSetPinDig drives one of the module's digital pins high or low.
func (t *Transceiver) SystemSetPinDig(pin protocol.Pin, high bool) error {
	cmd, err := protocol.BuildSystemSetPinDigCmd(pin, high)
	if err != nil {
		return err
	}

	resp, err := t.transact(cmd, t.config.ReadTimeout)
	if err != nil {
		return err
	}
	return t.expectOk("sys set pindig", resp)
}

// SystemVoltage measures the module's supply voltage and returns it in
// millivolts.
func (t *Transceiver) SystemVoltage() (int, error) {
	resp, err := t.transact(protocol.BuildSystemGetVddCmd(), t.config.ReadTimeout)
	if err != nil {
		return 0, err
	}

	switch resp.Kind {
	case protocol.ResponseValue:
		mv, err := protocol.ParseVddResponse(resp.Value)
		if err != nil {
			return 0, &BadResponseError{Operation: "sys get vdd", Response: resp.Value}
		}
		return mv, nil
	case protocol.ResponseDeviceErr:
		return 0, deviceErr("sys get vdd", resp)
	default:
		return 0, &BadResponseError{Operation: "sys get vdd", Response: []byte(resp.Token)}
	}
}

// SystemHwEUI reads the module's preprogrammed 8-byte hardware EUI.
func (t *Transceiver) SystemHwEUI() ([]byte, error) {
	resp, err := t.transact(protocol.BuildSystemGetHwEuiCmd(), t.config.ReadTimeout)
	if err != nil {
		return nil, err
	}

	switch resp.Kind {
	case protocol.ResponseValue:
		eui, err := protocol.ParseHwEuiResponse(resp.Value)
		if err != nil {
			return nil, &BadResponseError{Operation: "sys get hweui", Response: resp.Value}
		}
		return eui, nil
	case protocol.ResponseDeviceErr:
		return nil, deviceErr("sys get hweui", resp)
	default:
		return nil, &BadResponseError{Operation: "sys get hweui", Response: []byte(resp.Token)}
	}
}

// expectOk maps a classified response onto success for commands whose
// only valid answer is the literal success token.
func (t *Transceiver) expectOk(op string, resp protocol.Response) error {
	switch resp.Kind {
	case protocol.ResponseOk:
		return nil
	case protocol.ResponseDeviceErr:
		return deviceErr(op, resp)
	default:
		return &BadResponseError{Operation: op, Response: resp.Value}
	}
}
