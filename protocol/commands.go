package protocol

import (
	"encoding/hex"
	"fmt"
)

// terminate appends the CRLF terminator to a formatted command body and
// returns the complete wire-ready command. Commands are built fresh on
// every call and never mutated afterwards.
func terminate(body string) []byte {
	cmd := make([]byte, 0, len(body)+len(Terminator))
	cmd = append(cmd, body...)
	cmd = append(cmd, Terminator...)
	return cmd
}

// BuildSystemVersionCmd constructs the firmware version query.
//
// Command format:
//
//	sys get ver
//
// The device answers with its version banner, e.g.
// "RN2903 1.0.3 Aug  8 2017 15:11:09".
func BuildSystemVersionCmd() []byte {
	return terminate("sys get ver")
}

// BuildSystemResetCmd constructs the module reset command.
//
// Command format:
//
//	sys reset
//
// The device reboots and answers with its version banner.
func BuildSystemResetCmd() []byte {
	return terminate("sys reset")
}

// BuildSystemFactoryResetCmd constructs the factory reset command.
// All configuration parameters, including user NVM, revert to factory
// defaults.
//
// Command format:
//
//	sys factoryRESET
func BuildSystemFactoryResetCmd() []byte {
	return terminate("sys factoryRESET")
}

// BuildSystemGetNvmCmd constructs a user NVM read command.
// The address is encoded as lowercase hexadecimal per the device's
// convention.
//
// Command format:
//
//	sys get nvm <address>
func BuildSystemGetNvmCmd(addr NvmAddress) []byte {
	return terminate(fmt.Sprintf("sys get nvm %s", addr))
}

// BuildSystemSetNvmCmd constructs a user NVM write command.
// Both the address and the value are encoded as lowercase hexadecimal.
//
// Command format:
//
//	sys set nvm <address> <value>
func BuildSystemSetNvmCmd(addr NvmAddress, value byte) []byte {
	return terminate(fmt.Sprintf("sys set nvm %s %x", addr, value))
}

// BuildSystemSetPinDigCmd constructs a digital pin control command.
// Returns an error if the pin name is not one the device defines.
//
// Command format:
//
//	sys set pindig <pin> <0|1>
func BuildSystemSetPinDigCmd(pin Pin, high bool) ([]byte, error) {
	if !pin.Valid() {
		return nil, fmt.Errorf("unknown pin %q", string(pin))
	}
	level := 0
	if high {
		level = 1
	}
	return terminate(fmt.Sprintf("sys set pindig %s %d", pin, level)), nil
}

// BuildSystemGetVddCmd constructs the supply voltage query.
//
// Command format:
//
//	sys get vdd
//
// The device answers with a decimal value in millivolts.
func BuildSystemGetVddCmd() []byte {
	return terminate("sys get vdd")
}

// BuildSystemGetHwEuiCmd constructs the hardware EUI query.
//
// Command format:
//
//	sys get hweui
//
// The device answers with its preprogrammed 8-byte EUI in hexadecimal.
func BuildSystemGetHwEuiCmd() []byte {
	return terminate("sys get hweui")
}

// BuildMacPauseCmd constructs the network stack pause command.
//
// Command format:
//
//	mac pause
//
// The device answers with the number of milliseconds the stack can stay
// paused, in decimal. A response of 0 means the stack cannot pause.
func BuildMacPauseCmd() []byte {
	return terminate("mac pause")
}

// BuildMacResumeCmd constructs the network stack resume command.
//
// Command format:
//
//	mac resume
func BuildMacResumeCmd() []byte {
	return terminate("mac resume")
}

// BuildRadioSetModCmd constructs the modulation selection command.
// Returns an error if the mode is not a defined ModulationMode.
//
// Command format:
//
//	radio set mod <lora|fsk>
func BuildRadioSetModCmd(mode ModulationMode) ([]byte, error) {
	token, ok := modulationTokens[mode]
	if !ok {
		return nil, fmt.Errorf("unknown modulation mode %d", int(mode))
	}
	return terminate(fmt.Sprintf("radio set mod %s", token)), nil
}

// BuildRadioGetModCmd constructs the current modulation query.
//
// Command format:
//
//	radio get mod
func BuildRadioGetModCmd() []byte {
	return terminate("radio get mod")
}

// BuildRadioRxCmd constructs a radio receive command. The window size
// is the number of modulation symbols (LoRa) or milliseconds (FSK) to
// keep the receiver open; 0 means receive continuously until a packet
// arrives or the radio watchdog fires.
//
// Command format:
//
//	radio rx <window>
//
// The device answers "ok" immediately, then a second line when the
// window resolves: "radio_rx  <hexdata>" or "radio_err".
func BuildRadioRxCmd(window uint16) []byte {
	return terminate(fmt.Sprintf("radio rx %d", window))
}

// BuildRadioTxCmd constructs a radio transmit command. The payload is
// encoded as lowercase hexadecimal and must be between 1 and
// MaxRadioPayloadSize bytes.
//
// Command format:
//
//	radio tx <hexdata>
//
// The device answers "ok" immediately, then "radio_tx_ok" or
// "radio_err" once the transmission completes.
func BuildRadioTxCmd(payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("payload cannot be empty")
	}
	if len(payload) > MaxRadioPayloadSize {
		return nil, fmt.Errorf("payload length %d exceeds maximum %d bytes",
			len(payload), MaxRadioPayloadSize)
	}
	return terminate(fmt.Sprintf("radio tx %s", hex.EncodeToString(payload))), nil
}
