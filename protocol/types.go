package protocol

import "fmt"

// NvmAddress is a validated address into the module's user NVM region.
// Construct one with NewNvmAddress; a value built any other way may be
// outside the range the device accepts.
type NvmAddress uint16

// NewNvmAddress validates addr against the user NVM range and returns
// it as an NvmAddress. Addresses outside NvmAddressMin..NvmAddressMax
// fail with *InvalidAddressError.
func NewNvmAddress(addr uint16) (NvmAddress, error) {
	if addr < NvmAddressMin || addr > NvmAddressMax {
		return 0, &InvalidAddressError{Address: addr}
	}
	return NvmAddress(addr), nil
}

// String formats the address the way the device expects it on the wire:
// lowercase hexadecimal, no prefix.
func (a NvmAddress) String() string {
	return fmt.Sprintf("%x", uint16(a))
}

// ModulationMode is one of the radio modulation schemes supported by
// the module.
type ModulationMode int

const (
	// ModulationLoRa selects LoRa modulation
	ModulationLoRa ModulationMode = iota

	// ModulationFSK selects FSK modulation
	ModulationFSK
)

// modulationTokens maps each mode to its wire token.
var modulationTokens = map[ModulationMode]string{
	ModulationLoRa: "lora",
	ModulationFSK:  "fsk",
}

// String returns the wire token for the mode, or a descriptive
// placeholder for an unknown value.
func (m ModulationMode) String() string {
	if token, ok := modulationTokens[m]; ok {
		return token
	}
	return fmt.Sprintf("unknown modulation mode %d", int(m))
}

// ParseModulationMode interprets a mode token as reported by
// "radio get mod".
func ParseModulationMode(token string) (ModulationMode, error) {
	for mode, t := range modulationTokens {
		if t == token {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown modulation mode %q", token)
}

// Pin names a digital pin controllable through "sys set pindig".
type Pin string

// Pins defined by the RN2903 command reference.
const (
	PinGPIO0   Pin = "GPIO0"
	PinGPIO1   Pin = "GPIO1"
	PinGPIO2   Pin = "GPIO2"
	PinGPIO3   Pin = "GPIO3"
	PinGPIO4   Pin = "GPIO4"
	PinGPIO5   Pin = "GPIO5"
	PinGPIO6   Pin = "GPIO6"
	PinGPIO7   Pin = "GPIO7"
	PinGPIO8   Pin = "GPIO8"
	PinGPIO9   Pin = "GPIO9"
	PinGPIO10  Pin = "GPIO10"
	PinGPIO11  Pin = "GPIO11"
	PinGPIO12  Pin = "GPIO12"
	PinGPIO13  Pin = "GPIO13"
	PinUARTCTS Pin = "UART_CTS"
	PinUARTRTS Pin = "UART_RTS"
	PinTest0   Pin = "TEST0"
	PinTest1   Pin = "TEST1"
)

var validPins = map[Pin]bool{
	PinGPIO0: true, PinGPIO1: true, PinGPIO2: true, PinGPIO3: true,
	PinGPIO4: true, PinGPIO5: true, PinGPIO6: true, PinGPIO7: true,
	PinGPIO8: true, PinGPIO9: true, PinGPIO10: true, PinGPIO11: true,
	PinGPIO12: true, PinGPIO13: true,
	PinUARTCTS: true, PinUARTRTS: true, PinTest0: true, PinTest1: true,
}

// Valid reports whether the pin name is one the device defines.
func (p Pin) Valid() bool {
	return validPins[p]
}
