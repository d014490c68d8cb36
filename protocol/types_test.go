package protocol

import (
	"errors"
	"testing"
)

func TestNewNvmAddress(t *testing.T) {
	// Every address inside the user range constructs.
	for addr := uint16(NvmAddressMin); addr <= NvmAddressMax; addr++ {
		a, err := NewNvmAddress(addr)
		if err != nil {
			t.Fatalf("NewNvmAddress(0x%X) failed: %v", addr, err)
		}
		if uint16(a) != addr {
			t.Fatalf("NewNvmAddress(0x%X) = 0x%X", addr, uint16(a))
		}
	}

	// Addresses outside the range fail with InvalidAddressError.
	for _, addr := range []uint16{0, 1, NvmAddressMin - 1, NvmAddressMax + 1, 0xFFFF} {
		_, err := NewNvmAddress(addr)
		if err == nil {
			t.Fatalf("NewNvmAddress(0x%X) succeeded, want error", addr)
		}

		var addrErr *InvalidAddressError
		if !errors.As(err, &addrErr) {
			t.Fatalf("NewNvmAddress(0x%X) error = %T, want *InvalidAddressError", addr, err)
		}
		if addrErr.Address != addr {
			t.Errorf("error address = 0x%X, want 0x%X", addrErr.Address, addr)
		}
	}
}

func TestNvmAddressString(t *testing.T) {
	tests := []struct {
		addr uint16
		want string
	}{
		{0x300, "300"},
		{0x3AB, "3ab"},
		{0x3FF, "3ff"},
	}

	for _, tt := range tests {
		a, err := NewNvmAddress(tt.addr)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := a.String(); got != tt.want {
			t.Errorf("NvmAddress(0x%X).String() = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestModulationModeRoundTrip(t *testing.T) {
	for _, mode := range []ModulationMode{ModulationLoRa, ModulationFSK} {
		parsed, err := ParseModulationMode(mode.String())
		if err != nil {
			t.Fatalf("ParseModulationMode(%q) failed: %v", mode, err)
		}
		if parsed != mode {
			t.Errorf("round trip of %q = %q", mode, parsed)
		}
	}

	if _, err := ParseModulationMode("gfsk"); err == nil {
		t.Error("expected error for unknown mode token, got nil")
	}
}

func TestPinValid(t *testing.T) {
	for _, pin := range []Pin{PinGPIO0, PinGPIO13, PinUARTCTS, PinUARTRTS, PinTest0, PinTest1} {
		if !pin.Valid() {
			t.Errorf("%s should be valid", pin)
		}
	}

	for _, pin := range []Pin{"", "GPIO14", "gpio10", "LED"} {
		if pin.Valid() {
			t.Errorf("%s should not be valid", pin)
		}
	}
}
