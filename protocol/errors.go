package protocol

import "fmt"

// DeviceErrorKind is the closed set of error categories the device
// reports. Unknown error-shaped responses map to KindUnrecognized
// rather than failing classification.
type DeviceErrorKind int

const (
	// KindUnrecognized covers error tokens outside the known vocabulary
	KindUnrecognized DeviceErrorKind = iota

	// KindInvalidParam maps to "invalid_param"
	KindInvalidParam

	// KindBusy maps to "busy"
	KindBusy

	// KindErr maps to the generic "err" token
	KindErr

	// KindRadioErr maps to "radio_err"
	KindRadioErr

	// KindNotJoined maps to "not_joined"
	KindNotJoined

	// KindKeysNotInit maps to "keys_not_init"
	KindKeysNotInit

	// KindNoFreeCh maps to "no_free_ch"
	KindNoFreeCh

	// KindSilent maps to "silent"
	KindSilent

	// KindRejoinNeeded maps to "frame_counter_err_rejoin_needed"
	KindRejoinNeeded

	// KindMacPaused maps to "mac_paused"
	KindMacPaused

	// KindMacErr maps to "mac_err"
	KindMacErr

	// KindInvalidDataLen maps to "invalid_data_len"
	KindInvalidDataLen
)

// errorKinds maps wire tokens onto their kinds. Classification does a
// single exact-match lookup here; anything error-shaped but absent from
// this table becomes KindUnrecognized.
var errorKinds = map[string]DeviceErrorKind{
	TokenInvalidParam:   KindInvalidParam,
	TokenBusy:           KindBusy,
	TokenErr:            KindErr,
	TokenRadioErr:       KindRadioErr,
	TokenNotJoined:      KindNotJoined,
	TokenKeysNotInit:    KindKeysNotInit,
	TokenNoFreeCh:       KindNoFreeCh,
	TokenSilent:         KindSilent,
	TokenRejoinNeeded:   KindRejoinNeeded,
	TokenMacPaused:      KindMacPaused,
	TokenMacErr:         KindMacErr,
	TokenInvalidDataLen: KindInvalidDataLen,
}

// DeviceError represents a command the device understood and rejected.
// Contains the error category parsed from the response token.
type DeviceError struct {
	// Operation is the command that failed
	Operation string

	// Kind is the error category reported by the device
	Kind DeviceErrorKind

	// Token is the raw response token, kept for KindUnrecognized
	Token string
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Operation, getKindName(e.Kind, e.Token))
}

// IsDeviceError returns true if the error is a DeviceError.
func IsDeviceError(err error) bool {
	_, ok := err.(*DeviceError)
	return ok
}

// getKindName returns a human-readable name for an error kind.
func getKindName(kind DeviceErrorKind, token string) string {
	switch kind {
	case KindInvalidParam:
		return "invalid parameter"
	case KindBusy:
		return "device busy"
	case KindErr:
		return "command error"
	case KindRadioErr:
		return "radio error"
	case KindNotJoined:
		return "network not joined"
	case KindKeysNotInit:
		return "keys not initialized"
	case KindNoFreeCh:
		return "no free channel"
	case KindSilent:
		return "device is silent"
	case KindRejoinNeeded:
		return "frame counter rolled over, rejoin needed"
	case KindMacPaused:
		return "network stack is paused"
	case KindMacErr:
		return "MAC transmission error"
	case KindInvalidDataLen:
		return "invalid data length"
	default:
		return fmt.Sprintf("unrecognized device error %q", token)
	}
}

// InvalidAddressError indicates an NVM address outside the user range.
type InvalidAddressError struct {
	Address uint16
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("NVM address 0x%X is out of range: valid range is 0x%X-0x%X",
		e.Address, NvmAddressMin, NvmAddressMax)
}
