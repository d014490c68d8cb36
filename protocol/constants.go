package protocol

// Line termination for both directions of the serial protocol.
// Every command and every response is a single CRLF-terminated ASCII line.
const (
	// CR is the carriage return byte (0x0D)
	CR = '\r'

	// LF is the line feed byte (0x0A)
	LF = '\n'
)

// Terminator is the two-byte line terminator appended to every command.
var Terminator = []byte{CR, LF}

// BaudRate is the fixed UART speed of the module per Microchip document
// 40001811 revision B (8 data bits, no parity, 1 stop bit, no flow control).
const BaudRate = 57600

// Success and confirmation tokens.
const (
	// TokenOk is the literal success response
	TokenOk = "ok"

	// TokenRadioTxOk confirms a completed radio transmission
	// (second-phase response to "radio tx")
	TokenRadioTxOk = "radio_tx_ok"

	// TokenMacTxOk confirms a completed MAC-layer transmission
	TokenMacTxOk = "mac_tx_ok"

	// RadioRxPrefix starts the asynchronous line carrying a received
	// radio payload: "radio_rx  <hexdata>"
	RadioRxPrefix = "radio_rx"
)

// Device error tokens per the RN2903 command reference.
// These are responses the device produces when it understood and
// rejected a command; they are never transport errors.
const (
	// TokenInvalidParam indicates a malformed or out-of-range parameter
	TokenInvalidParam = "invalid_param"

	// TokenBusy indicates the device cannot service the command now
	TokenBusy = "busy"

	// TokenErr is the generic failure token used by a few commands
	TokenErr = "err"

	// TokenRadioErr reports a failed radio operation; for "radio rx"
	// it means the receive window closed without data
	TokenRadioErr = "radio_err"

	// TokenNotJoined indicates the network stack has not joined a network
	TokenNotJoined = "not_joined"

	// TokenKeysNotInit indicates the LoRaWAN keys were never configured
	TokenKeysNotInit = "keys_not_init"

	// TokenNoFreeCh indicates all channels are currently busy
	TokenNoFreeCh = "no_free_ch"

	// TokenSilent indicates the device is in silent-immediately state
	TokenSilent = "silent"

	// TokenRejoinNeeded indicates the frame counter rolled over
	TokenRejoinNeeded = "frame_counter_err_rejoin_needed"

	// TokenMacPaused indicates the network stack is paused
	TokenMacPaused = "mac_paused"

	// TokenMacErr reports a failed MAC-layer transmission
	TokenMacErr = "mac_err"

	// TokenInvalidDataLen indicates the payload length is not valid
	// for the current data rate
	TokenInvalidDataLen = "invalid_data_len"
)

// User NVM address range per the RN2903 command reference.
const (
	// NvmAddressMin is the first user-accessible NVM address
	NvmAddressMin = 0x300

	// NvmAddressMax is the last user-accessible NVM address (inclusive)
	NvmAddressMax = 0x3FF
)

// MaxRadioPayloadSize is the largest payload, in bytes, accepted by
// "radio tx" in LoRa modulation.
const MaxRadioPayloadSize = 255

// MaxRxWindowSize is the largest "radio rx" window argument. A window of 0
// keeps the receiver open until a packet arrives or the watchdog fires.
const MaxRxWindowSize = 65535

// MaxResponseLength bounds a single response line. The longest defined
// response is a received radio payload: prefix, two spaces and up to
// MaxRadioPayloadSize hex-encoded bytes.
const MaxResponseLength = len(RadioRxPrefix) + 2 + 2*MaxRadioPayloadSize
