package protocol

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// ResponseKind tags a classified response line.
type ResponseKind int

const (
	// ResponseOk is the literal success token
	ResponseOk ResponseKind = iota

	// ResponseValue is any non-empty line that is neither the success
	// token nor a known error token; the bytes carry the value payload
	ResponseValue

	// ResponseDeviceErr is a device-reported error from the closed
	// error vocabulary (or an unrecognized error-shaped token)
	ResponseDeviceErr
)

// Response is the classified form of one raw response line.
// It is transient: produced by Classify, consumed immediately by the
// operation that issued the command, never persisted.
type Response struct {
	// Kind tags the response
	Kind ResponseKind

	// Value holds the payload bytes for ResponseValue responses
	Value []byte

	// ErrKind holds the error category for ResponseDeviceErr responses
	ErrKind DeviceErrorKind

	// Token is the raw first token of the line, kept so unrecognized
	// responses surface verbatim instead of being coerced
	Token string
}

// Classify interprets a raw response line (terminator already stripped)
// against the protocol's success/error vocabulary. It is a pure
// function: no I/O, no state.
//
// Classification rules:
//   - the exact success token "ok" classifies as ResponseOk
//   - a line whose first token is in the device error vocabulary
//     classifies as ResponseDeviceErr with the matching kind
//   - a line ending in "_err" or equal to "err" that is not in the
//     vocabulary still classifies as ResponseDeviceErr with
//     KindUnrecognized; error-shaped text is a device response, not a
//     transport failure
//   - any other line classifies as ResponseValue carrying the raw
//     bytes; the issuing operation decides whether a value was
//     expected
func Classify(line []byte) Response {
	token := string(line)
	if i := bytes.IndexByte(line, ' '); i >= 0 {
		token = string(line[:i])
	}

	if token == TokenOk && len(line) == len(TokenOk) {
		return Response{Kind: ResponseOk, Token: token}
	}

	if kind, ok := errorKinds[token]; ok && len(token) == len(line) {
		return Response{Kind: ResponseDeviceErr, ErrKind: kind, Token: token}
	}

	// Error-shaped tokens outside the known vocabulary still classify
	// as device errors with a generic kind.
	if len(token) == len(line) && (token == TokenErr || strings.HasSuffix(token, "_err")) {
		return Response{Kind: ResponseDeviceErr, ErrKind: KindUnrecognized, Token: token}
	}

	return Response{Kind: ResponseValue, Value: line, Token: token}
}

// ParseMacPauseResponse parses the decimal millisecond count answered
// by "mac pause".
func ParseMacPauseResponse(value []byte) (uint32, error) {
	ms, err := strconv.ParseUint(string(value), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid pause duration %q: %w", value, err)
	}
	return uint32(ms), nil
}

// ParseNvmByteResponse parses the hexadecimal byte answered by
// "sys get nvm".
func ParseNvmByteResponse(value []byte) (byte, error) {
	b, err := strconv.ParseUint(string(value), 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid NVM value %q: %w", value, err)
	}
	return byte(b), nil
}

// ParseVddResponse parses the decimal millivolt reading answered by
// "sys get vdd".
func ParseVddResponse(value []byte) (int, error) {
	mv, err := strconv.Atoi(string(value))
	if err != nil {
		return 0, fmt.Errorf("invalid voltage reading %q: %w", value, err)
	}
	return mv, nil
}

// ParseHwEuiResponse parses the 8-byte hexadecimal EUI answered by
// "sys get hweui".
func ParseHwEuiResponse(value []byte) ([]byte, error) {
	eui, err := hex.DecodeString(string(value))
	if err != nil {
		return nil, fmt.Errorf("invalid EUI %q: %w", value, err)
	}
	if len(eui) != 8 {
		return nil, fmt.Errorf("invalid EUI length: got %d bytes, expected 8", len(eui))
	}
	return eui, nil
}

// ParseRadioRxEvent extracts the received payload from a
// "radio_rx  <hexdata>" event line. Returns an error if the line does
// not carry the radio_rx prefix or the payload is not valid
// hexadecimal.
func ParseRadioRxEvent(line []byte) ([]byte, error) {
	rest, ok := bytes.CutPrefix(line, []byte(RadioRxPrefix))
	if !ok {
		return nil, fmt.Errorf("not a radio_rx event: %q", line)
	}
	// The device pads the prefix with two spaces; be lenient and strip
	// any amount of whitespace.
	rest = bytes.TrimLeft(rest, " ")
	payload, err := hex.DecodeString(string(rest))
	if err != nil {
		return nil, fmt.Errorf("invalid radio_rx payload %q: %w", rest, err)
	}
	return payload, nil
}
