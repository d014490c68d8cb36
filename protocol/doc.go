// Package protocol implements the wire level of the RN2903 serial
// command protocol.
//
// This package provides functions to build command lines and classify
// response lines per Microchip document 40001811 (RN2903 LoRa
// Technology Module Command Reference).
//
// # Protocol Overview
//
// The module speaks a line-oriented ASCII protocol over UART:
//
//	Command:  <token> [<token> ...]\r\n
//	Response: ok | <error_token> | <value>\r\n
//
// Numeric parameters are lowercase hexadecimal where the device's
// convention demands it (NVM addresses and values, radio payloads) and
// decimal otherwise (receive windows, pin levels).
//
// # Command Builders
//
// Use the Build* functions to create terminated command lines:
//
//	cmd := protocol.BuildMacPauseCmd()
//	cmd, err := protocol.BuildRadioTxCmd(payload)
//	// ... etc
//
// # Response Classification
//
// Use Classify to interpret a raw response line (with the terminator
// already stripped) against the closed success/error vocabulary:
//
//	resp := protocol.Classify(line)
//	switch resp.Kind {
//	case protocol.ResponseOk:
//	    // command accepted
//	case protocol.ResponseValue:
//	    // resp.Value carries the payload
//	case protocol.ResponseDeviceErr:
//	    // resp.ErrKind carries the device's error category
//	}
//
// Then use the Parse* functions for command-specific value payloads:
//
//	ms, err := protocol.ParseMacPauseResponse(resp.Value)
//	b, err := protocol.ParseNvmByteResponse(resp.Value)
//	// ... etc
//
// # Error Handling
//
// Device-reported errors use the DeviceError type:
//
//	err := &protocol.DeviceError{
//	    Operation: "radio tx",
//	    Kind:      resp.ErrKind,
//	    Token:     resp.Token,
//	}
//	// err.Error() returns: "radio tx failed: device busy"
//
// Classification never fails: unknown error-shaped tokens classify as
// device errors with KindUnrecognized, and anything else non-empty is
// preserved verbatim as a value.
package protocol
