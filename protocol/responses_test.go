package protocol

import (
	"bytes"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantKind ResponseKind
		wantErr  DeviceErrorKind
	}{
		{
			name:     "success token",
			line:     "ok",
			wantKind: ResponseOk,
		},
		{
			name:     "invalid parameter",
			line:     "invalid_param",
			wantKind: ResponseDeviceErr,
			wantErr:  KindInvalidParam,
		},
		{
			name:     "busy",
			line:     "busy",
			wantKind: ResponseDeviceErr,
			wantErr:  KindBusy,
		},
		{
			name:     "radio error",
			line:     "radio_err",
			wantKind: ResponseDeviceErr,
			wantErr:  KindRadioErr,
		},
		{
			name:     "not joined",
			line:     "not_joined",
			wantKind: ResponseDeviceErr,
			wantErr:  KindNotJoined,
		},
		{
			name:     "frame counter rollover",
			line:     "frame_counter_err_rejoin_needed",
			wantKind: ResponseDeviceErr,
			wantErr:  KindRejoinNeeded,
		},
		{
			name:     "unknown error-shaped token",
			line:     "flux_capacitor_err",
			wantKind: ResponseDeviceErr,
			wantErr:  KindUnrecognized,
		},
		{
			name:     "version banner is a value",
			line:     "RN2903 1.0.3 Aug  8 2017 15:11:09",
			wantKind: ResponseValue,
		},
		{
			name:     "pause duration is a value",
			line:     "4294967245",
			wantKind: ResponseValue,
		},
		{
			name:     "radio_rx event is a value",
			line:     "radio_rx  48656C6C6F",
			wantKind: ResponseValue,
		},
		{
			name:     "tx confirmation is a value",
			line:     "radio_tx_ok",
			wantKind: ResponseValue,
		},
		{
			name:     "ok with trailing text is a value",
			line:     "ok then",
			wantKind: ResponseValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Classify([]byte(tt.line))

			if resp.Kind != tt.wantKind {
				t.Fatalf("kind = %d, want %d", resp.Kind, tt.wantKind)
			}
			if resp.Kind == ResponseDeviceErr && resp.ErrKind != tt.wantErr {
				t.Errorf("error kind = %d, want %d", resp.ErrKind, tt.wantErr)
			}
			if resp.Kind == ResponseValue && !bytes.Equal(resp.Value, []byte(tt.line)) {
				t.Errorf("value = %q, want %q", resp.Value, tt.line)
			}
		})
	}
}

func TestParseMacPauseResponse(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    uint32
		wantErr bool
	}{
		{name: "maximum duration", value: "4294967245", want: 4294967245},
		{name: "zero", value: "0", want: 0},
		{name: "not a number", value: "ok", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "negative", value: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, err := ParseMacPauseResponse([]byte(tt.value))

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ms != tt.want {
				t.Errorf("duration = %d, want %d", ms, tt.want)
			}
		})
	}
}

func TestParseNvmByteResponse(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    byte
		wantErr bool
	}{
		{name: "two digits", value: "ab", want: 0xAB},
		{name: "single digit", value: "f", want: 0x0F},
		{name: "zero", value: "00", want: 0x00},
		{name: "too large", value: "1ff", wantErr: true},
		{name: "not hex", value: "zz", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseNvmByteResponse([]byte(tt.value))

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b != tt.want {
				t.Errorf("value = 0x%02X, want 0x%02X", b, tt.want)
			}
		})
	}
}

func TestParseVddResponse(t *testing.T) {
	mv, err := ParseVddResponse([]byte("3302"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mv != 3302 {
		t.Errorf("voltage = %d, want 3302", mv)
	}

	if _, err := ParseVddResponse([]byte("high")); err == nil {
		t.Error("expected error for non-numeric reading, got nil")
	}
}

func TestParseHwEuiResponse(t *testing.T) {
	eui, err := ParseHwEuiResponse([]byte("0004a30b001a55ed"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x00, 0x04, 0xA3, 0x0B, 0x00, 0x1A, 0x55, 0xED}
	if !bytes.Equal(eui, want) {
		t.Errorf("EUI = % X, want % X", eui, want)
	}

	if _, err := ParseHwEuiResponse([]byte("0004a3")); err == nil {
		t.Error("expected error for short EUI, got nil")
	}
	if _, err := ParseHwEuiResponse([]byte("not an eui")); err == nil {
		t.Error("expected error for non-hex EUI, got nil")
	}
}

func TestParseRadioRxEvent(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []byte
		wantErr bool
	}{
		{
			name: "device padding with two spaces",
			line: "radio_rx  deadbeef",
			want: []byte{0xDE, 0xAD, 0xBE, 0xEF},
		},
		{
			name: "single space",
			line: "radio_rx 00ff",
			want: []byte{0x00, 0xFF},
		},
		{
			name: "uppercase payload",
			line: "radio_rx  48656C6C6F",
			want: []byte("Hello"),
		},
		{
			name:    "missing prefix",
			line:    "deadbeef",
			wantErr: true,
		},
		{
			name:    "invalid hex payload",
			line:    "radio_rx  nonsense",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := ParseRadioRxEvent([]byte(tt.line))

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(payload, tt.want) {
				t.Errorf("payload = % X, want % X", payload, tt.want)
			}
		})
	}
}
