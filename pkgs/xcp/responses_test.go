package xcp

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		res      []byte
		expected ResponseKind
	}{
		{"empty buffer", []byte{}, ResponseMalformed},
		{"nil buffer", nil, ResponseMalformed},
		{"positive", []byte{0xFF}, ResponsePositive},
		{"negative", []byte{0xFE, 0x20}, ResponseError},
		{"unknown pid", []byte{0x42, 0x01}, ResponseMalformed},
	}

	for _, c := range cases {
		if got := classify(c.res); got != c.expected {
			t.Errorf("%s: classify(% X) = %v; want %v", c.name, c.res, got, c.expected)
		}
	}
}

func TestParseConnectResponse(t *testing.T) {
	res := []byte{0xFF, 0x01, 0x02, 0x08, 0x08, 0x00, 0x01, 0x02}
	info, ok := parseConnectResponse(res)
	if !ok {
		t.Fatal("expected a decodable response")
	}
	if info.Resources != 0x01 {
		t.Errorf("Resources = 0x%02X; want 0x01", info.Resources)
	}
	if info.CommMode != 0x02 {
		t.Errorf("CommMode = 0x%02X; want 0x02", info.CommMode)
	}
	if info.MaxCTO != 8 {
		t.Errorf("MaxCTO = %d; want 8", info.MaxCTO)
	}
	if info.MaxDTO != 0x0008 {
		t.Errorf("MaxDTO = 0x%04X; want 0x0008", info.MaxDTO)
	}
	if info.ProtocolVersion != 1 || info.TransportVersion != 2 {
		t.Errorf("versions = %d/%d; want 1/2", info.ProtocolVersion, info.TransportVersion)
	}
}

func TestParseConnectResponseRejectsShortOrNegative(t *testing.T) {
	cases := []struct {
		name string
		res  []byte
	}{
		{"seven bytes", []byte{0xFF, 0x01, 0x02, 0x08, 0x08, 0x00, 0x01}},
		{"one byte", []byte{0xFF}},
		{"empty", nil},
		{"negative", []byte{0xFE, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
	}

	for _, c := range cases {
		if _, ok := parseConnectResponse(c.res); ok {
			t.Errorf("%s: expected ok=false for % X", c.name, c.res)
		}
	}
}

func TestParseStatusResponse(t *testing.T) {
	res := []byte{0xFF, 0x21, 0x03, 0x00, 0x34, 0x12, 0x00, 0x00}
	info, ok := parseStatusResponse(res)
	if !ok {
		t.Fatal("expected a decodable response")
	}
	if info.SessionStatus != 0x21 {
		t.Errorf("SessionStatus = 0x%02X; want 0x21", info.SessionStatus)
	}
	if info.ProtectionMask != 0x03 {
		t.Errorf("ProtectionMask = 0x%02X; want 0x03", info.ProtectionMask)
	}
	if info.SessionID != 0x1234 {
		t.Errorf("SessionID = 0x%04X; want 0x1234", info.SessionID)
	}

	if _, ok := parseStatusResponse(res[:7]); ok {
		t.Error("expected ok=false for a short response")
	}
}

func TestParseIdentResponse(t *testing.T) {
	res := []byte{0xFF, 0x00, 0x05, 0x48, 0x45, 0x4C, 0x4C, 0x4F}
	info, ok := parseIdentResponse(res)
	if !ok {
		t.Fatal("expected a decodable response")
	}
	if info.ClaimedLen != 5 {
		t.Errorf("ClaimedLen = %d; want 5", info.ClaimedLen)
	}
	if string(info.Ident) != "HELLO" {
		t.Errorf("Ident = %q; want HELLO", info.Ident)
	}
	if info.Text() != "HELLO" {
		t.Errorf("Text() = %q; want HELLO", info.Text())
	}
}

func TestParseIdentResponseTruncatesToAvailableBytes(t *testing.T) {
	// claims 5 identifier bytes but supplies only 2
	res := []byte{0xFF, 0x00, 0x05, 0x48, 0x45}
	info, ok := parseIdentResponse(res)
	if !ok {
		t.Fatal("expected a decodable response")
	}
	if string(info.Ident) != "HE" {
		t.Errorf("Ident = %q; want HE", info.Ident)
	}
	if info.ClaimedLen != 5 {
		t.Errorf("ClaimedLen = %d; want 5", info.ClaimedLen)
	}

	if _, ok := parseIdentResponse([]byte{0xFF, 0x00}); ok {
		t.Error("expected ok=false for a response below the minimum length")
	}
}

func TestIdentTextReplacesUnprintableBytes(t *testing.T) {
	info := IdentInfo{Ident: []byte{0x41, 0x00, 0xFF, 0x42}}
	if got := info.Text(); got != "A..B" {
		t.Errorf("Text() = %q; want A..B", got)
	}
}

func TestParseUploadResponse(t *testing.T) {
	data := parseUploadResponse([]byte{0xFF, 0x11, 0x22, 0x33, 0x44})
	if !bytes.Equal(data, []byte{0x11, 0x22, 0x33, 0x44}) {
		t.Errorf("data = % X; want 11 22 33 44", data)
	}

	// count=0 positive response: empty but not nil
	data = parseUploadResponse([]byte{0xFF})
	if data == nil || len(data) != 0 {
		t.Errorf("data = %v; want an empty non-nil slice", data)
	}

	// negative and malformed responses carry no data
	if data := parseUploadResponse([]byte{0xFE, 0x20}); data != nil {
		t.Errorf("data = % X; want nil for a negative response", data)
	}
	if data := parseUploadResponse(nil); data != nil {
		t.Errorf("data = % X; want nil for an empty buffer", data)
	}
}

func TestExchangeErr(t *testing.T) {
	if err := (Exchange{Response: []byte{0xFF}}).Err(); err != nil {
		t.Errorf("positive response: err = %v; want nil", err)
	}

	err := (Exchange{Response: []byte{0xFE, 0x20}}).Err()
	var slaveErr *SlaveError
	if !errors.As(err, &slaveErr) {
		t.Fatalf("negative response: err = %v; want *SlaveError", err)
	}
	if slaveErr.Code != 0x20 {
		t.Errorf("Code = 0x%02X; want 0x20", slaveErr.Code)
	}
	if want := "ERR_CMD_UNKNOWN"; !strings.Contains(slaveErr.Error(), want) {
		t.Errorf("Error() = %q; want it to mention %s", slaveErr.Error(), want)
	}

	if err := (Exchange{Response: nil}).Err(); !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("empty buffer: err = %v; want ErrMalformedResponse", err)
	}
	if err := (Exchange{Response: []byte{0x42}}).Err(); !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("unknown pid: err = %v; want ErrMalformedResponse", err)
	}
}
