package xcp

import (
	"bytes"
	"testing"
)

func TestBuildRequests(t *testing.T) {
	cases := []struct {
		name     string
		got      []byte
		expected []byte
	}{
		{"connect mode 0", buildConnectRequest(0x00), []byte{0xFF, 0x00}},
		{"connect mode 1", buildConnectRequest(0x01), []byte{0xFF, 0x01}},
		{"disconnect", buildDisconnectRequest(), []byte{0xFE}},
		{"get status", buildGetStatusRequest(), []byte{0xFD}},
		{"get id", buildGetIDRequest(), []byte{0xFA}},
		{"upload 4", buildUploadRequest(4), []byte{0xF5, 0x04}},
		{"upload 0", buildUploadRequest(0), []byte{0xF5, 0x00}},
		{
			"set mta little-endian",
			buildSetMTARequest(0x12345678, 0x02),
			[]byte{0xF6, 0x02, 0x78, 0x56, 0x34, 0x12},
		},
		{
			"set mta zero",
			buildSetMTARequest(0, 0),
			[]byte{0xF6, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			"short upload reserved byte and little-endian address",
			buildShortUploadRequest(0x1000, 4, 0x01),
			[]byte{0xF4, 0x04, 0x00, 0x01, 0x00, 0x10, 0x00, 0x00},
		},
		{
			"download payload and count",
			buildDownloadRequest([]byte{0xAA, 0xBB, 0xCC, 0xDD}),
			[]byte{0xF0, 0x04, 0xAA, 0xBB, 0xCC, 0xDD},
		},
		{
			"download empty",
			buildDownloadRequest(nil),
			[]byte{0xF0, 0x00},
		},
	}

	for _, c := range cases {
		if !bytes.Equal(c.got, c.expected) {
			t.Errorf("%s: got % X; want % X", c.name, c.got, c.expected)
		}
	}
}

func TestBuildDownloadRequestTruncatesOversizedPayload(t *testing.T) {
	data := make([]byte, 300)
	for i := range data {
		data[i] = byte(i)
	}

	req := buildDownloadRequest(data)

	if len(req) != 2+MaxElementCount {
		t.Fatalf("request length = %d; want %d", len(req), 2+MaxElementCount)
	}
	if req[1] != 0xFF {
		t.Errorf("count byte = 0x%02X; want 0xFF", req[1])
	}
	if !bytes.Equal(req[2:], data[:MaxElementCount]) {
		t.Errorf("payload does not match the first %d input bytes", MaxElementCount)
	}
}
