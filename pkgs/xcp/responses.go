package xcp

import (
	"encoding/binary"
	"strings"
)

// ResponseKind classifies a raw response buffer by its first byte.
type ResponseKind int

const (
	// ResponsePositive is a 0xFF-led response carrying command-specific data
	ResponsePositive ResponseKind = iota

	// ResponseError is a 0xFE-led negative response carrying an error code
	ResponseError

	// ResponseMalformed is an empty buffer or an unknown packet identifier
	ResponseMalformed
)

func classify(res []byte) ResponseKind {
	if len(res) == 0 {
		return ResponseMalformed
	}
	switch res[0] {
	case PidPositive:
		return ResponsePositive
	case PidError:
		return ResponseError
	default:
		return ResponseMalformed
	}
}

// ConnectInfo holds the decoded fields of a CONNECT positive response.
type ConnectInfo struct {
	Resources        byte
	CommMode         byte
	MaxCTO           byte
	MaxDTO           uint16
	ProtocolVersion  byte
	TransportVersion byte
}

func parseConnectResponse(res []byte) (ConnectInfo, bool) {
	if len(res) < connectResponseMinLen || classify(res) != ResponsePositive {
		return ConnectInfo{}, false
	}
	return ConnectInfo{
		Resources:        res[1],
		CommMode:         res[2],
		MaxCTO:           res[3],
		MaxDTO:           binary.LittleEndian.Uint16(res[4:6]),
		ProtocolVersion:  res[6],
		TransportVersion: res[7],
	}, true
}

// StatusInfo holds the decoded fields of a GET_STATUS positive response.
type StatusInfo struct {
	SessionStatus  byte
	ProtectionMask byte
	SessionID      uint16
}

func parseStatusResponse(res []byte) (StatusInfo, bool) {
	if len(res) < statusResponseMinLen || classify(res) != ResponsePositive {
		return StatusInfo{}, false
	}
	return StatusInfo{
		SessionStatus:  res[1],
		ProtectionMask: res[2],
		SessionID:      binary.LittleEndian.Uint16(res[4:6]),
	}, true
}

// IdentInfo holds the decoded fields of a GET_ID positive response. Ident
// carries the raw identifier bytes; their encoding is transport-defined,
// so textual rendering is best-effort only (see Text).
type IdentInfo struct {
	Mode byte

	// ClaimedLen is the length byte from the response. Ident may be shorter
	// when the slave supplied fewer bytes than it claimed.
	ClaimedLen byte
	Ident      []byte
}

func parseIdentResponse(res []byte) (IdentInfo, bool) {
	if len(res) < identResponseMinLen || classify(res) != ResponsePositive {
		return IdentInfo{}, false
	}
	info := IdentInfo{Mode: res[1], ClaimedLen: res[2]}
	n := int(info.ClaimedLen)
	if avail := len(res) - 3; n > avail {
		// slave claimed more than it sent, take what is there
		n = avail
	}
	info.Ident = append([]byte{}, res[3:3+n]...)
	return info, true
}

// Text renders the identifier lossily for display, replacing anything
// outside printable ASCII with a dot.
func (i IdentInfo) Text() string {
	var b strings.Builder
	for _, c := range i.Ident {
		if c < 0x20 || c > 0x7E {
			b.WriteByte('.')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// parseUploadResponse returns the data bytes of an UPLOAD or SHORT_UPLOAD
// response: everything after the packet identifier on a positive response,
// nil otherwise. A positive response to a count=0 request yields an empty
// non-nil slice, which is distinct from the nil returned for errors.
func parseUploadResponse(res []byte) []byte {
	if classify(res) != ResponsePositive {
		return nil
	}
	return append([]byte{}, res[1:]...)
}
