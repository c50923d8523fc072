package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAddress_Hex(t *testing.T) {
	addr, err := parseAddress("0x1000")
	assert.Equal(t, nil, err, "unexpected error")
	assert.Equal(t, uint32(0x1000), addr, "address mismatch")
}

func TestParseAddress_Decimal(t *testing.T) {
	addr, err := parseAddress("4096")
	assert.Equal(t, nil, err, "unexpected error")
	assert.Equal(t, uint32(4096), addr, "address mismatch")
}

func TestParseAddress_Invalid(t *testing.T) {
	_, err := parseAddress("banana")
	assert.NotNil(t, err, "expected error for a non-numeric address")
}

func TestParseAddress_Overflow(t *testing.T) {
	_, err := parseAddress("0x100000000")
	assert.NotNil(t, err, "expected error for an address above 32 bits")
}

func TestParseCount_Valid(t *testing.T) {
	count, err := parseCount("255")
	assert.Equal(t, nil, err, "unexpected error")
	assert.Equal(t, byte(255), count, "count mismatch")
}

func TestParseCount_TooLarge(t *testing.T) {
	_, err := parseCount("256")
	assert.NotNil(t, err, "expected error for a count above one byte")
}

func TestParseHexBytes_SeparatePairs(t *testing.T) {
	data, err := parseHexBytes([]string{"AA", "BB", "CC", "DD"})
	assert.Equal(t, nil, err, "unexpected error")
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD}, data, "data mismatch")
}

func TestParseHexBytes_SingleRun(t *testing.T) {
	data, err := parseHexBytes([]string{"aabbccdd"})
	assert.Equal(t, nil, err, "unexpected error")
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD}, data, "data mismatch")
}

func TestParseHexBytes_CommaSeparated(t *testing.T) {
	data, err := parseHexBytes([]string{"AA,BB", "CC"})
	assert.Equal(t, nil, err, "unexpected error")
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, data, "data mismatch")
}

func TestParseHexBytes_InvalidHex(t *testing.T) {
	_, err := parseHexBytes([]string{"ZZ"})
	assert.NotNil(t, err, "expected error for non-hex input")
}

func TestParseHexBytes_OddLength(t *testing.T) {
	_, err := parseHexBytes([]string{"AAB"})
	assert.NotNil(t, err, "expected error for an odd number of hex digits")
}

func TestParseHexBytes_Empty(t *testing.T) {
	_, err := parseHexBytes([]string{})
	assert.NotNil(t, err, "expected error for empty args")
}

func TestParseHexBytes_Stdin(t *testing.T) {
	stdinContent := "AA BB\nCC DD\n"

	// mocking
	originalStdin := os.Stdin
	r, w, _ := os.Pipe()
	w.WriteString(stdinContent)
	w.Close()
	os.Stdin = r
	defer func() { os.Stdin = originalStdin }() // restore original after the test is done

	data, err := parseHexBytes([]string{"-"})
	assert.Equal(t, nil, err, "unexpected error")
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD}, data, "expected stdin content in result")
}
