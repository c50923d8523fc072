package output

import (
	"fmt"
	"strings"
)

// HexDump renders a packet the way the protocol traces read:
// "CONNECT.res (8): FF 04 80 20 20 00 01 01".
func HexDump(prefix string, b []byte) string {
	parts := make([]string, len(b))
	for i, x := range b {
		parts[i] = fmt.Sprintf("%02X", x)
	}
	return fmt.Sprintf("%s (%d): %s", prefix, len(b), strings.Join(parts, " "))
}

// HexBytes renders raw bytes as space-separated hex pairs, "11 22 33 44".
func HexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, x := range b {
		parts[i] = fmt.Sprintf("%02X", x)
	}
	return strings.Join(parts, " ")
}
