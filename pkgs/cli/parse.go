package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

func parseAddress(s string) (uint32, error) {
	// base 0 accepts both decimal and 0x-prefixed hex
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return uint32(v), nil
}

func parseCount(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q (must be 0-255): %w", s, err)
	}
	return byte(v), nil
}

// parseHexBytes joins the arguments into one hex string and decodes it.
// Accepts separate pairs ("AA BB"), a single run ("AABB") and comma
// separators. A trailing "-" argument pulls the data from stdin.
func parseHexBytes(args []string) ([]byte, error) {
	if len(args) >= 1 && args[len(args)-1] == "-" {
		args = args[:len(args)-1]

		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read from stdin: %v", err)
		}
		args = append(args, string(data))
	}

	joined := strings.Join(args, " ")
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == ',' {
			return -1
		}
		return r
	}, joined)

	if cleaned == "" {
		return nil, fmt.Errorf("no data bytes provided")
	}
	b, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid hex data %q: %w", cleaned, err)
	}
	return b, nil
}
