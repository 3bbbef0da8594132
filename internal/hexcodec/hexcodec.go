// Package hexcodec provides the 0x-prefixed hex encoding the oberon CLI uses
// for key, token, and proof material, adapted from the light-client update
// codec this repository started from.
package hexcodec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Decode parses s, tolerating an optional "0x" prefix.
func Decode(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hexcodec: %w", err)
	}
	return b, nil
}

// Encode renders b as a "0x"-prefixed lowercase hex string.
func Encode(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
