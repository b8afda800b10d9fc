// Package token generates random identifiers for staged and published files.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Hex returns n bytes from the system CSPRNG encoded as 2n lowercase hex
// characters. It panics if the random source fails.
func Hex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("token - Hex - rand.Read: %v", err))
	}

	return hex.EncodeToString(b)
}
