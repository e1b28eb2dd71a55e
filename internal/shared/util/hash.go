package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPrompt returns a stable hex identifier for a rendered prompt, used to
// correlate stored analyses with the exact prompt text that produced them.
func HashPrompt(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
