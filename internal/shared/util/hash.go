package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashDocument returns a stable hex identifier for a document payload, used
// to correlate log lines for the same upload without storing its content.
func HashDocument(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
