package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// NewStreamID returns a best-effort unique identifier used to correlate a
// streaming connection's log lines.
func NewStreamID() string {
	return randomHex(12)
}

// ShortID returns a short random suffix, used for per-visitor guest names.
func ShortID() string {
	return randomHex(4)
}

func randomHex(size int) string {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err == nil {
		return hex.EncodeToString(buf)
	}

	// Fallback to timestamp if crypto/rand is unavailable.
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
