package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber builds a human-shareable order reference:
// SC-<base36 unix millis>-<4 random base36 chars>, uppercase.
// Collision-resistant, not collision-free; callers that persist it rely on a
// store-level uniqueness constraint and retry on conflict.
func GenerateOrderNumber() string {
	timestamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	suffix := make([]byte, 4)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36Alphabet))))
		if err != nil {
			// fallback: time-based entropy
			n = big.NewInt(time.Now().UnixNano() % int64(len(base36Alphabet)))
		}
		suffix[i] = base36Alphabet[n.Int64()]
	}

	return "SC-" + timestamp + "-" + string(suffix)
}
