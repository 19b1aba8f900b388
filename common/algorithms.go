package common

import (
	"fmt"

	"github.com/dchest/siphash"
)

// Digest128 is a keyed 128 bit siphash as 32 hex digits.
func Digest128(left, right uint64, body []byte) string {
	high, low := siphash.Hash128(left, right, body)
	return fmt.Sprintf("%016x%016x", high, low)
}
