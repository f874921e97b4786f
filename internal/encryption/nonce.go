package encryption

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

// NonceSize is the number of nonce bytes leading every ciphertext and counter block.
const NonceSize = 8

// Nonce is the per-message value occupying the first half of each counter block.
type Nonce [NonceSize]byte

// NonceSource produces a fresh nonce for each encryption.
type NonceSource func() (Nonce, error)

// NewNonce packs the wall clock and a random value into a nonce:
// bytes 0-1 hold the milliseconds within the second, bytes 2-3 the random value and
// bytes 4-7 the Unix seconds, all little-endian.
func NewNonce(now time.Time, random uint16) Nonce {
	const millisPerSecond = 1000

	var n Nonce

	millis := now.UnixMilli()

	binary.LittleEndian.PutUint16(n[0:], uint16(millis%millisPerSecond)) //nolint:gosec // < 1000
	binary.LittleEndian.PutUint16(n[2:], random)
	binary.LittleEndian.PutUint32(n[4:], uint32(millis/millisPerSecond)) //nolint:gosec // wraps like the legacy format

	return n
}

// SystemNonce builds a nonce from time.Now and crypto/rand.
// The random half stays below 0xffff, matching the legacy range.
func SystemNonce() (Nonce, error) {
	var buf [2]byte

	if _, err := rand.Read(buf[:]); err != nil {
		return Nonce{}, fmt.Errorf("generating nonce: %w", err)
	}

	random := binary.LittleEndian.Uint16(buf[:]) % 0xffff

	return NewNonce(time.Now(), random), nil
}
