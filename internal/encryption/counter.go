package encryption

import (
	"math"

	"github.com/idelchi/aesctr/pkg/rijndael"
)

// counterBlock is nonce || high 32 bits of the block index || low 32 bits, the index
// halves stored big-endian at offsets 8-11 and 12-15.
type counterBlock [rijndael.BlockSize]byte

func newCounterBlock(nonce Nonce) counterBlock {
	var c counterBlock

	copy(c[:NonceSize], nonce[:])

	return c
}

// set writes the low 32 bits of block and the given high half.
func (c *counterBlock) set(block uint64, high uint32) {
	low := uint32(block) //nolint:gosec // low half by definition

	for i := range 4 {
		c[15-i] = byte(low >> (8 * i))
		c[11-i] = byte(high >> (8 * i))
	}
}

// sealHigh is the upper counter half used when encrypting: floor(block / 2^32).
func sealHigh(block uint64) uint32 {
	return uint32(block >> 32) //nolint:gosec,mnd
}

// openHigh is the upper counter half used when decrypting: (block+1)/2^32 - 1 in
// floating point, truncated toward zero and reduced to 32 bits.
// It equals sealHigh for every block below 2^32 and is one less from 2^32 onwards
// (except where block+1 is a multiple of 2^32). Ciphertexts long enough to reach
// that range do not round-trip.
func openHigh(block uint64) uint32 {
	const span = 1 << 32

	v := float64(block+1)/span - 1

	return uint32(int64(math.Trunc(v))) //nolint:gosec // modular reduction is intended
}

// blockLength is the length of block index i out of count blocks covering total bytes.
func blockLength(i, count, total int) int {
	if i < count-1 {
		return rijndael.BlockSize
	}

	return (total-1)%rijndael.BlockSize + 1
}

// blockCount is the number of (possibly short) blocks covering total bytes.
func blockCount(total int) int {
	return (total + rijndael.BlockSize - 1) / rijndael.BlockSize
}
