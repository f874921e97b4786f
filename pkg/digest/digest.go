// Package digest computes a SHA-256-shaped message digest over the UTF-8 bytes of a string.
//
// [VariantStandard] pads with the 64-bit big-endian bit length and prints each state
// word as eight lowercase hex digits. [VariantLegacy] reproduces the browser
// implementation this tool interoperates with: its length trailer is assembled with
// 32-bit shifts (the upper word repeats the lower one) and state words are printed as
// signed integers, so a legacy digest may contain '-' characters.
package digest

import (
	"crypto/subtle"
	"encoding/binary"
	"math/bits"
	"strconv"
	"strings"
)

// Variant selects padding and output formatting.
type Variant int

const (
	// VariantStandard is the default digest.
	VariantStandard Variant = iota
	// VariantLegacy matches digests stored by the legacy browser tooling.
	VariantLegacy
)

const (
	chunkSize = 64
	// Size is the number of hex characters in a standard digest.
	Size = 64
)

//nolint:gochecknoglobals
var roundConstants = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

//nolint:gochecknoglobals
var initialState = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a, 0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// Sum returns the standard digest of message.
func Sum(message string) string {
	return SumVariant(message, VariantStandard)
}

// Matches reports whether the standard digest of message equals expected.
func Matches(message, expected string) bool {
	return MatchesVariant(message, expected, VariantStandard)
}

// SumVariant returns the digest of message using the given variant.
func SumVariant(message string, variant Variant) string {
	state := initialState

	padded := pad([]byte(message), variant)
	for off := 0; off < len(padded); off += chunkSize {
		compress(&state, padded[off:off+chunkSize])
	}

	return format(state, variant)
}

// MatchesVariant compares the digest of message with expected in constant time.
func MatchesVariant(message, expected string, variant Variant) bool {
	computed := SumVariant(message, variant)

	return subtle.ConstantTimeCompare([]byte(computed), []byte(expected)) == 1
}

// pad appends 0x80, zeros up to 56 mod 64, and the 8-byte length trailer.
func pad(message []byte, variant Variant) []byte {
	const trailer = 8

	bitLength := uint64(len(message)) * 8 //nolint:mnd

	size := len(message) + 1
	size += (chunkSize - (size+trailer)%chunkSize) % chunkSize

	out := make([]byte, size+trailer)
	copy(out, message)
	out[len(message)] = 0x80

	switch variant {
	case VariantLegacy:
		low := uint32(bitLength) //nolint:gosec // the legacy trailer only ever sees 32 bits
		binary.BigEndian.PutUint32(out[size:], low)
		binary.BigEndian.PutUint32(out[size+4:], low)
	default:
		binary.BigEndian.PutUint64(out[size:], bitLength)
	}

	return out
}

func compress(state *[8]uint32, chunk []byte) {
	var words [64]uint32

	for i := range 16 {
		words[i] = binary.BigEndian.Uint32(chunk[i*4:])
	}

	for i := 16; i < 64; i++ {
		s0 := bits.RotateLeft32(words[i-15], -7) ^ bits.RotateLeft32(words[i-15], -18) ^ words[i-15]>>3
		s1 := bits.RotateLeft32(words[i-2], -17) ^ bits.RotateLeft32(words[i-2], -19) ^ words[i-2]>>10
		words[i] = words[i-16] + s0 + words[i-7] + s1
	}

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for i := range 64 {
		s1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
		ch := (e & f) ^ (^e & g)
		temp1 := h + s1 + ch + roundConstants[i] + words[i]
		s0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		temp2 := s0 + maj

		h, g, f, e, d, c, b, a = g, f, e, d+temp1, c, b, a, temp1+temp2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

func format(state [8]uint32, variant Variant) string {
	var buf strings.Builder

	buf.Grow(Size)

	for _, word := range state {
		switch variant {
		case VariantLegacy:
			buf.WriteString(legacyWord(word))
		default:
			hex := strconv.FormatUint(uint64(word), 16)
			buf.WriteString(strings.Repeat("0", 8-len(hex)) + hex)
		}
	}

	return buf.String()
}

// legacyWord renders word as a signed 32-bit integer in base 16, left-padded with
// zeros and cut to its last 8 characters.
func legacyWord(word uint32) string {
	signed := strconv.FormatInt(int64(int32(word)), 16) //nolint:gosec // reinterpretation is the point
	padded := "00000000" + signed

	return padded[len(padded)-8:]
}
