// Package hexdelim encodes byte strings as '-'-delimited hexadecimal tokens.
//
// Each byte becomes its base-16 digits produced by the recursive digit algorithm
// of the legacy browser implementation, which always leaves a leading '0':
//
//	0x00 -> "0"
//	0x0a -> "0a"
//	0xff -> "0ff"
//
// Tokens are not fixed-width, so the encoded form must only ever be split on the
// delimiter, never sliced by position.
//
// Only byte values are accepted: the browser tooling emits tokens above "0ff" for
// ciphertexts of text outside Latin-1, and those do not decode here.
package hexdelim

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Delimiter separates the per-byte tokens.
	Delimiter = "-"

	alphabet = "0123456789abcdef"
	radix    = len(alphabet)
)

var (
	// ErrInvalidToken is returned when a token is empty or holds a non-hex character.
	ErrInvalidToken = errors.New("invalid hex token")
	// ErrByteRange is returned when a token decodes to a value above 0xff.
	ErrByteRange = errors.New("token out of byte range")
)

// Encode returns the delimited hex form of data.
func Encode(data []byte) string {
	var buf strings.Builder

	buf.Grow(len(data) * 4) //nolint:mnd // at most "0ff-" per byte

	for i, b := range data {
		if i > 0 {
			buf.WriteString(Delimiter)
		}

		buf.WriteString(token(int(b)))
	}

	return buf.String()
}

// token mirrors toHex: the quotient's digits (down to a bare "0") followed by the remainder digit.
func token(n int) string {
	if n == 0 {
		return alphabet[:1]
	}

	return token(n/radix) + alphabet[n%radix:n%radix+1]
}

// Decode parses the delimited hex form back into bytes.
// The empty string decodes to an empty slice.
func Decode(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	tokens := strings.Split(s, Delimiter)
	out := make([]byte, len(tokens))

	for i, tok := range tokens {
		value, err := parseToken(tok)
		if err != nil {
			return nil, fmt.Errorf("token %d (%q): %w", i, tok, err)
		}

		out[i] = value
	}

	return out, nil
}

// parseToken sums digit*16^position over the token. Leading zeros are allowed.
func parseToken(tok string) (byte, error) {
	if tok == "" {
		return 0, ErrInvalidToken
	}

	sum := 0

	for i := range len(tok) {
		digit := strings.IndexByte(alphabet, tok[i])
		if digit < 0 {
			return 0, ErrInvalidToken
		}

		sum = sum*radix + digit
		if sum > 0xff {
			return 0, ErrByteRange
		}
	}

	return byte(sum), nil
}
