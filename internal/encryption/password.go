package encryption

import (
	"fmt"
	"unicode/utf16"

	"github.com/idelchi/aesctr/pkg/rijndael"
)

// KeySize is the size of a derived key in bytes.
const KeySize = 32

// KeyFromPassword derives a 256-bit key by encrypting the password with itself.
//
// The first 32 UTF-16 code units of the password are mapped to bytes: digits and
// Latin-1 whitespace keep their code, every other character and every position past
// the end becomes 0. Those bytes are expanded into a schedule that then encrypts their
// own first 16 bytes; the 16-byte result is repeated to fill the key. Passwords that
// differ only in letters derive the same key.
func KeyFromPassword(password string) ([KeySize]byte, error) {
	var key [KeySize]byte

	if password == "" {
		return key, fmt.Errorf("%w: password is empty", ErrInvalidKeyMaterial)
	}

	var raw [KeySize]byte

	units := utf16.Encode([]rune(password))
	for i := 0; i < KeySize && i < len(units); i++ {
		if isNumeric(units[i]) {
			raw[i] = byte(units[i])
		}
	}

	block, err := rijndael.NewCipher(raw[:])
	if err != nil {
		return key, fmt.Errorf("expanding password: %w", err)
	}

	var out [rijndael.BlockSize]byte

	block.Encrypt(out[:], raw[:rijndael.BlockSize])

	copy(key[:], out[:])
	copy(key[rijndael.BlockSize:], out[:KeySize-rijndael.BlockSize])

	return key, nil
}

// isNumeric reports whether a single character converts to a number under loose
// numeric coercion: an ASCII digit, or whitespace (which coerces to zero).
func isNumeric(unit uint16) bool {
	switch {
	case unit >= '0' && unit <= '9':
		return true
	case unit == ' ', unit == '\t', unit == '\n', unit == '\v', unit == '\f', unit == '\r', unit == 0xa0:
		return true
	default:
		return false
	}
}

// newBlockCipher derives the key for password and expands it.
func newBlockCipher(password string) (*rijndael.Cipher, error) {
	key, err := KeyFromPassword(password)
	if err != nil {
		return nil, err
	}

	block, err := rijndael.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	return block, nil
}
