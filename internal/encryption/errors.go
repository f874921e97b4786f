package encryption

import "errors"

var (
	// ErrInvalidKeyMaterial is returned when the password is empty.
	ErrInvalidKeyMaterial = errors.New("invalid key material")
	// ErrMalformedCiphertext is returned when ciphertext cannot be decoded or is too short to hold a nonce.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
)
