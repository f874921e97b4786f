package encryption

import (
	"fmt"

	"github.com/idelchi/aesctr/pkg/hexdelim"
)

// Option configures Encrypt.
type Option func(*options)

type options struct {
	nonce NonceSource
}

// WithNonceSource replaces the clock-and-random nonce, for reproducible output.
func WithNonceSource(source NonceSource) Option {
	return func(o *options) {
		o.nonce = source
	}
}

// Encrypt encrypts plaintext with password and returns the hex-delimited container.
// Every call draws a fresh nonce, so repeated calls yield different ciphertexts.
func Encrypt(plaintext, password string, opts ...Option) (string, error) {
	cfg := options{nonce: SystemNonce}

	for _, opt := range opts {
		opt(&cfg)
	}

	if password == "" {
		return "", fmt.Errorf("%w: password is empty", ErrInvalidKeyMaterial)
	}

	nonce, err := cfg.nonce()
	if err != nil {
		return "", err
	}

	container, err := Seal([]byte(plaintext), password, nonce)
	if err != nil {
		return "", err
	}

	return hexdelim.Encode(container), nil
}

// Decrypt reverses Encrypt.
func Decrypt(ciphertext, password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password is empty", ErrInvalidKeyMaterial)
	}

	container, err := hexdelim.Decode(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}

	plaintext, err := Open(container, password)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}
