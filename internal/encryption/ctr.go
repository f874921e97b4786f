package encryption

import (
	"crypto/subtle"
	"fmt"

	"github.com/idelchi/aesctr/pkg/rijndael"
)

// Seal encrypts plaintext under password and returns the raw container
// nonce || block_0 || ... || block_n-1.
func Seal(plaintext []byte, password string, nonce Nonce) ([]byte, error) {
	block, err := newBlockCipher(password)
	if err != nil {
		return nil, err
	}

	out := make([]byte, NonceSize+len(plaintext))
	copy(out, nonce[:])

	xorCounterStream(block, nonce, out[NonceSize:], plaintext, sealHigh)

	return out, nil
}

// Open decrypts a raw container produced by Seal.
func Open(container []byte, password string) ([]byte, error) {
	block, err := newBlockCipher(password)
	if err != nil {
		return nil, err
	}

	if len(container) < NonceSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d for the nonce",
			ErrMalformedCiphertext, len(container), NonceSize)
	}

	var nonce Nonce

	copy(nonce[:], container[:NonceSize])

	body := container[NonceSize:]
	out := make([]byte, len(body))

	xorCounterStream(block, nonce, out, body, openHigh)

	return out, nil
}

// xorCounterStream XORs src with the keystream for nonce into dst.
// high supplies the upper counter half for each block index.
func xorCounterStream(block *rijndael.Cipher, nonce Nonce, dst, src []byte, high func(uint64) uint32) {
	counter := newCounterBlock(nonce)
	keystream := make([]byte, rijndael.BlockSize)

	count := blockCount(len(src))

	for i := range count {
		index := uint64(i) //nolint:gosec // non-negative

		counter.set(index, high(index))
		block.Encrypt(keystream, counter[:])

		off := i * rijndael.BlockSize
		n := blockLength(i, count, len(src))

		subtle.XORBytes(dst[off:off+n], src[off:off+n], keystream[:n])
	}
}
