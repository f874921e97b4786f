// Package rijndael implements the forward Rijndael block transform with 128-bit blocks
// and 128, 192 or 256-bit keys.
//
// Only encryption of single blocks is provided. Counter mode never needs the inverse
// transform, so there is no Decrypt and the cipher does not satisfy crypto/cipher.Block.
package rijndael
