// Package encryption implements password-keyed Rijndael-256 counter mode with a
// '-'-delimited hex transport encoding, and concurrent processing of files with it.
//
// The construction is kept bit-compatible with the legacy browser tooling:
//   - the key is derived by letting the password bytes encrypt themselves, which is
//     not a sound key-derivation function
//   - the 8-byte nonce is built from the wall clock and a 16-bit random value
//   - encrypt and decrypt compute the upper counter half with different arithmetic
//
// Plaintexts are handled as UTF-8 bytes. The browser tooling works on UTF-16 code
// units instead, so only ASCII text interoperates with it.
//
// None of these choices should be "fixed" without breaking existing ciphertexts.
package encryption
