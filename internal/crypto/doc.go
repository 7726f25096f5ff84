// Package crypto seals and opens the proverb archive.
//
// # Construction
//
// Archives are encrypted with NaCl secretbox (XSalsa20-Poly1305), an
// authenticated construction: decryption fails outright on a wrong key or a
// tampered blob, it never returns corrupted plaintext. A sealed blob is one
// self-contained token:
//
//	nonce (24 bytes) || ciphertext || tag (16 bytes)
//
// The nonce is drawn from crypto/rand inside Seal on every call. Callers
// cannot supply a nonce: reusing one under the same key breaks secretbox
// completely, so the API does not leave room for it. Two Seal calls on the
// same plaintext therefore never produce the same blob.
//
// # Keys
//
// Keys are 32 random bytes, carried as the fixed-size Key type and encoded
// for the environment as base64url without padding (43 characters). Use
// [GenerateKey] once during setup, export the value of [EncodeKey], and
// resolve it at runtime through an [EnvProvider].
//
// Keys must never be logged, persisted, or committed. Key.String masks the
// material so an accidental %v cannot leak it.
package crypto
