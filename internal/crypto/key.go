package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"

	terrors "github.com/nisaba-tools/tablet/internal/errors"
)

const (
	// KeySize is the size of an archive key in bytes.
	KeySize = 32
	// NonceSize is the size of a secretbox nonce in bytes.
	NonceSize = 24
	// Overhead is the size of the authentication tag appended to the ciphertext.
	Overhead = secretbox.Overhead

	// EncodedKeyLen is the length of a base64url-encoded key without padding.
	EncodedKeyLen = 43
)

// Key is the symmetric archive key. It is resolved once per process and
// passed explicitly; no component stores it beyond its own call.
type Key [KeySize]byte

// String masks the key material so formatting a Key can never leak it.
func (Key) String() string {
	return "tablet.Key(redacted)"
}

// GenerateKey returns a fresh random archive key.
func GenerateKey() (Key, error) {
	var key Key
	if _, err := rand.Read(key[:]); err != nil {
		return Key{}, fmt.Errorf("failed to generate key: %w", err)
	}
	return key, nil
}

// EncodeKey encodes a key as base64url without padding, the form carried in
// the environment variable.
func EncodeKey(key Key) string {
	return base64.RawURLEncoding.EncodeToString(key[:])
}

// ParseKey decodes a base64url key string. A string that is not base64url or
// does not decode to exactly KeySize bytes is a malformed key.
func ParseKey(s string) (Key, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Key{}, fmt.Errorf("%w: not base64url: %v", terrors.ErrMalformedKey, err)
	}
	if len(raw) != KeySize {
		return Key{}, fmt.Errorf("%w: got %d bytes, want %d", terrors.ErrMalformedKey, len(raw), KeySize)
	}
	var key Key
	copy(key[:], raw)
	return key, nil
}
