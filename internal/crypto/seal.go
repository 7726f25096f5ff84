package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"

	terrors "github.com/nisaba-tools/tablet/internal/errors"
)

// Seal encrypts plaintext under key and returns a self-contained blob of
// nonce || ciphertext || tag. A fresh random nonce is generated on every
// call, so sealing identical plaintext twice yields different blobs.
func Seal(key Key, plaintext []byte) ([]byte, error) {
	var nonce [NonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return secretbox.Seal(nonce[:], plaintext, &nonce, (*[KeySize]byte)(&key)), nil
}

// Open authenticates and decrypts a blob produced by Seal. A blob shorter
// than an empty sealed payload is ErrTruncatedArchive; a failed tag check
// (wrong key or tampered bytes) is ErrAuthenticationFailed, with no partial
// plaintext.
func Open(key Key, blob []byte) ([]byte, error) {
	if len(blob) < NonceSize+Overhead {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the smallest sealed blob (%d)",
			terrors.ErrTruncatedArchive, len(blob), NonceSize+Overhead)
	}

	var nonce [NonceSize]byte
	copy(nonce[:], blob[:NonceSize])

	plaintext, ok := secretbox.Open(nil, blob[NonceSize:], &nonce, (*[KeySize]byte)(&key))
	if !ok {
		return nil, terrors.ErrAuthenticationFailed
	}
	return plaintext, nil
}
