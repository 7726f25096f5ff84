package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nisaba-tools/tablet/internal/crypto"
	terrors "github.com/nisaba-tools/tablet/internal/errors"
)

// WriteArchive encodes and seals the collection and atomically replaces the
// file at path. The blob is written to a temp file in the target directory
// first and renamed into place, so a crash mid-write never leaves a partial
// archive behind.
func WriteArchive(path string, proverbs []Proverb, key crypto.Key) error {
	plaintext, err := EncodeProverbs(proverbs)
	if err != nil {
		return err
	}

	blob, err := crypto.Seal(key, plaintext)
	if err != nil {
		return fmt.Errorf("failed to seal archive: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create archive directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tablet-*")
	if err != nil {
		return fmt.Errorf("failed to create temp archive: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp archive: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace archive at %s: %w", path, err)
	}
	return nil
}

// ReadArchive loads, opens, and decodes the archive at path. Each call is a
// fresh decrypt. Failure causes stay distinct: a missing file is
// ErrArchiveNotFound, a short file is ErrTruncatedArchive, a failed tag
// check is ErrAuthenticationFailed, and bad plaintext after a successful
// decrypt is ErrMalformedArchive.
func ReadArchive(path string, key crypto.Key) ([]Proverb, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (run `tablet create` first)", terrors.ErrArchiveNotFound, path)
		}
		return nil, fmt.Errorf("failed to read archive %s: %w", path, err)
	}

	plaintext, err := crypto.Open(key, blob)
	if err != nil {
		return nil, err
	}

	return DecodeProverbs(plaintext)
}
