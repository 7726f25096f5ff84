package archive

import (
	"bytes"
	"encoding/json"
	"fmt"

	terrors "github.com/nisaba-tools/tablet/internal/errors"
)

// EncodeProverbs serializes the collection to its canonical plaintext form,
// an indented JSON array. A nil slice encodes as the empty collection.
func EncodeProverbs(proverbs []Proverb) ([]byte, error) {
	if proverbs == nil {
		proverbs = []Proverb{}
	}
	data, err := json.MarshalIndent(proverbs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode collection: %w", err)
	}
	return data, nil
}

// DecodeProverbs parses canonical plaintext back into a collection. Anything
// that is not a JSON array of proverb objects is ErrMalformedArchive; there
// is no partial or best-effort result.
func DecodeProverbs(data []byte) ([]Proverb, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", terrors.ErrMalformedArchive)
	}

	var proverbs []Proverb
	if err := json.Unmarshal(trimmed, &proverbs); err != nil {
		return nil, fmt.Errorf("%w: %v", terrors.ErrMalformedArchive, err)
	}
	if proverbs == nil {
		proverbs = []Proverb{}
	}
	return proverbs, nil
}
