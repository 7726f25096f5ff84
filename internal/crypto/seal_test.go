package crypto

import (
	"bytes"
	"errors"
	"testing"

	terrors "github.com/nisaba-tools/tablet/internal/errors"
)

func testKey(t *testing.T) Key {
	t.Helper()
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}
	return key
}

func TestSeal_Open_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"empty", []byte{}},
		{"simple", []byte("Wisdom begins in wonder.")},
		{"json", []byte(`[{"text": "A fed cow watches its gate."}]`)},
		{"unicode", []byte("šu-niĝin — 日本語 \"quoted\"\nsecond line")},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"large", make([]byte, 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := testKey(t)

			blob, err := Seal(key, tt.plaintext)
			if err != nil {
				t.Fatalf("Seal() error = %v", err)
			}

			expectedLen := NonceSize + len(tt.plaintext) + Overhead
			if len(blob) != expectedLen {
				t.Errorf("blob length = %d, want %d", len(blob), expectedLen)
			}

			plaintext, err := Open(key, blob)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if !bytes.Equal(plaintext, tt.plaintext) {
				t.Errorf("Open() = %q, want %q", plaintext, tt.plaintext)
			}
		})
	}
}

func TestSeal_FreshNonce(t *testing.T) {
	key := testKey(t)
	plaintext := []byte("the same proverb, sealed twice")

	first, err := Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	second, err := Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	if bytes.Equal(first, second) {
		t.Error("two Seal calls produced identical blobs")
	}
	if bytes.Equal(first[:NonceSize], second[:NonceSize]) {
		t.Error("two Seal calls produced identical nonces")
	}
}

func TestOpen_WrongKey(t *testing.T) {
	blob, err := Seal(testKey(t), []byte("sealed under one key"))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	plaintext, err := Open(testKey(t), blob)
	if !errors.Is(err, terrors.ErrAuthenticationFailed) {
		t.Errorf("expected ErrAuthenticationFailed, got %v", err)
	}
	if plaintext != nil {
		t.Errorf("Open() leaked plaintext on failure: %q", plaintext)
	}
}

func TestOpen_TamperedBlob(t *testing.T) {
	key := testKey(t)
	blob, err := Seal(key, []byte("tamper with me"))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	// Flipping any single bit anywhere in the blob must fail the tag check.
	for i := range blob {
		tampered := make([]byte, len(blob))
		copy(tampered, blob)
		tampered[i] ^= 0x01

		if _, err := Open(key, tampered); !errors.Is(err, terrors.ErrAuthenticationFailed) {
			t.Fatalf("byte %d: expected ErrAuthenticationFailed, got %v", i, err)
		}
	}
}

func TestOpen_Truncated(t *testing.T) {
	key := testKey(t)
	blob, err := Seal(key, []byte("short"))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	tests := []struct {
		name string
		blob []byte
	}{
		{"empty", []byte{}},
		{"nonce only", blob[:NonceSize]},
		{"one short of minimum", blob[:NonceSize+Overhead-1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Open(key, tt.blob); !errors.Is(err, terrors.ErrTruncatedArchive) {
				t.Errorf("expected ErrTruncatedArchive, got %v", err)
			}
		})
	}
}
