package crypto

import (
	"errors"
	"os"
	"strings"
	"testing"

	terrors "github.com/nisaba-tools/tablet/internal/errors"
)

func TestGenerateKey_EncodeParse(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}

	encoded := EncodeKey(key)
	if len(encoded) != EncodedKeyLen {
		t.Errorf("encoded key length = %d, want %d", len(encoded), EncodedKeyLen)
	}
	if strings.ContainsAny(encoded, "+/=") {
		t.Errorf("encoded key %q is not base64url without padding", encoded)
	}

	parsed, err := ParseKey(encoded)
	if err != nil {
		t.Fatalf("ParseKey() error = %v", err)
	}
	if parsed != key {
		t.Error("ParseKey(EncodeKey(key)) != key")
	}
}

func TestGenerateKey_Distinct(t *testing.T) {
	a := testKey(t)
	b := testKey(t)
	if a == b {
		t.Error("two generated keys are identical")
	}
}

func TestParseKey_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not base64", "!!!not-a-key!!!"},
		{"too short", "c2hvcnQ"},
		{"too long", strings.Repeat("A", 64)},
		{"standard base64 padding", strings.Repeat("A", 42) + "=="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseKey(tt.input); !errors.Is(err, terrors.ErrMalformedKey) {
				t.Errorf("ParseKey(%q): expected ErrMalformedKey, got %v", tt.input, err)
			}
		})
	}
}

func TestKey_StringRedacts(t *testing.T) {
	key := testKey(t)
	if s := key.String(); strings.Contains(s, EncodeKey(key)) {
		t.Errorf("Key.String() leaks key material: %q", s)
	}
}

func TestEnvProvider_Resolve(t *testing.T) {
	key := testKey(t)

	t.Setenv("TABLET_TEST_KEY", EncodeKey(key))
	provider := NewEnvProvider("TABLET_TEST_KEY")

	resolved, err := provider.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resolved != key {
		t.Error("resolved key differs from the environment value")
	}

	// Resolution is deterministic for a fixed environment.
	again, err := provider.Resolve()
	if err != nil {
		t.Fatalf("second Resolve() error = %v", err)
	}
	if again != resolved {
		t.Error("two resolutions of the same environment differ")
	}
}

func TestEnvProvider_Missing(t *testing.T) {
	tests := []struct {
		name  string
		set   bool
		value string
	}{
		{"unset", false, ""},
		{"blank", true, ""},
		{"whitespace", true, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TABLET_TEST_KEY", tt.value)
			} else {
				// t.Setenv registers cleanup; unset after to simulate absence.
				t.Setenv("TABLET_TEST_KEY", "x")
				if err := os.Unsetenv("TABLET_TEST_KEY"); err != nil {
					t.Fatal(err)
				}
			}

			_, err := NewEnvProvider("TABLET_TEST_KEY").Resolve()
			if !errors.Is(err, terrors.ErrMissingKey) {
				t.Errorf("expected ErrMissingKey, got %v", err)
			}
		})
	}
}

func TestEnvProvider_Malformed(t *testing.T) {
	t.Setenv("TABLET_TEST_KEY", "definitely-not-a-key")

	_, err := NewEnvProvider("TABLET_TEST_KEY").Resolve()
	if !errors.Is(err, terrors.ErrMalformedKey) {
		t.Errorf("expected ErrMalformedKey, got %v", err)
	}
}

func TestEnvProvider_DefaultName(t *testing.T) {
	provider := NewEnvProvider("")
	if provider.EnvVar() != DefaultKeyEnv {
		t.Errorf("EnvVar() = %q, want %q", provider.EnvVar(), DefaultKeyEnv)
	}
}
