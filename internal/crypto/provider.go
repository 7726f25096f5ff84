package crypto

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	terrors "github.com/nisaba-tools/tablet/internal/errors"
)

// DefaultKeyEnv is the default environment variable holding the archive key.
const DefaultKeyEnv = "TABLET_ARCHIVE_KEY"

var loadDotenv sync.Once

// EnvProvider resolves the archive key from a named environment variable.
// A .env file in the working directory is loaded once per process, so the
// variable can live there instead of the shell environment.
type EnvProvider struct {
	envVar string
}

// NewEnvProvider returns a provider reading from the given environment
// variable. An empty name selects DefaultKeyEnv.
func NewEnvProvider(envVar string) *EnvProvider {
	if envVar == "" {
		envVar = DefaultKeyEnv
	}
	return &EnvProvider{envVar: envVar}
}

// EnvVar returns the environment variable name this provider reads.
func (p *EnvProvider) EnvVar() string {
	return p.envVar
}

// Resolve reads and decodes the key. It is deterministic for a fixed
// environment and may be called any number of times. An unset or blank
// variable is ErrMissingKey; anything else that does not parse is
// ErrMalformedKey.
func (p *EnvProvider) Resolve() (Key, error) {
	loadDotenv.Do(func() {
		// Missing .env is fine; the shell environment is the usual source.
		_ = godotenv.Load()
	})

	raw, ok := os.LookupEnv(p.envVar)
	if !ok || strings.TrimSpace(raw) == "" {
		return Key{}, fmt.Errorf("%w: set %s to a key from `tablet keygen`", terrors.ErrMissingKey, p.envVar)
	}

	key, err := ParseKey(strings.TrimSpace(raw))
	if err != nil {
		return Key{}, fmt.Errorf("invalid %s: %w", p.envVar, err)
	}
	return key, nil
}
