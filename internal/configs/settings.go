package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// SettingsFile is the optional per-project configuration file name.
const SettingsFile = "tablet.toml"

// DefaultArchive is the archive path used when nothing overrides it.
const DefaultArchive = "ancient_wisdoms.tablet"

// Settings are the resolved project settings. TOML tags bind tablet.toml,
// env tags bind the TABLET_* overrides.
type Settings struct {
	// Archive is the path of the encrypted archive file.
	Archive string `toml:"archive" env:"TABLET_ARCHIVE"`

	// KeyEnv names the environment variable holding the archive key.
	KeyEnv string `toml:"key_env" env:"TABLET_KEY_ENV"`

	// Pages is the directory of saved ETCSL pages for `tablet create`.
	Pages string `toml:"pages" env:"TABLET_PAGES"`

	// IncludeEditorialNoise keeps editorial-only entries at ingestion.
	IncludeEditorialNoise bool `toml:"include_editorial_noise" env:"TABLET_EDITORIAL_NOISE"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Archive: DefaultArchive,
		KeyEnv:  "", // crypto.DefaultKeyEnv applies downstream
		Pages:   "pages",
	}
}

// LoadSettings resolves settings for the given directory: defaults, then
// tablet.toml if present, then environment overrides. A missing file is
// fine; an unreadable or malformed one is an error.
func LoadSettings(dir string) (Settings, error) {
	settings := DefaultSettings()

	path := filepath.Join(dir, SettingsFile)
	if _, err := os.Stat(path); err == nil {
		if err := LoadTOML(path, &settings); err != nil {
			return Settings{}, err
		}
	} else if !os.IsNotExist(err) {
		return Settings{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := env.Parse(&settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse environment overrides: %w", err)
	}
	return settings, nil
}
