package configs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings_Defaults(t *testing.T) {
	settings, err := LoadSettings(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}

	if settings.Archive != DefaultArchive {
		t.Errorf("Archive = %q, want %q", settings.Archive, DefaultArchive)
	}
	if settings.Pages != "pages" {
		t.Errorf("Pages = %q, want %q", settings.Pages, "pages")
	}
	if settings.IncludeEditorialNoise {
		t.Error("IncludeEditorialNoise defaults to false")
	}
}

func TestLoadSettings_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := "archive = \"vault/wisdoms.tablet\"\nkey_env = \"MY_KEY\"\ninclude_editorial_noise = true\n"
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}

	if settings.Archive != "vault/wisdoms.tablet" {
		t.Errorf("Archive = %q, want the file value", settings.Archive)
	}
	if settings.KeyEnv != "MY_KEY" {
		t.Errorf("KeyEnv = %q, want %q", settings.KeyEnv, "MY_KEY")
	}
	if !settings.IncludeEditorialNoise {
		t.Error("IncludeEditorialNoise not read from file")
	}
	// Untouched fields keep their defaults.
	if settings.Pages != "pages" {
		t.Errorf("Pages = %q, want default", settings.Pages)
	}
}

func TestLoadSettings_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte("archive = \"from_file.tablet\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TABLET_ARCHIVE", "from_env.tablet")

	settings, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if settings.Archive != "from_env.tablet" {
		t.Errorf("Archive = %q, environment must win over the file", settings.Archive)
	}
}

func TestLoadSettings_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte("archive = [not toml"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSettings(dir); err == nil {
		t.Error("expected error for a malformed tablet.toml")
	}
}

func TestSaveLoadTOML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tablet.toml")
	in := Settings{Archive: "a.tablet", KeyEnv: "K", Pages: "p", IncludeEditorialNoise: true}

	if err := SaveTOML(path, in); err != nil {
		t.Fatalf("SaveTOML() error = %v", err)
	}

	var out Settings
	if err := LoadTOML(path, &out); err != nil {
		t.Fatalf("LoadTOML() error = %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
