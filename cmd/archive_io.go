package cmd

import (
	"errors"

	"github.com/nisaba-tools/tablet/internal/archive"
	terrors "github.com/nisaba-tools/tablet/internal/errors"
	"github.com/nisaba-tools/tablet/internal/ui"
)

// readArchiveOrExplain reads the archive, or returns a ready-to-show message
// naming the exact failure cause. Causes never blur together: a wrong key is
// reported as a wrong key, never retried or re-read as plaintext.
func readArchiveOrExplain(path, keyEnv string) ([]archive.Proverb, string) {
	key, errMsg := resolveKeyOrExplain(keyEnv)
	if errMsg != "" {
		return nil, errMsg
	}

	proverbs, err := archive.ReadArchive(path, key)
	if err == nil {
		return proverbs, ""
	}

	Logger.Errorf("Failed to read archive %s: %v", path, err)
	switch {
	case errors.Is(err, terrors.ErrArchiveNotFound):
		return nil, ui.Error.Sprint("✗") + " No archive at " + ui.Path.Sprint(path) + "\n" +
			ui.Info.Sprint("→") + " Create it first with " + ui.Code.Sprint("tablet create")
	case errors.Is(err, terrors.ErrAuthenticationFailed):
		return nil, ui.Error.Sprint("✗") + " Could not decrypt " + ui.Path.Sprint(path) + "\n" +
			ui.Info.Sprint("→") + " The key is wrong or the file was modified"
	case errors.Is(err, terrors.ErrTruncatedArchive):
		return nil, ui.Error.Sprint("✗ ") + ui.Path.Sprint(path) + " is truncated\n" +
			ui.Info.Sprint("→") + " The file is too short to be a sealed archive; restore it or recreate with " +
			ui.Code.Sprint("tablet create --force")
	case errors.Is(err, terrors.ErrMalformedArchive):
		return nil, ui.Error.Sprint("✗ ") + ui.Path.Sprint(path) + " decrypted but does not hold a proverb collection\n" +
			ui.Info.Sprint("→") + " The archive was written by an incompatible version or corrupted after sealing"
	default:
		return nil, ui.Error.Sprint("✗") + " Failed to read " + ui.Path.Sprint(path) + "\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	}
}
