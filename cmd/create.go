package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nisaba-tools/tablet/internal/archive"
	"github.com/nisaba-tools/tablet/internal/configs"
	"github.com/nisaba-tools/tablet/internal/crypto"
	terrors "github.com/nisaba-tools/tablet/internal/errors"
	"github.com/nisaba-tools/tablet/internal/ingest"
	"github.com/nisaba-tools/tablet/internal/ui"
)

var (
	createOutput    string
	createPages     string
	createFromText  string
	createWithNoise bool
	createForce     bool
)

func init() {
	createCmd.Flags().StringVarP(&createOutput, "output", "o", "", "output archive path (default from tablet.toml)")
	createCmd.Flags().StringVar(&createPages, "pages", "", "directory of saved ETCSL proverb pages")
	createCmd.Flags().StringVar(&createFromText, "from-text", "", "plaintext proverb file, one proverb per line")
	createCmd.Flags().BoolVar(&createWithNoise, "include-editorial-noise", false,
		"include entries that are only editorial (e.g. '1 line unclear')")
	createCmd.Flags().BoolVarP(&createForce, "force", "f", false, "overwrite an existing archive")
}

// resetCreateCommandState resets the create command's global state for testing.
func resetCreateCommandState() {
	createOutput = ""
	createPages = ""
	createFromText = ""
	createWithNoise = false
	createForce = false
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Builds the encrypted proverb archive",
	Long: `Builds the encrypted archive from saved ETCSL proverb pages (--pages) or
a plaintext proverb list (--from-text, one proverb per line).

The archive is sealed under the key in TABLET_ARCHIVE_KEY and written
atomically; an existing archive is only replaced with --force.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting create command")
		spinner, cleanup := startSpinner("Building proverb archive...", verbose)
		defer cleanup()

		settings, err := configs.LoadSettings(".")
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load settings: %v", err)
		}
		Logger.Debugf("Settings: archive=%s pages=%s", settings.Archive, settings.Pages)

		output := createOutput
		if output == "" {
			output = settings.Archive
		}

		key, errMsg := resolveKeyOrExplain(settings.KeyEnv)
		if errMsg != "" {
			spinner.FinalMSG = errMsg
			return nil
		}

		if !createForce {
			if _, err := os.Stat(output); err == nil {
				spinner.FinalMSG = ui.Error.Sprint("✗ ") + ui.Path.Sprint(output) + " already exists\n" +
					"To overwrite it, run: " + ui.Code.Sprint("tablet create --force")
				return nil
			}
		}

		includeNoise := createWithNoise || settings.IncludeEditorialNoise
		proverbs, sourceErr := loadProverbSource(settings, includeNoise)
		if sourceErr != "" {
			spinner.FinalMSG = sourceErr
			return nil
		}
		Logger.Infof("Collected %d proverbs", len(proverbs))

		if len(proverbs) == 0 {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " No proverbs found in the source\n" +
				ui.Info.Sprint("→") + " Editorial-only entries are skipped; try " +
				ui.Code.Sprint("--include-editorial-noise") + " if that is all there is"
			return nil
		}

		if err := archive.WriteArchive(output, proverbs, key); err != nil {
			return Logger.ErrorfAndReturn("Failed to write archive: %v", err)
		}

		Logger.Infof("Create command completed successfully: %d proverbs in %s", len(proverbs), output)
		spinner.FinalMSG = ui.Success.Sprint("✓") + fmt.Sprintf(" Saved %d proverbs to ", len(proverbs)) +
			ui.Path.Sprint(output) + "\n" +
			ui.Info.Sprint("→") + " Read them back with " + ui.Code.Sprint("tablet show")
		return nil
	},
}

// loadProverbSource builds the collection from --from-text or the pages
// directory. The second return value is a non-empty FinalMSG on user error.
func loadProverbSource(settings configs.Settings, includeNoise bool) ([]archive.Proverb, string) {
	if createFromText != "" {
		Logger.Debugf("Reading plaintext proverbs from %s", createFromText)
		proverbs, err := readTextCorpus(createFromText, includeNoise)
		if err != nil {
			return nil, ui.Error.Sprint("✗") + " Failed to read " + ui.Path.Sprint(createFromText) + "\n" +
				ui.Error.Sprint("Error: ") + err.Error()
		}
		return proverbs, ""
	}

	pages := createPages
	if pages == "" {
		pages = settings.Pages
	}
	Logger.Debugf("Ingesting ETCSL pages from %s", pages)
	proverbs, err := ingest.LoadDir(pages, ingest.Options{IncludeEditorialNoise: includeNoise})
	if err != nil {
		return nil, ui.Error.Sprint("✗") + " Failed to ingest pages from " + ui.Path.Sprint(pages) + "\n" +
			ui.Error.Sprint("Error: ") + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Point " + ui.Code.Sprint("--pages") + " at saved ETCSL pages or use " +
			ui.Code.Sprint("--from-text")
	}
	return proverbs, ""
}

// readTextCorpus reads a plaintext proverb list, one proverb per line.
func readTextCorpus(path string, includeNoise bool) ([]archive.Proverb, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var proverbs []archive.Proverb
	num := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		text := scanner.Text()
		if text == "" {
			continue
		}
		if !includeNoise && !archive.IsSubstantive(text) {
			continue
		}
		num++
		proverbs = append(proverbs, archive.Proverb{
			Collection:  "1",
			Number:      num,
			Composition: "local",
			Text:        text,
			Wisdom:      archive.WisdomScore(text),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return proverbs, nil
}

// resolveKeyOrExplain resolves the archive key, or returns a ready-to-show
// FinalMSG explaining what is wrong with the environment.
func resolveKeyOrExplain(keyEnv string) (crypto.Key, string) {
	provider := crypto.NewEnvProvider(keyEnv)
	key, err := provider.Resolve()
	if err == nil {
		return key, ""
	}

	Logger.Errorf("Failed to resolve archive key: %v", err)
	switch {
	case errors.Is(err, terrors.ErrMissingKey):
		return crypto.Key{}, ui.Error.Sprint("✗") + " No archive key in " + ui.Highlight.Sprint(provider.EnvVar()) + "\n" +
			ui.Info.Sprint("→") + " Generate one with " + ui.Code.Sprint("tablet keygen") + " and export it"
	case errors.Is(err, terrors.ErrMalformedKey):
		return crypto.Key{}, ui.Error.Sprint("✗ ") + ui.Highlight.Sprint(provider.EnvVar()) + " does not hold a valid key\n" +
			ui.Error.Sprint("Error: ") + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Keys are base64url, 43 characters, from " + ui.Code.Sprint("tablet keygen")
	default:
		return crypto.Key{}, ui.Error.Sprint("✗") + " Failed to resolve the archive key\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	}
}
