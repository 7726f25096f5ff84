package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nisaba-tools/tablet/internal/archive"
	"github.com/nisaba-tools/tablet/internal/configs"
	"github.com/nisaba-tools/tablet/internal/ui"
)

var (
	exportArchive string
	exportOutput  string
	exportPrompt  string
)

func init() {
	exportCmd.Flags().StringVarP(&exportArchive, "archive", "f", "", "path to the encrypted archive (default from tablet.toml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "-", "output file, or - for stdout")
	exportCmd.Flags().StringVar(&exportPrompt, "prompt", "Proverb: ", "prompt prefix for each training line")
}

// resetExportCommandState resets the export command's global state for testing.
func resetExportCommandState() {
	exportArchive = ""
	exportOutput = "-"
	exportPrompt = "Proverb: "
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes the plaintext training corpus",
	Long: `Decrypts the archive and writes the training corpus, one prompt-prefixed
proverb per line. Editorial-only entries are excluded; the trainer fine-tunes
on real proverbs, not on "3 lines unclear".

The output is plaintext. Treat it with the same care as the key.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting export command")

		settings, err := configs.LoadSettings(".")
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load settings: %v", err)
		}

		path := exportArchive
		if path == "" {
			path = settings.Archive
		}

		proverbs, errMsg := readArchiveOrExplain(path, settings.KeyEnv)
		if errMsg != "" {
			fmt.Println(errMsg)
			return nil
		}

		var sb strings.Builder
		count := 0
		for _, p := range proverbs {
			text := strings.TrimSpace(p.Text)
			if text == "" || !archive.IsSubstantive(text) {
				continue
			}
			sb.WriteString(exportPrompt)
			sb.WriteString(text)
			sb.WriteString("\n")
			count++
		}
		Logger.Infof("Exporting %d of %d proverbs", count, len(proverbs))

		if count == 0 {
			fmt.Println(ui.Error.Sprint("✗") + " No substantive proverbs to export")
			return nil
		}

		if exportOutput == "-" {
			fmt.Print(sb.String())
			return nil
		}

		if err := os.WriteFile(exportOutput, []byte(sb.String()), 0600); err != nil {
			return Logger.ErrorfAndReturn("Failed to write corpus: %v", err)
		}
		fmt.Println(ui.Success.Sprint("✓") + fmt.Sprintf(" Wrote %d training lines to ", count) + ui.Path.Sprint(exportOutput))
		Logger.WarnfUser("%s is plaintext; delete it once the trainer is done with it", exportOutput)
		return nil
	},
}
