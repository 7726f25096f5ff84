package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nisaba-tools/tablet/internal/archive"
	"github.com/nisaba-tools/tablet/internal/configs"
	"github.com/nisaba-tools/tablet/internal/ui"
)

var (
	showArchive string
	showQuiet   bool
)

func init() {
	showCmd.Flags().StringVarP(&showArchive, "archive", "f", "", "path to the encrypted archive (default from tablet.toml)")
	showCmd.Flags().BoolVarP(&showQuiet, "quiet", "q", false, "print only the proverb text")
}

// resetShowCommandState resets the show command's global state for testing.
func resetShowCommandState() {
	showArchive = ""
	showQuiet = false
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints one random proverb from the archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting show command")

		settings, err := configs.LoadSettings(".")
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load settings: %v", err)
		}

		path := showArchive
		if path == "" {
			path = settings.Archive
		}

		proverbs, errMsg := readArchiveOrExplain(path, settings.KeyEnv)
		if errMsg != "" {
			fmt.Println(errMsg)
			return nil
		}

		_, proverb, err := archive.Pick(proverbs)
		if err != nil {
			fmt.Println(ui.Error.Sprint("✗") + " The archive holds no proverbs")
			return nil
		}
		Logger.Debugf("Picked proverb %d of composition %s", proverb.Number, proverb.Composition)

		if showQuiet {
			fmt.Println(proverb.Text)
			return nil
		}

		fmt.Println(ui.Info.Sprintf("Composition %s, proverb %d", proverb.Composition, proverb.Number))
		fmt.Println(ui.Muted.Sprintf("Wisdom score: %d/10", proverb.Wisdom))
		fmt.Println(proverb.Text)
		return nil
	},
}
