package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nisaba-tools/tablet/internal/configs"
	"github.com/nisaba-tools/tablet/internal/ui"
)

var (
	initArchive string
	initPages   string
	initForce   bool
)

func init() {
	initCmd.Flags().StringVar(&initArchive, "archive", configs.DefaultArchive, "archive path to record")
	initCmd.Flags().StringVar(&initPages, "pages", "pages", "ETCSL pages directory to record")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing tablet.toml")
}

// resetInitCommandState resets the init command's global state for testing.
func resetInitCommandState() {
	initArchive = configs.DefaultArchive
	initPages = "pages"
	initForce = false
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes a tablet.toml with the project settings",
	Long: `Writes a tablet.toml in the current directory recording the archive path
and the ETCSL pages directory, so the other commands need no flags.

The file never holds the key; only the name of the environment variable
the key lives in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")

		if !initForce {
			if _, err := os.Stat(configs.SettingsFile); err == nil {
				fmt.Println(ui.Error.Sprint("✗ ") + ui.Path.Sprint(configs.SettingsFile) + " already exists\n" +
					"To overwrite it, run: " + ui.Code.Sprint("tablet init --force"))
				return nil
			}
		}

		settings := configs.DefaultSettings()
		settings.Archive = initArchive
		settings.Pages = initPages

		if err := configs.SaveTOML(configs.SettingsFile, settings); err != nil {
			return Logger.ErrorfAndReturn("Failed to write settings: %v", err)
		}

		Logger.Infof("Init command completed successfully")
		fmt.Println(ui.Success.Sprint("✓") + " Wrote " + ui.Path.Sprint(configs.SettingsFile))
		fmt.Println(ui.Info.Sprint("→") + " Generate a key with " + ui.Code.Sprint("tablet keygen") +
			", then build the archive with " + ui.Code.Sprint("tablet create"))
		return nil
	},
}
