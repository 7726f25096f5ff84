package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nisaba-tools/tablet/internal/crypto"
	"github.com/nisaba-tools/tablet/internal/ui"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generates a fresh archive key and prints it",
	Long: `Generates a new random archive key and prints it in the form the
TABLET_ARCHIVE_KEY environment variable expects.

The key is printed once and stored nowhere. Anyone holding it can read the
archive; losing it makes every archive sealed under it unreadable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keygen command")

		key, err := crypto.GenerateKey()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to generate key: %v", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " New archive key generated:")
		fmt.Println("    " + crypto.EncodeKey(key))
		fmt.Println(ui.Info.Sprint("→") + " Export it before using the archive:")
		fmt.Println("    " + ui.Code.Sprint("export "+crypto.DefaultKeyEnv+"=<key>"))
		fmt.Println("  A " + ui.Path.Sprint(".env") + " file in the working directory works too.")
		fmt.Println("  Keep it out of version control; there is no recovery without it.")

		Logger.Infof("Keygen command completed successfully")
		return nil
	},
}
