package cmd

import (
	logger "github.com/nisaba-tools/tablet/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// RootCmd is the tablet command tree.
	RootCmd = &cobra.Command{
		Use:   "tablet",
		Short: "Tablet - an encrypted archive of Sumerian proverbs.",
		Long: `Tablet keeps a corpus of Sumerian proverbs encrypted at rest and serves
it to whoever holds the key: a trainer that wants the whole corpus, a game
that samples one proverb at a time, or just you, looking for wisdom.

The archive key lives in the TABLET_ARCHIVE_KEY environment variable
(a .env file works too). Generate one with 'tablet keygen'.

Usage:
  tablet <command> [flags]

Available Commands:
  init       Write a tablet.toml with the project settings
  keygen     Generate a fresh archive key
  create     Build the encrypted archive from proverb sources
  show       Print one random proverb from the archive
  export     Write the plaintext training corpus
  game       Play Sumerian or Synthetic

Run 'tablet help <command>' for more details on a specific command.
`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing tablet command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(keygenCmd)
	RootCmd.AddCommand(createCmd)
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(gameCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetInitCommandState()
	resetCreateCommandState()
	resetShowCommandState()
	resetExportCommandState()
	resetGameCommandState()
	resetCobraFlagState()
}

// resetCobraFlagState clears flag Changed markers to prevent test pollution.
func resetCobraFlagState() {
	for _, c := range RootCmd.Commands() {
		c.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
