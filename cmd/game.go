package cmd

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nisaba-tools/tablet/internal/archive"
	"github.com/nisaba-tools/tablet/internal/configs"
	"github.com/nisaba-tools/tablet/internal/generate"
	"github.com/nisaba-tools/tablet/internal/ui"
)

var (
	gameArchive   string
	gameRounds    int
	gameGenerator string
	gameSynthetic string
)

func init() {
	gameCmd.Flags().StringVarP(&gameArchive, "archive", "f", "", "path to the encrypted archive (default from tablet.toml)")
	gameCmd.Flags().IntVarP(&gameRounds, "rounds", "r", 5, "number of rounds")
	gameCmd.Flags().StringVar(&gameGenerator, "generator", "", "external command printing one synthetic proverb")
	gameCmd.Flags().StringVar(&gameSynthetic, "synthetic-file", "", "file of pre-generated synthetic proverbs, one per line")
}

// resetGameCommandState resets the game command's global state for testing.
func resetGameCommandState() {
	gameArchive = ""
	gameRounds = 5
	gameGenerator = ""
	gameSynthetic = ""
}

var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Plays Sumerian or Synthetic",
	Long: `Shows proverbs one at a time; you guess whether each is Sumerian (from the
archive) or Synthetic (model-generated). Synthetic proverbs come from an
external generator command (--generator) or a pre-generated file
(--synthetic-file); the archive itself knows nothing about the model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting game command")

		settings, err := configs.LoadSettings(".")
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load settings: %v", err)
		}

		path := gameArchive
		if path == "" {
			path = settings.Archive
		}

		if gameRounds < 1 {
			fmt.Println(ui.Error.Sprint("✗") + " " + ui.Code.Sprint("--rounds") + " must be at least 1")
			return nil
		}

		source, errMsg := syntheticSource()
		if errMsg != "" {
			fmt.Println(errMsg)
			return nil
		}

		proverbs, errMsg := readArchiveOrExplain(path, settings.KeyEnv)
		if errMsg != "" {
			fmt.Println(errMsg)
			return nil
		}
		if len(proverbs) == 0 {
			fmt.Println(ui.Error.Sprint("✗") + " The archive holds no proverbs to play with")
			return nil
		}

		// Decide round types up front and pre-generate every synthetic
		// proverb so rounds play without generation delays.
		roundIsReal := make([]bool, gameRounds)
		synthetic := 0
		for i := range roundIsReal {
			roundIsReal[i] = rand.IntN(2) == 0
			if !roundIsReal[i] {
				synthetic++
			}
		}

		var syntheticTexts []string
		if synthetic > 0 {
			spinner, cleanup := startSpinner(fmt.Sprintf("Generating %d synthetic proverb(s)...", synthetic), verbose)
			for range synthetic {
				text, err := source.Generate()
				if err != nil {
					spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to generate synthetic proverbs\n" +
						ui.Error.Sprint("Error: ") + err.Error()
					cleanup()
					return nil
				}
				syntheticTexts = append(syntheticTexts, text)
			}
			cleanup()
		}

		if term.IsTerminal(int(os.Stdout.Fd())) {
			figure.NewColorFigure("Tablet", "alligator2", "green", true).Print()
		}
		fmt.Println("Sumerian or Synthetic? — proverb edition")
		fmt.Println("You'll see a proverb. Type 1 for Sumerian (from the archive), 2 for Synthetic.")
		fmt.Println()

		score := 0
		input := bufio.NewScanner(cmd.InOrStdin())
		nextSynthetic := 0
		for r := 1; r <= gameRounds; r++ {
			isReal := roundIsReal[r-1]
			var text string
			if isReal {
				_, p, err := archive.Pick(proverbs)
				if err != nil {
					return Logger.ErrorfAndReturn("Failed to pick a proverb: %v", err)
				}
				text = p.Text
			} else {
				text = syntheticTexts[nextSynthetic]
				nextSynthetic++
			}

			fmt.Printf("--- Round %d/%d ---\n", r, gameRounds)
			fmt.Printf("%q\n", text)

			guess, ok := readGuess(input)
			if !ok {
				fmt.Println(ui.Warning.Sprint("⚠") + " Input closed; ending the game early")
				break
			}

			correct := (guess == "1") == isReal
			if correct {
				score++
				fmt.Println(ui.Success.Sprint("Correct!"))
			} else {
				fmt.Println(ui.Error.Sprint("Wrong!"))
			}
			if isReal {
				fmt.Println("It was SUMERIAN")
			} else {
				fmt.Println("It was SYNTHETIC")
			}
			fmt.Println()
		}

		fmt.Printf("Score: %d/%d\n", score, gameRounds)
		return nil
	},
}

// readGuess keeps prompting until the player types 1 or 2. The second return
// value is false when input is closed.
func readGuess(input *bufio.Scanner) (string, bool) {
	for {
		fmt.Print("Sumerian (1) or Synthetic (2)? ")
		if !input.Scan() {
			return "", false
		}
		guess := strings.TrimSpace(input.Text())
		if guess == "1" || guess == "2" {
			return guess, true
		}
		fmt.Println("Type 1 or 2.")
	}
}

// syntheticSource picks the generator for this game: a file of pre-generated
// proverbs, or an external command run per round.
func syntheticSource() (generate.Generator, string) {
	if gameSynthetic != "" {
		source, err := generate.LoadFileSource(gameSynthetic)
		if err != nil {
			return nil, ui.Error.Sprint("✗") + " Failed to load " + ui.Path.Sprint(gameSynthetic) + "\n" +
				ui.Error.Sprint("Error: ") + err.Error()
		}
		return source, ""
	}

	// A blank or whitespace-only --generator has no command to run.
	if fields := strings.Fields(gameGenerator); len(fields) > 0 {
		return &generate.CommandGenerator{Name: fields[0], Args: fields[1:]}, ""
	}

	return nil, ui.Error.Sprint("✗") + " No synthetic proverb source\n" +
		ui.Info.Sprint("→") + " Pass " + ui.Code.Sprint("--generator <command>") + " or " +
		ui.Code.Sprint("--synthetic-file <file>")
}
