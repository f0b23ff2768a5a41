package commands

import (
	"log/slog"
	"os"

	"leetanki/lib/serviceutil"
	"leetanki/services/deck"

	"github.com/spf13/cobra"
)

var deckOut *string

func init() {
	deckOut = deckCmd.Flags().String("out", "anki-deck.tsv", "Where to write the deck.")
	rootCmd.AddCommand(deckCmd)
	rootCmd.AddCommand(summaryCmd)
}

var deckCmd = &cobra.Command{
	Use:   "deck [--out <path/to/deck.tsv>]",
	Short: "Renders everything stored locally as an anki-importable tsv.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()

		database := openDatabase(cfg)
		defer database.Close()

		out, err := os.Create(*deckOut)
		if err != nil {
			serviceutil.Fatal("failed to create deck file", err)
		}
		defer out.Close()

		cards, err := deck.NewService(database).Render(cmd.Context(), out)
		if err != nil {
			serviceutil.Fatal("failed to render deck", err)
		}
		slog.Info("deck written", "path", *deckOut, "cards", cards)
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Prints an overview of everything stored locally.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()

		database := openDatabase(cfg)
		defer database.Close()

		err := deck.NewService(database).Summary(cmd.Context(), os.Stdout)
		if err != nil {
			serviceutil.Fatal("failed to build summary", err)
		}
	},
}
