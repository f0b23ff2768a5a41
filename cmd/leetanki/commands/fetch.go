package commands

import (
	"log/slog"
	"os"
	"time"

	"leetanki/lib/serviceutil"
	"leetanki/services/deck"

	"github.com/spf13/cobra"
)

var fetchWithSolution *bool
var fetchAccepted *bool
var fetchDeckOut *string

func init() {
	fetchWithSolution = fetchCmd.Flags().Bool("with-solution", false, "Also fetch solutions, notes and submission code for favourites.")
	fetchAccepted = fetchCmd.Flags().Bool("accepted", false, "Sweep every solved problem instead of the favourites set.")
	fetchDeckOut = fetchCmd.Flags().String("deck-out", "anki-deck.tsv", "Where to write the rendered deck afterwards.")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch [--accepted] [--with-solution] [--deck-out <path>]",
	Short: "Ingests problems from the remote and re-renders the deck.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg := readConfig()

		database := openDatabase(cfg)
		defer database.Close()

		service := openIngest(ctx, cfg, database)

		t1 := time.Now()
		var count int
		var err error
		if *fetchAccepted {
			count, err = service.FetchAcceptedProblems(ctx)
		} else {
			count, err = service.FetchFavouriteProblems(ctx, *fetchWithSolution)
		}
		if err != nil {
			serviceutil.Fatal("fetch failed", err)
		}
		slog.Info("fetch finished", "new_problems", count, "seconds", time.Since(t1).Seconds())

		out, err := os.Create(*fetchDeckOut)
		if err != nil {
			serviceutil.Fatal("failed to create deck file", err)
		}
		defer out.Close()

		cards, err := deck.NewService(database).Render(ctx, out)
		if err != nil {
			serviceutil.Fatal("failed to render deck", err)
		}
		slog.Info("deck written", "path", *fetchDeckOut, "cards", cards)
	},
}
