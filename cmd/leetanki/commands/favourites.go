package commands

import (
	"log/slog"

	"leetanki/lib/serviceutil"

	"github.com/spf13/cobra"
)

var favouritesSlug *string
var favouritesSize *int
var favouritesPageSize *int

func init() {
	favouritesSlug = favouritesCmd.Flags().String("slug", "", "The slug of the favourites list.")
	favouritesSize = favouritesCmd.Flags().Int("size", 0, "Number of questions to fetch.")
	favouritesPageSize = favouritesCmd.Flags().Int("page-size", 0, "Questions per request, 0 for the default.")
	favouritesCmd.MarkFlagRequired("slug")
	favouritesCmd.MarkFlagRequired("size")
	rootCmd.AddCommand(favouritesCmd)
}

var favouritesCmd = &cobra.Command{
	Use:   "favourites --slug <list-slug> --size <n> [--page-size <n>]",
	Short: "Fetches the membership of a hand-curated favourites list.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg := readConfig()

		database := openDatabase(cfg)
		defer database.Close()

		service := openIngest(ctx, cfg, database)

		fetched, err := service.FetchFavouriteQuestions(ctx, *favouritesSlug, *favouritesSize, *favouritesPageSize)
		if err != nil {
			serviceutil.Fatal("failed to fetch favourites list", err)
		}
		slog.Info("favourites list fetched", "slug", *favouritesSlug, "count", fetched)
	},
}
