package commands

import (
	"log/slog"

	"leetanki/lib/serviceutil"

	"github.com/spf13/cobra"
)

var topSlug *string
var topSize *int
var topPageSize *int

func init() {
	topSlug = topCmd.Flags().String("slug", "", "The company ranking list slug, e.g. amazon-all.")
	topSize = topCmd.Flags().Int("size", 0, "Number of questions to fetch.")
	topPageSize = topCmd.Flags().Int("page-size", 0, "Questions per request, 0 for the default.")
	topCmd.MarkFlagRequired("slug")
	topCmd.MarkFlagRequired("size")
	rootCmd.AddCommand(topCmd)
}

var topCmd = &cobra.Command{
	Use:   "top --slug <company-all> --size <n> [--page-size <n>]",
	Short: "Fetches a company ranking list in descending frequency order.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg := readConfig()

		database := openDatabase(cfg)
		defer database.Close()

		service := openIngest(ctx, cfg, database)

		fetched, err := service.FetchTopQuestions(ctx, *topSlug, *topSize, *topPageSize)
		if err != nil {
			serviceutil.Fatal("failed to fetch company ranking list", err)
		}
		slog.Info("company ranking list fetched", "slug", *topSlug, "count", fetched)
	},
}
