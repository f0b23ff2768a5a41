package commands

import (
	"fmt"
	"log/slog"
	"os"

	"leetanki/lib/serviceutil"
	"leetanki/services/track"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var trackFile *string

func init() {
	trackFile = trackSyncCmd.Flags().String("file", "leetcode-tracker.csv", "The tracker csv to load.")
	trackCmd.AddCommand(trackSyncCmd)
	trackCmd.AddCommand(trackLinkCmd)
	rootCmd.AddCommand(trackCmd)
}

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Manages the practice tracker mirror.",
}

var trackSyncCmd = &cobra.Command{
	Use:   "sync [--file <path/to/tracker.csv>]",
	Short: "Loads the tracker csv into the database.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()

		database := openDatabase(cfg)
		defer database.Close()

		loaded, err := track.NewService(database).Sync(cmd.Context(), *trackFile)
		if err != nil {
			serviceutil.Fatal("failed to sync tracker", err)
		}
		slog.Info("tracker synced", "rows", loaded)
	},
}

var trackLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Matches tracked titles against ingested problems.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()

		database := openDatabase(cfg)
		defer database.Close()

		links, err := track.NewService(database).Link(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to link tracker", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"tracked title", "problem slug", "correlation"})
		for _, link := range links {
			t.AppendRow(table.Row{
				link.TrackTitle,
				link.Slug,
				fmt.Sprintf("%.3f", link.Correlation),
			})
		}
		t.Render()
	},
}
