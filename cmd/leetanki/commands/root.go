package commands

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"leetanki/lib/configutil"
	"leetanki/lib/scrapers/leetcode"
	"leetanki/lib/serviceutil"
	"leetanki/lib/sqliteutil"
	"leetanki/services/ingest"
	"leetanki/services/ingest/db"

	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl    string `json:"base_url"`
	CookiePath string `json:"cookie_path"`
	Database   string `json:"database"`
}

var rootCmd = &cobra.Command{
	Use:   "leetanki",
	Short: "leetanki pulls your solved problems, notes and submissions into a local database and renders them as anki cards.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}
	if cfg.Database == "" {
		cfg.Database = "data/leetanki.db"
	}
	return cfg
}

func openDatabase(cfg Config) *sql.DB {
	database, err := sqliteutil.OpenDB(db.Schema, cfg.Database)
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}
	return database
}

// openSession builds the remote client and logs in, interactively if no
// saved cookie bundle exists.
func openSession(ctx context.Context, cfg Config) *leetcode.Client {
	client, err := leetcode.NewClient(ctx, leetcode.ClientOptions{
		BaseUrl:    cfg.BaseUrl,
		CookiePath: cfg.CookiePath,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize client", err)
	}

	err = client.ObtainSession(ctx)
	if err != nil {
		serviceutil.Fatal("failed to obtain session", err)
	}
	return client
}

func openIngest(ctx context.Context, cfg Config, database *sql.DB) ingest.Service {
	client := openSession(ctx, cfg)
	return ingest.NewService(database, client, ingest.Options{})
}
