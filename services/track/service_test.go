package track

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"leetanki/lib/sqliteutil"
	"leetanki/lib/telemetry"
	"leetanki/services/ingest/db"

	"github.com/stretchr/testify/require"
)

func setup(t testing.TB) (Service, *db.Queries, func()) {
	cleanup := telemetry.SetupForTesting(t, "test:services/track")

	sqlite, err := sqliteutil.OpenDB(db.Schema, ":memory:")
	if err != nil {
		t.Fatal(err)
	}

	return NewService(sqlite), db.New(sqlite), func() {
		sqlite.Close()
		cleanup()
	}
}

func TestSync(t *testing.T) {
	service, queries, cleanup := setup(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	path := filepath.Join(t.TempDir(), "leetcode-tracker.csv")
	err := os.WriteFile(path, []byte(
		"Week,Problem,Difficulty\n"+
			"1,Two Sum,Easy\n"+
			"1,Add Two Numbers,Medium\n"+
			"2,,\n",
	), 0644)
	require.NoError(t, err)

	loaded, err := service.Sync(ctx, path)
	require.NoError(t, err)
	require.Equal(t, 2, loaded)

	entries, err := queries.ListTrackEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		require.Equal(t, StatusTodo, entry.Status)
	}

	// re-sync replaces rather than duplicates
	loaded, err = service.Sync(ctx, path)
	require.NoError(t, err)
	require.Equal(t, 2, loaded)

	entries, err = queries.ListTrackEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestSyncMissingColumn(t *testing.T) {
	service, _, cleanup := setup(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	path := filepath.Join(t.TempDir(), "bad.csv")
	err := os.WriteFile(path, []byte("Week,Title\n1,Two Sum\n"), 0644)
	require.NoError(t, err)

	_, err = service.Sync(ctx, path)
	require.Error(t, err)
}

func TestLink(t *testing.T) {
	service, queries, cleanup := setup(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	now := time.Now().Unix()
	for _, problem := range []db.CreateProblemParams{
		{ID: 1, DisplayID: 1, Slug: "two-sum", Title: "Two Sum", Level: "Easy", CreateTime: now, UpdateTime: now},
		{ID: 2, DisplayID: 2, Slug: "add-two-numbers", Title: "Add Two Numbers", Level: "Medium", CreateTime: now, UpdateTime: now},
	} {
		require.NoError(t, queries.CreateProblem(ctx, problem))
	}

	for _, title := range []string{"Two Sum", "Add 2 Numbers"} {
		require.NoError(t, queries.UpsertTrackEntry(ctx, db.UpsertTrackEntryParams{
			Title:  title,
			Status: StatusTodo,
		}))
	}

	links, err := service.Link(ctx)
	require.NoError(t, err)
	require.Len(t, links, 2)

	bySlug := map[string]Link{}
	for _, link := range links {
		bySlug[link.Slug] = link
	}

	exact := bySlug["two-sum"]
	require.Equal(t, "Two Sum", exact.TrackTitle)
	require.Equal(t, float64(1), exact.Correlation)

	fuzzy := bySlug["add-two-numbers"]
	require.Equal(t, "Add 2 Numbers", fuzzy.TrackTitle)
	require.Greater(t, fuzzy.Correlation, 0.8)
	require.Less(t, fuzzy.Correlation, 1.0)
}
