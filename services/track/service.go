// Package track mirrors a hand-maintained practice tracker file into the
// database and links its rows to ingested problems by title.
package track

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"leetanki/services/ingest/db"

	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/track")

const StatusTodo = "TO_DO"

// titleColumn is the header name of the column holding problem titles
// in the tracker export.
const titleColumn = "Problem"

type Service struct {
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{qry: db.New(database)}
}

// Sync bulk-loads the tracker file into track_entries, replacing the
// status of every listed title with TO_DO. Returns the number of rows
// loaded.
func (s Service) Sync(ctx context.Context, path string) (int, error) {
	ctx, span := tracer.Start(ctx, "Sync")
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	file, err := os.Open(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("tracker file %q is empty", path)
	}

	titleIdx := -1
	for i, name := range rows[0] {
		if name == titleColumn {
			titleIdx = i
			break
		}
	}
	if titleIdx < 0 {
		return 0, fmt.Errorf("tracker file %q has no %q column", path, titleColumn)
	}

	loaded := 0
	for _, row := range rows[1:] {
		title := row[titleIdx]
		if title == "" {
			continue
		}
		err := s.qry.UpsertTrackEntry(ctx, db.UpsertTrackEntryParams{
			Title:  title,
			Status: StatusTodo,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return loaded, err
		}
		loaded++
	}

	slog.Info("tracker synced", "path", path, "rows", loaded)
	return loaded, nil
}

// Link pairs a tracked title with an ingested problem.
type Link struct {
	TrackTitle  string
	Slug        string
	Correlation float64
}

// Link matches tracked titles against ingested problem titles, exact
// matches first, then best Jaro-Winkler similarity for the remainder.
// Every tracked title ends up in the result; unmatched ones carry an
// empty slug.
func (s Service) Link(ctx context.Context) ([]Link, error) {
	ctx, span := tracer.Start(ctx, "Link")
	defer span.End()

	entries, err := s.qry.ListTrackEntries(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	problems, err := s.qry.ListProblems(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	slugByTitle := make(map[string]string, len(problems))
	for _, problem := range problems {
		slugByTitle[problem.Title] = problem.Slug
	}

	var result []Link
	var remaining []db.TrackEntry
	for _, entry := range entries {
		slug, ok := slugByTitle[entry.Title]
		if ok {
			result = append(result, Link{
				TrackTitle:  entry.Title,
				Slug:        slug,
				Correlation: 1,
			})
			continue
		}
		remaining = append(remaining, entry)
	}

	for _, entry := range remaining {
		var mostSimilarity float64
		var mostSimilarSlug string

		for title, slug := range slugByTitle {
			similarity := matchr.JaroWinkler(entry.Title, title, false)
			if similarity > mostSimilarity {
				mostSimilarity = similarity
				mostSimilarSlug = slug
			}
		}

		result = append(result, Link{
			TrackTitle:  entry.Title,
			Slug:        mostSimilarSlug,
			Correlation: mostSimilarity,
		})
	}

	return result, nil
}
