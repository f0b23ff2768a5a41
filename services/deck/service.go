// Package deck renders ingested problems into an Anki-importable
// tab-separated deck, one card per problem.
package deck

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"html"
	"io"
	"log/slog"
	"strings"

	"leetanki/services/ingest/db"

	"github.com/PuerkitoBio/goquery"
	"github.com/jedib0t/go-pretty/v6/table"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/deck")

type Service struct {
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{qry: db.New(database)}
}

// stripHtml reduces a problem description to its text content. Invalid
// markup falls back to the raw input rather than dropping the card.
func stripHtml(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return strings.TrimSpace(doc.Text())
}

// brEscape prepares a multi-line field for a single tsv cell. Anki
// renders card fields as html, so line breaks survive as <br> tags and
// literal tabs must not reach the writer.
func brEscape(text string) string {
	text = strings.ReplaceAll(text, "\t", "    ")
	return strings.ReplaceAll(text, "\n", "<br>")
}

func cardFront(problem db.Problem, tags []db.Tag) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s [%s]", problem.DisplayID, problem.Title, problem.Level)
	if len(tags) > 0 {
		names := make([]string, len(tags))
		for i, tag := range tags {
			names[i] = tag.Name
		}
		fmt.Fprintf(&b, "\n%s", strings.Join(names, ", "))
	}
	return b.String()
}

func cardBack(problem db.Problem, submission *db.Submission) string {
	parts := []string{stripHtml(problem.Description)}

	for _, section := range []string{
		problem.ClarifyQuestions,
		problem.Edgecases,
		problem.Approaches,
		problem.Mistakes,
		problem.Note,
	} {
		if section != "" {
			parts = append(parts, section)
		}
	}

	if submission != nil {
		parts = append(parts, fmt.Sprintf(
			"<pre>// %s\n%s</pre>",
			submission.Language,
			html.EscapeString(submission.Source),
		))
	}

	return strings.Join(parts, "\n\n")
}

// Render writes one front<tab>back line per ingested problem and
// returns the number of cards written.
func (s Service) Render(ctx context.Context, w io.Writer) (int, error) {
	ctx, span := tracer.Start(ctx, "Render")
	defer span.End()

	problems, err := s.qry.ListProblems(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	written := 0
	for _, problem := range problems {
		tags, err := s.qry.ListProblemTags(ctx, problem.ID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return written, err
		}

		var submission *db.Submission
		sub, err := s.qry.GetSubmissionBySlug(ctx, problem.Slug)
		if err == nil {
			submission = &sub
		} else if !errors.Is(err, sql.ErrNoRows) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return written, err
		}

		_, err = fmt.Fprintf(
			w, "%s\t%s\n",
			brEscape(cardFront(problem, tags)),
			brEscape(cardBack(problem, submission)),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return written, err
		}
		written++
	}

	slog.Info("deck rendered", "cards", written)
	return written, nil
}

// Summary prints an overview table of everything stored locally.
func (s Service) Summary(ctx context.Context, w io.Writer) error {
	ctx, span := tracer.Start(ctx, "Summary")
	defer span.End()

	problems, err := s.qry.ListProblems(ctx)
	if err != nil {
		return err
	}

	accepted := 0
	annotated := 0
	withCode := 0
	for _, problem := range problems {
		if problem.Accepted {
			accepted++
		}
		if problem.ClarifyQuestions != "" {
			annotated++
		}
		_, err := s.qry.GetSubmissionBySlug(ctx, problem.Slug)
		if err == nil {
			withCode++
		} else if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
	}

	favourites, err := s.qry.CountFavouriteQuestions(ctx)
	if err != nil {
		return err
	}
	top, err := s.qry.CountTopQuestions(ctx)
	if err != nil {
		return err
	}
	tracked, err := s.qry.ListTrackEntries(ctx)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"kind", "count"})
	t.AppendRow(table.Row{"problems", len(problems)})
	t.AppendRow(table.Row{"accepted", accepted})
	t.AppendRow(table.Row{"annotated", annotated})
	t.AppendRow(table.Row{"with submission code", withCode})
	t.AppendRow(table.Row{"favourite list rows", favourites})
	t.AppendRow(table.Row{"company ranking rows", top})
	t.AppendRow(table.Row{"tracked titles", len(tracked)})
	t.Render()
	return nil
}
