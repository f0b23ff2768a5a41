package ingest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"leetanki/services/ingest/db"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// FetchSubmission scans the most recent submissions for a problem in the
// order the remote returns them and persists the first Accepted one,
// code included. At most one submission is ever stored per problem: a
// stored row for the slug ends the call before any remote interaction.
func (s Service) FetchSubmission(ctx context.Context, slug string) error {
	ctx, span := tracer.Start(ctx, "FetchSubmission")
	defer span.End()
	span.SetAttributes(attribute.String("slug", slug))

	// one submission per problem: once a row exists for this slug the
	// remote is not contacted again
	_, err := s.qry.GetSubmissionBySlug(ctx, slug)
	if err == nil {
		slog.Debug("submission already stored, skipping fetch", "slug", slug)
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	slog.Info("fetching submissions", "slug", slug)

	list, err := s.client.Submissions(ctx, slug, 0, submissionPageSize)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if list != nil {
		for _, sub := range list.Submissions {
			id, err := strconv.ParseInt(sub.Id, 10, 64)
			if err != nil {
				return fmt.Errorf("unparsable submission id %q: %w", sub.Id, err)
			}

			_, err = s.qry.GetSubmission(ctx, id)
			if err == nil {
				continue
			}
			if !errors.Is(err, sql.ErrNoRows) {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return err
			}

			if sub.StatusDisplay != "Accepted" {
				continue
			}

			code, err := s.client.SubmissionCode(ctx, id)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return err
			}
			if code == "" {
				// the id itself is not persisted on failure, a re-run
				// will attempt this submission again
				err := fmt.Errorf("%w: problem %q submission %d", ErrMissingSubmissionCode, slug, id)
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return err
			}

			submittedAt, err := strconv.ParseInt(sub.Timestamp, 10, 64)
			if err != nil {
				return fmt.Errorf("unparsable submission timestamp %q: %w", sub.Timestamp, err)
			}
			err = s.qry.CreateSubmission(ctx, db.CreateSubmissionParams{
				ID:          id,
				Slug:        slug,
				Language:    sub.Lang,
				Source:      code,
				SubmittedAt: submittedAt,
				CreateTime:  time.Now().Unix(),
			})
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return err
			}

			slog.Info("saved accepted submission", "slug", slug, "id", id, "lang", sub.Lang)
			break
		}
	}

	s.wait(ctx)
	return nil
}
