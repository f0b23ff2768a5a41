package ingest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"leetanki/lib/notetext"
	"leetanki/services/ingest/db"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// FetchProblem pulls full metadata for a problem and creates its row
// along with any unseen tags and the tag join rows. The annotation
// fields start out empty, they are only ever filled by FetchSolution.
//
// This path is insert-only: when the problem already exists locally the
// remote is not contacted at all, which is what protects previously
// stored annotations from being clobbered.
func (s Service) FetchProblem(ctx context.Context, slug string, accepted bool) error {
	ctx, span := tracer.Start(ctx, "FetchProblem")
	defer span.End()
	span.SetAttributes(attribute.String("slug", slug))

	_, err := s.qry.GetProblemBySlug(ctx, slug)
	if err == nil {
		slog.Debug("problem already ingested, skipping detail fetch", "slug", slug)
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	slog.Info("fetching problem", "slug", slug)

	question, err := s.client.QuestionDetail(ctx, slug)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if question == nil {
		err := fmt.Errorf("remote returned no question for slug %q", slug)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	id, err := strconv.ParseInt(question.QuestionId, 10, 64)
	if err != nil {
		return fmt.Errorf("unparsable question id %q: %w", question.QuestionId, err)
	}
	displayId, err := strconv.ParseInt(question.QuestionFrontendId, 10, 64)
	if err != nil {
		return fmt.Errorf("unparsable frontend id %q: %w", question.QuestionFrontendId, err)
	}

	now := time.Now().Unix()
	err = s.qry.CreateProblem(ctx, db.CreateProblemParams{
		ID:          id,
		DisplayID:   displayId,
		Slug:        slug,
		Title:       question.QuestionTitle,
		Level:       question.Difficulty,
		Description: question.Content,
		Accepted:    accepted,
		CreateTime:  now,
		UpdateTime:  now,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	for _, tag := range question.TopicTags {
		_, err := s.qry.GetTag(ctx, tag.Slug)
		if errors.Is(err, sql.ErrNoRows) {
			err = s.qry.CreateTag(ctx, db.CreateTagParams{
				Slug: tag.Slug,
				Name: tag.Name,
			})
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}

		err = s.qry.UpsertProblemTag(ctx, db.UpsertProblemTagParams{
			ProblemID: id,
			TagSlug:   tag.Slug,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	s.wait(ctx)
	return nil
}

// FetchSolution pulls the note/solution payload for a problem and, when
// a non-paywalled solution exists, decomposes the personal note text
// into the five annotation fields of the existing problem row. This is
// the one path permitted to overwrite annotations.
func (s Service) FetchSolution(ctx context.Context, slug string) error {
	ctx, span := tracer.Start(ctx, "FetchSolution")
	defer span.End()
	span.SetAttributes(attribute.String("slug", slug))

	slog.Info("fetching solution", "slug", slug)

	note, err := s.client.QuestionNote(ctx, slug)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if note != nil && note.Solution != nil && !note.Solution.PaidOnly {
		sections := notetext.Decompose(note.Note)
		warnIfUnparsed(slug, sections)

		err = s.qry.UpdateProblemNotes(ctx, db.UpdateProblemNotesParams{
			ClarifyQuestions: sections.ClarifyQuestions,
			Approaches:       sections.Approaches,
			Mistakes:         sections.Mistakes,
			Edgecases:        sections.Edgecases,
			Note:             sections.Note,
			UpdateTime:       time.Now().Unix(),
			Slug:             slug,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}

		problemId, err := strconv.ParseInt(note.QuestionId, 10, 64)
		if err == nil {
			err = s.qry.UpsertSolution(ctx, db.UpsertSolutionParams{
				ProblemID: problemId,
				Content:   note.Solution.Content,
				Url:       fmt.Sprintf("https://leetcode.com/articles/%s/", slug),
			})
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return err
			}
		}
	}

	s.wait(ctx)
	return nil
}
