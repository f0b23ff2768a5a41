package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"leetanki/lib/scrapers/leetcode"
	"leetanki/services/ingest/db"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// companyName derives a company label from a ranking-list slug, e.g.
// "amazon-all" -> "amazon", "facebook-six-months-all" -> "facebook".
func companyName(listSlug string) string {
	trimmed := strings.TrimSuffix(listSlug, "-all")
	return strings.SplitN(trimmed, "-", 2)[0]
}

// FetchFavouriteQuestions pages through a hand-curated favourites list
// in its manual order and upserts a membership row per question. The
// fetch is bounded by the caller-supplied total, not by the remote's
// "has more" flag: exactly ceil(total/pageSize) pages are requested.
func (s Service) FetchFavouriteQuestions(ctx context.Context, listSlug string, total, pageSize int) (int, error) {
	ctx, span := tracer.Start(ctx, "FetchFavouriteQuestions")
	defer span.End()
	span.SetAttributes(attribute.String("slug", listSlug), attribute.Int("total", total))

	slog.Info("fetching favourite list", "slug", listSlug, "total", total)

	if pageSize <= 0 {
		pageSize = defaultListPageSize
	}

	fetched := 0
	for skip := 0; skip < total; skip += pageSize {
		limit := min(pageSize, total-skip)
		list, err := s.client.FavoriteQuestions(ctx, listSlug, skip, limit, leetcode.SortCustom)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return fetched, err
		}
		if list == nil {
			continue
		}

		for _, question := range list.Questions {
			err := s.qry.UpsertFavouriteQuestion(ctx, db.UpsertFavouriteQuestionParams{
				Slug:   question.TitleSlug,
				Title:  question.Title,
				Status: question.Status,
			})
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return fetched, err
			}
		}
		fetched += len(list.Questions)
	}

	slog.Info("favourite list fetched", "slug", listSlug, "count", fetched)
	return fetched, nil
}

// FetchTopQuestions pages through a company ranking list in descending
// frequency order and upserts a membership row per question, annotated
// with the company label and frequency score.
func (s Service) FetchTopQuestions(ctx context.Context, companySlug string, total, pageSize int) (int, error) {
	ctx, span := tracer.Start(ctx, "FetchTopQuestions")
	defer span.End()
	span.SetAttributes(attribute.String("slug", companySlug), attribute.Int("total", total))

	slog.Info("fetching company ranking list", "slug", companySlug, "total", total)

	if pageSize <= 0 {
		pageSize = defaultListPageSize
	}
	company := companyName(companySlug)

	fetched := 0
	for skip := 0; skip < total; skip += pageSize {
		limit := min(pageSize, total-skip)
		list, err := s.client.FavoriteQuestions(ctx, companySlug, skip, limit, leetcode.SortFrequency)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return fetched, err
		}
		if list == nil {
			continue
		}

		for _, question := range list.Questions {
			err := s.qry.UpsertTopQuestion(ctx, db.UpsertTopQuestionParams{
				Slug:      question.TitleSlug,
				Title:     fmt.Sprintf("%s. %s", question.QuestionFrontendId, question.Title),
				Status:    question.Status,
				Company:   company,
				Frequency: question.Frequency,
			})
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return fetched, err
			}
		}
		fetched += len(list.Questions)
	}

	slog.Info("company ranking list fetched", "slug", companySlug, "count", fetched)
	return fetched, nil
}
