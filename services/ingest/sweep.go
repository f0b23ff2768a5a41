package ingest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"leetanki/lib/scrapers/leetcode"

	"go.opentelemetry.io/otel/codes"
)

// statusList fetches the problem-status listing and handles the
// authentication-denied shape by invalidating the cookie bundle so the
// next run falls back to interactive login.
func (s Service) statusList(ctx context.Context) (*leetcode.ProblemStatusList, error) {
	list, err := s.client.ProblemStatusList(ctx)
	if errors.Is(err, leetcode.ErrAuthDenied) {
		slog.Error("session rejected by remote, invalidating saved cookies")
		invErr := s.client.InvalidateSession()
		if invErr != nil {
			return nil, errors.Join(err, invErr)
		}
		return nil, fmt.Errorf("%w: cookies invalidated, re-run to login again", err)
	}
	return list, err
}

// ingestProblem runs the detail(+solution) fetch for a problem that is
// not yet stored locally and reports whether it was new. The submission
// fetch always runs when requested, submissions may appear long after
// the problem metadata was first captured.
func (s Service) ingestProblem(ctx context.Context, stat leetcode.ProblemStat, accepted, withSolution, withSubmission bool) (bool, error) {
	isNew := false

	_, err := s.qry.GetProblem(ctx, stat.QuestionId)
	if errors.Is(err, sql.ErrNoRows) {
		isNew = true
		err = s.FetchProblem(ctx, stat.QuestionTitleSlug, accepted)
		if err != nil {
			return false, err
		}
		if withSolution {
			err = s.FetchSolution(ctx, stat.QuestionTitleSlug)
			if err != nil {
				return false, err
			}
		}
	} else if err != nil {
		return false, err
	}

	if withSubmission {
		err = s.FetchSubmission(ctx, stat.QuestionTitleSlug)
		if err != nil {
			return isNew, err
		}
	}
	return isNew, nil
}

// FetchAcceptedProblems sweeps the full problem-status listing and
// ingests every solved problem that is not yet stored locally. Returns
// how many new problems were ingested.
func (s Service) FetchAcceptedProblems(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "FetchAcceptedProblems")
	defer span.End()

	list, err := s.statusList(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	counter := 0
	for _, pair := range list.StatStatusPairs {
		if pair.Status != "ac" {
			continue
		}

		isNew, err := s.ingestProblem(ctx, pair.Stat, true, true, true)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return counter, err
		}
		if isNew {
			counter++
		}
	}

	slog.Info("accepted sweep finished", "new_problems", counter)
	return counter, nil
}

// FetchFavouriteProblems sweeps the full problem-status listing and
// ingests every problem present in the locally tracked favourites set.
// Solution and submission fetches are optional, favourites may not have
// been attempted yet.
func (s Service) FetchFavouriteProblems(ctx context.Context, withSolution bool) (int, error) {
	ctx, span := tracer.Start(ctx, "FetchFavouriteProblems")
	defer span.End()

	list, err := s.statusList(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	counter := 0
	for _, pair := range list.StatStatusPairs {
		_, err := s.qry.GetFavouriteQuestion(ctx, pair.Stat.QuestionTitleSlug)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return counter, err
		}

		isNew, err := s.ingestProblem(ctx, pair.Stat, pair.Status == "ac", withSolution, withSolution)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return counter, err
		}
		if isNew {
			counter++
		}
	}

	slog.Info("favourites sweep finished", "new_problems", counter)
	return counter, nil
}
