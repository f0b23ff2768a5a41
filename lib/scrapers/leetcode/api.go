package leetcode

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel/codes"
)

// SortBy selects the remote ordering of a favourite/company list.
type SortBy struct {
	Field string
	Order string
}

var (
	// manual order of a hand-curated favourites list
	SortCustom = SortBy{Field: "CUSTOM", Order: "ASCENDING"}
	// company ranking lists are ordered by descending frequency
	SortFrequency = SortBy{Field: "FREQUENCY", Order: "DESCENDING"}
)

func (c *Client) QuestionDetail(ctx context.Context, slug string) (*QuestionDetail, error) {
	var data struct {
		Question *QuestionDetail `json:"question"`
	}
	err := c.graphql(ctx, "getQuestionDetail", questionDetailQuery, map[string]any{
		"titleSlug": slug,
	}, &data)
	if err != nil {
		return nil, err
	}
	return data.Question, nil
}

func (c *Client) QuestionNote(ctx context.Context, slug string) (*QuestionNote, error) {
	var data struct {
		Question *QuestionNote `json:"question"`
	}
	err := c.graphql(ctx, "QuestionNote", questionNoteQuery, map[string]any{
		"titleSlug": slug,
	}, &data)
	if err != nil {
		return nil, err
	}
	return data.Question, nil
}

func (c *Client) FavoriteQuestions(ctx context.Context, favoriteSlug string, skip, limit int, sort SortBy) (*FavoriteQuestionList, error) {
	var data struct {
		FavoriteQuestionList *FavoriteQuestionList `json:"favoriteQuestionList"`
	}
	err := c.graphql(ctx, "favoriteQuestionList", favoriteQuestionListQuery, map[string]any{
		"favoriteSlug": favoriteSlug,
		"limit":        limit,
		"skip":         skip,
		"filtersV2": map[string]any{
			"filterCombineType": "ALL",
			"statusFilter":      map[string]any{"questionStatuses": []string{}, "operator": "IS"},
			"difficultyFilter":  map[string]any{"difficulties": []string{}, "operator": "IS"},
			"topicFilter":       map[string]any{"topicSlugs": []string{}, "operator": "IS"},
		},
		"sortBy": map[string]any{
			"sortField": sort.Field,
			"sortOrder": sort.Order,
		},
		"searchKeyword": "",
	}, &data)
	if err != nil {
		return nil, err
	}
	return data.FavoriteQuestionList, nil
}

func (c *Client) Submissions(ctx context.Context, slug string, offset, limit int) (*SubmissionList, error) {
	var data struct {
		SubmissionList *SubmissionList `json:"submissionList"`
	}
	err := c.graphql(ctx, "Submissions", submissionListQuery, map[string]any{
		"offset":       offset,
		"limit":        limit,
		"lastKey":      "",
		"questionSlug": slug,
	}, &data)
	if err != nil {
		return nil, err
	}
	return data.SubmissionList, nil
}

func (c *Client) SubmissionCode(ctx context.Context, submissionId int64) (string, error) {
	var data struct {
		SubmissionDetails *SubmissionDetails `json:"submissionDetails"`
	}
	err := c.graphql(ctx, "submissionDetails", submissionDetailsQuery, map[string]any{
		"submissionId": submissionId,
	}, &data)
	if err != nil {
		return "", err
	}
	if data.SubmissionDetails == nil {
		return "", nil
	}
	return data.SubmissionDetails.Code, nil
}

// ProblemStatusList fetches the full problem-status listing the bulk
// sweeps iterate over. An anonymous-session shape yields ErrAuthDenied
// so callers can invalidate the cookie bundle and re-login.
func (c *Client) ProblemStatusList(ctx context.Context) (*ProblemStatusList, error) {
	ctx, span := tracer.Start(ctx, "client:ProblemStatusList")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get("/api/problems/all/")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}

	var list ProblemStatusList
	err = json.Unmarshal(res.Body(), &list)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse json response")
		return nil, fmt.Errorf("failed to parse problem status listing: %w", err)
	}

	if list.UserName == "" {
		span.SetStatus(codes.Error, ErrAuthDenied.Error())
		return nil, ErrAuthDenied
	}
	return &list, nil
}
