package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"leetanki/lib/scrapers/leetcode"
	"leetanki/lib/sqliteutil"
	"leetanki/lib/telemetry"
	"leetanki/services/ingest/db"

	"github.com/stretchr/testify/require"
)

// fakeClient serves a canned remote history and counts calls so tests
// can assert on how often the remote was contacted.
type fakeClient struct {
	details     map[string]*leetcode.QuestionDetail
	notes       map[string]*leetcode.QuestionNote
	submissions map[string][]leetcode.SubmissionSummary
	code        map[int64]string
	listPages   func(slug string, skip, limit int) *leetcode.FavoriteQuestionList
	status      *leetcode.ProblemStatusList
	statusErr   error

	detailCalls     int
	listCalls       int
	submissionCalls int
	codeCalls       int
	invalidated     bool
}

func (f *fakeClient) QuestionDetail(ctx context.Context, slug string) (*leetcode.QuestionDetail, error) {
	f.detailCalls++
	return f.details[slug], nil
}

func (f *fakeClient) QuestionNote(ctx context.Context, slug string) (*leetcode.QuestionNote, error) {
	return f.notes[slug], nil
}

func (f *fakeClient) FavoriteQuestions(ctx context.Context, favoriteSlug string, skip, limit int, sort leetcode.SortBy) (*leetcode.FavoriteQuestionList, error) {
	f.listCalls++
	if f.listPages == nil {
		return nil, nil
	}
	return f.listPages(favoriteSlug, skip, limit), nil
}

func (f *fakeClient) Submissions(ctx context.Context, slug string, offset, limit int) (*leetcode.SubmissionList, error) {
	f.submissionCalls++
	return &leetcode.SubmissionList{Submissions: f.submissions[slug]}, nil
}

func (f *fakeClient) SubmissionCode(ctx context.Context, submissionId int64) (string, error) {
	f.codeCalls++
	return f.code[submissionId], nil
}

func (f *fakeClient) ProblemStatusList(ctx context.Context) (*leetcode.ProblemStatusList, error) {
	return f.status, f.statusErr
}

func (f *fakeClient) InvalidateSession() error {
	f.invalidated = true
	return nil
}

func setup(t testing.TB, client *fakeClient) (Service, *db.Queries, func()) {
	cleanup := telemetry.SetupForTesting(t, "test:services/ingest")

	sqlite, err := sqliteutil.OpenDB(db.Schema, ":memory:")
	if err != nil {
		t.Fatal(err)
	}

	s := NewService(sqlite, client, Options{
		WaitMin: time.Nanosecond,
		WaitMax: time.Nanosecond,
	})
	return s, db.New(sqlite), func() {
		sqlite.Close()
		cleanup()
	}
}

func twoSumDetail() *leetcode.QuestionDetail {
	return &leetcode.QuestionDetail{
		QuestionId:         "1",
		QuestionFrontendId: "1",
		QuestionTitle:      "Two Sum",
		QuestionTitleSlug:  "two-sum",
		Content:            "<p>Given an array of integers...</p>",
		Difficulty:         "Easy",
		TopicTags: []leetcode.TopicTag{
			{Name: "Array", Slug: "array"},
			{Name: "Hash Table", Slug: "hash-table"},
		},
	}
}

func TestFetchProblemIdempotent(t *testing.T) {
	client := &fakeClient{
		details: map[string]*leetcode.QuestionDetail{"two-sum": twoSumDetail()},
	}
	service, queries, cleanup := setup(t, client)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := service.FetchProblem(ctx, "two-sum", true)
	require.NoError(t, err)
	require.Equal(t, 1, client.detailCalls)

	problem, err := queries.GetProblemBySlug(ctx, "two-sum")
	require.NoError(t, err)
	require.Equal(t, int64(1), problem.ID)
	require.Equal(t, "Two Sum", problem.Title)
	require.Equal(t, "Easy", problem.Level)
	require.True(t, problem.Accepted)

	tags, err := queries.ListProblemTags(ctx, problem.ID)
	require.NoError(t, err)
	require.Len(t, tags, 2)

	// simulate annotations written by a previous solution fetch
	err = queries.UpdateProblemNotes(ctx, db.UpdateProblemNotesParams{
		ClarifyQuestions: "🔹 Clarify Questions:\n  - sorted input?",
		Approaches:       "🔹 Approaches:\nhash map",
		Mistakes:         "🔹 Mistakes:\n  - None",
		Edgecases:        "🔹 Edge Cases:\n  - None",
		Note:             "🔹 Note:\nNone",
		UpdateTime:       problem.UpdateTime,
		Slug:             "two-sum",
	})
	require.NoError(t, err)

	// a second fetch must not contact the remote or touch the row
	err = service.FetchProblem(ctx, "two-sum", true)
	require.NoError(t, err)
	require.Equal(t, 1, client.detailCalls)

	problem, err = queries.GetProblemBySlug(ctx, "two-sum")
	require.NoError(t, err)
	require.Equal(t, "🔹 Clarify Questions:\n  - sorted input?", problem.ClarifyQuestions)

	tags, err = queries.ListProblemTags(ctx, problem.ID)
	require.NoError(t, err)
	require.Len(t, tags, 2)
}

func TestFetchProblemUnknownSlug(t *testing.T) {
	client := &fakeClient{details: map[string]*leetcode.QuestionDetail{}}
	service, queries, cleanup := setup(t, client)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := service.FetchProblem(ctx, "no-such-problem", false)
	require.Error(t, err)

	_, err = queries.GetProblemBySlug(ctx, "no-such-problem")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestFetchSolution(t *testing.T) {
	note := "clarify questions:\n- can values repeat?\nedgecases:\napproaches:\nuse sliding window\nmistakes:\n  - None\nnote:\nsingle pass"
	client := &fakeClient{
		details: map[string]*leetcode.QuestionDetail{"two-sum": twoSumDetail()},
		notes: map[string]*leetcode.QuestionNote{
			"two-sum": {
				QuestionId: "1",
				Note:       note,
				Solution: &leetcode.SolutionInfo{
					Id:      "10",
					Content: "official editorial body",
				},
			},
		},
	}
	service, queries, cleanup := setup(t, client)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := service.FetchProblem(ctx, "two-sum", true)
	require.NoError(t, err)
	err = service.FetchSolution(ctx, "two-sum")
	require.NoError(t, err)

	problem, err := queries.GetProblemBySlug(ctx, "two-sum")
	require.NoError(t, err)
	require.Equal(t, "🔹 Clarify Questions:\n  - can values repeat?", problem.ClarifyQuestions)
	require.Equal(t, "🔹 Edge Cases:\n  - None", problem.Edgecases)
	require.Equal(t, "🔹 Approaches:\nuse sliding window", problem.Approaches)
	require.Equal(t, "🔹 Mistakes:\n  - None", problem.Mistakes)
	require.Equal(t, "🔹 Note:\nsingle pass", problem.Note)

	solution, err := queries.GetSolution(ctx, problem.ID)
	require.NoError(t, err)
	require.Equal(t, "official editorial body", solution.Content)
	require.Equal(t, "https://leetcode.com/articles/two-sum/", solution.Url)
}

func TestFetchSolutionPaywalled(t *testing.T) {
	client := &fakeClient{
		details: map[string]*leetcode.QuestionDetail{"two-sum": twoSumDetail()},
		notes: map[string]*leetcode.QuestionNote{
			"two-sum": {
				QuestionId: "1",
				Note:       "clarify questions:\n- anything?",
				Solution:   &leetcode.SolutionInfo{Id: "10", PaidOnly: true},
			},
		},
	}
	service, queries, cleanup := setup(t, client)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := service.FetchProblem(ctx, "two-sum", true)
	require.NoError(t, err)
	err = service.FetchSolution(ctx, "two-sum")
	require.NoError(t, err)

	problem, err := queries.GetProblemBySlug(ctx, "two-sum")
	require.NoError(t, err)
	require.Equal(t, "", problem.ClarifyQuestions)

	_, err = queries.GetSolution(ctx, problem.ID)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestFetchSubmissionAtMostOne(t *testing.T) {
	client := &fakeClient{
		submissions: map[string][]leetcode.SubmissionSummary{
			"two-sum": {
				{Id: "300", StatusDisplay: "Wrong Answer", Lang: "python3", Timestamp: "1715000300"},
				{Id: "200", StatusDisplay: "Accepted", Lang: "python3", Timestamp: "1715000200"},
				{Id: "100", StatusDisplay: "Accepted", Lang: "golang", Timestamp: "1715000100"},
			},
		},
		code: map[int64]string{
			200: "def twoSum(self, nums, target): ...",
			100: "func twoSum(nums []int, target int) []int { ... }",
		},
	}
	service, queries, cleanup := setup(t, client)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := service.FetchSubmission(ctx, "two-sum")
	require.NoError(t, err)
	require.Equal(t, 1, client.submissionCalls)
	require.Equal(t, 1, client.codeCalls)

	sub, err := queries.GetSubmissionBySlug(ctx, "two-sum")
	require.NoError(t, err)
	require.Equal(t, int64(200), sub.ID)
	require.Equal(t, "python3", sub.Language)
	require.Equal(t, "def twoSum(self, nums, target): ...", sub.Source)

	// a re-run against the same history ends before contacting the
	// remote: the later Accepted id must never become a second row
	err = service.FetchSubmission(ctx, "two-sum")
	require.NoError(t, err)
	require.Equal(t, 1, client.submissionCalls)
	require.Equal(t, 1, client.codeCalls)

	_, err = queries.GetSubmission(ctx, 100)
	require.ErrorIs(t, err, sql.ErrNoRows)

	sub, err = queries.GetSubmissionBySlug(ctx, "two-sum")
	require.NoError(t, err)
	require.Equal(t, int64(200), sub.ID)
}

func TestFetchSubmissionMissingCode(t *testing.T) {
	client := &fakeClient{
		submissions: map[string][]leetcode.SubmissionSummary{
			"two-sum": {
				{Id: "200", StatusDisplay: "Accepted", Lang: "python3", Timestamp: "1715000200"},
			},
		},
		code: map[int64]string{},
	}
	service, queries, cleanup := setup(t, client)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := service.FetchSubmission(ctx, "two-sum")
	require.ErrorIs(t, err, ErrMissingSubmissionCode)

	_, err = queries.GetSubmissionBySlug(ctx, "two-sum")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestFetchFavouriteQuestionsPagination(t *testing.T) {
	questions := make([]leetcode.ListQuestion, 5)
	for i := range questions {
		questions[i] = leetcode.ListQuestion{
			Id:                 fmt.Sprint(i + 1),
			QuestionFrontendId: fmt.Sprint(i + 1),
			Title:              fmt.Sprintf("Problem %d", i+1),
			TitleSlug:          fmt.Sprintf("problem-%d", i+1),
			Status:             "ac",
		}
	}
	client := &fakeClient{
		listPages: func(slug string, skip, limit int) *leetcode.FavoriteQuestionList {
			end := min(skip+limit, len(questions))
			if skip >= end {
				return &leetcode.FavoriteQuestionList{}
			}
			return &leetcode.FavoriteQuestionList{
				Questions:   questions[skip:end],
				TotalLength: len(questions),
				HasMore:     end < len(questions),
			}
		},
	}
	service, queries, cleanup := setup(t, client)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	fetched, err := service.FetchFavouriteQuestions(ctx, "my-list", 5, 2)
	require.NoError(t, err)
	require.Equal(t, 5, fetched)
	require.Equal(t, 3, client.listCalls)

	count, err := queries.CountFavouriteQuestions(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(5), count)

	// a second pass re-requests the same pages but changes nothing
	fetched, err = service.FetchFavouriteQuestions(ctx, "my-list", 5, 2)
	require.NoError(t, err)
	require.Equal(t, 5, fetched)
	require.Equal(t, 6, client.listCalls)

	count, err = queries.CountFavouriteQuestions(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(5), count)
}

func TestFetchTopQuestions(t *testing.T) {
	client := &fakeClient{
		listPages: func(slug string, skip, limit int) *leetcode.FavoriteQuestionList {
			return &leetcode.FavoriteQuestionList{
				Questions: []leetcode.ListQuestion{
					{
						Id:                 "1",
						QuestionFrontendId: "1",
						Title:              "Two Sum",
						TitleSlug:          "two-sum",
						Status:             "ac",
						Frequency:          93.5,
					},
				},
			}
		},
	}
	service, queries, cleanup := setup(t, client)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	fetched, err := service.FetchTopQuestions(ctx, "amazon-all", 1, 50)
	require.NoError(t, err)
	require.Equal(t, 1, fetched)

	count, err := queries.CountTopQuestions(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	question, err := queries.GetTopQuestion(ctx, "two-sum")
	require.NoError(t, err)
	require.Equal(t, "1. Two Sum", question.Title)
	require.Equal(t, "amazon", question.Company)
	require.Equal(t, 93.5, question.Frequency)
	require.Equal(t, "ac", question.Status)
}

func TestCompanyName(t *testing.T) {
	for slug, want := range map[string]string{
		"amazon-all":              "amazon",
		"google-all":              "google",
		"facebook-six-months-all": "facebook",
		"bytedance":               "bytedance",
	} {
		require.Equal(t, want, companyName(slug), "slug %q", slug)
	}
}

func TestFetchAcceptedProblems(t *testing.T) {
	client := &fakeClient{
		details: map[string]*leetcode.QuestionDetail{"two-sum": twoSumDetail()},
		notes:   map[string]*leetcode.QuestionNote{},
		submissions: map[string][]leetcode.SubmissionSummary{
			"two-sum": {
				{Id: "200", StatusDisplay: "Accepted", Lang: "golang", Timestamp: "1715000200"},
			},
		},
		code: map[int64]string{200: "func twoSum() {}"},
		status: &leetcode.ProblemStatusList{
			UserName: "alice",
			StatStatusPairs: []leetcode.StatStatusPair{
				{
					Stat:   leetcode.ProblemStat{QuestionId: 1, QuestionTitle: "Two Sum", QuestionTitleSlug: "two-sum"},
					Status: "ac",
				},
				{
					Stat:   leetcode.ProblemStat{QuestionId: 2, QuestionTitle: "Add Two Numbers", QuestionTitleSlug: "add-two-numbers"},
					Status: "notac",
				},
			},
		},
	}
	service, queries, cleanup := setup(t, client)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	count, err := service.FetchAcceptedProblems(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	problems, err := queries.ListProblems(ctx)
	require.NoError(t, err)
	require.Len(t, problems, 1)
	require.Equal(t, "two-sum", problems[0].Slug)

	sub, err := queries.GetSubmissionBySlug(ctx, "two-sum")
	require.NoError(t, err)
	require.Equal(t, int64(200), sub.ID)

	// second sweep finds nothing new
	count, err = service.FetchAcceptedProblems(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestFetchFavouriteProblems(t *testing.T) {
	client := &fakeClient{
		details: map[string]*leetcode.QuestionDetail{
			"two-sum":         twoSumDetail(),
			"add-two-numbers": {QuestionId: "2", QuestionFrontendId: "2", QuestionTitle: "Add Two Numbers", QuestionTitleSlug: "add-two-numbers", Difficulty: "Medium"},
		},
		notes:       map[string]*leetcode.QuestionNote{},
		submissions: map[string][]leetcode.SubmissionSummary{},
		status: &leetcode.ProblemStatusList{
			UserName: "alice",
			StatStatusPairs: []leetcode.StatStatusPair{
				{
					Stat:   leetcode.ProblemStat{QuestionId: 1, QuestionTitle: "Two Sum", QuestionTitleSlug: "two-sum"},
					Status: "ac",
				},
				{
					Stat:   leetcode.ProblemStat{QuestionId: 2, QuestionTitle: "Add Two Numbers", QuestionTitleSlug: "add-two-numbers"},
					Status: "",
				},
			},
		},
	}
	service, queries, cleanup := setup(t, client)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	// only add-two-numbers is a tracked favourite
	err := queries.UpsertFavouriteQuestion(ctx, db.UpsertFavouriteQuestionParams{
		Slug: "add-two-numbers", Title: "Add Two Numbers", Status: "",
	})
	require.NoError(t, err)

	count, err := service.FetchFavouriteProblems(ctx, false)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	problems, err := queries.ListProblems(ctx)
	require.NoError(t, err)
	require.Len(t, problems, 1)
	require.Equal(t, "add-two-numbers", problems[0].Slug)
	require.False(t, problems[0].Accepted)
}

func TestSweepAuthDenied(t *testing.T) {
	client := &fakeClient{statusErr: leetcode.ErrAuthDenied}
	service, _, cleanup := setup(t, client)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	_, err := service.FetchAcceptedProblems(ctx)
	require.ErrorIs(t, err, leetcode.ErrAuthDenied)
	require.True(t, client.invalidated)
}
