// Package ingest coordinates the per-problem fetch sequences against the
// remote api and persists normalized records through the db layer.
package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"leetanki/lib/notetext"
	"leetanki/lib/scrapers/leetcode"
	"leetanki/services/ingest/db"

	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/ingest")

// ErrMissingSubmissionCode signals that a code fetch for an already
// identified Accepted submission returned nothing. Silently skipping
// would leave a permanently missing submission, so this aborts the
// enclosing operation instead.
var ErrMissingSubmissionCode = fmt.Errorf("submission code fetch returned no code")

// submissions are listed with a fixed page size, only the first page is
// ever scanned
const submissionPageSize = 20

const defaultListPageSize = 200

// QueryClient is the slice of the leetcode client the orchestrator
// consumes, split out so tests can fabricate remote histories.
type QueryClient interface {
	QuestionDetail(ctx context.Context, slug string) (*leetcode.QuestionDetail, error)
	QuestionNote(ctx context.Context, slug string) (*leetcode.QuestionNote, error)
	FavoriteQuestions(ctx context.Context, favoriteSlug string, skip, limit int, sort leetcode.SortBy) (*leetcode.FavoriteQuestionList, error)
	Submissions(ctx context.Context, slug string, offset, limit int) (*leetcode.SubmissionList, error)
	SubmissionCode(ctx context.Context, submissionId int64) (string, error)
	ProblemStatusList(ctx context.Context) (*leetcode.ProblemStatusList, error)
	InvalidateSession() error
}

type Service struct {
	qry    *db.Queries
	client QueryClient

	waitMin time.Duration
	waitMax time.Duration
}

type Options struct {
	// bounds of the randomized pause after each remote call. both zero
	// means the default of 10s to 15s, the range the remote tolerates
	// without throttling.
	WaitMin time.Duration
	WaitMax time.Duration
}

func NewService(database *sql.DB, client QueryClient, opts Options) Service {
	if opts.WaitMin == 0 && opts.WaitMax == 0 {
		opts.WaitMin = time.Second * 10
		opts.WaitMax = time.Second * 15
	}
	return Service{
		qry:     db.New(database),
		client:  client,
		waitMin: opts.WaitMin,
		waitMax: opts.WaitMax,
	}
}

// wait pauses for a random duration within the configured range. This
// is a rate-limit measure, not a correctness requirement.
func (s Service) wait(ctx context.Context) {
	span := s.waitMax - s.waitMin
	pause := s.waitMin
	if span > 0 {
		ms, err := random.IntRange(0, int(span.Milliseconds())+1)
		if err == nil {
			pause += time.Duration(ms) * time.Millisecond
		}
	}
	if pause <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(pause):
	}
}

func warnIfUnparsed(slug string, sections notetext.Sections) {
	if sections.ClarifyQuestions == notetext.Sentinel {
		slog.Warn("personal note could not be parsed", "slug", slug)
	}
}
