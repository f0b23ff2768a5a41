package leetcode

// graphql ids arrive as strings, rest ids as numbers. only the fields
// the ingestion pipeline consumes are modeled.

type TopicTag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type QuestionDetail struct {
	QuestionId         string     `json:"questionId"`
	QuestionFrontendId string     `json:"questionFrontendId"`
	QuestionTitle      string     `json:"questionTitle"`
	QuestionTitleSlug  string     `json:"questionTitleSlug"`
	Content            string     `json:"content"`
	Difficulty         string     `json:"difficulty"`
	TopicTags          []TopicTag `json:"topicTags"`
}

type SolutionInfo struct {
	Id           string `json:"id"`
	Content      string `json:"content"`
	CanSeeDetail bool   `json:"canSeeDetail"`
	PaidOnly     bool   `json:"paidOnly"`
}

type QuestionNote struct {
	QuestionId string        `json:"questionId"`
	Note       string        `json:"note"`
	Solution   *SolutionInfo `json:"solution"`
}

type ListQuestion struct {
	Id                 string  `json:"id"`
	QuestionFrontendId string  `json:"questionFrontendId"`
	Title              string  `json:"title"`
	TitleSlug          string  `json:"titleSlug"`
	Difficulty         string  `json:"difficulty"`
	Status             string  `json:"status"`
	Frequency          float64 `json:"frequency"`
}

type FavoriteQuestionList struct {
	Questions   []ListQuestion `json:"questions"`
	TotalLength int            `json:"totalLength"`
	HasMore     bool           `json:"hasMore"`
}

type SubmissionSummary struct {
	Id            string `json:"id"`
	StatusDisplay string `json:"statusDisplay"`
	Lang          string `json:"lang"`
	Timestamp     string `json:"timestamp"`
}

type SubmissionList struct {
	LastKey     string              `json:"lastKey"`
	HasNext     bool                `json:"hasNext"`
	Submissions []SubmissionSummary `json:"submissions"`
}

type SubmissionDetails struct {
	Code      string `json:"code"`
	Timestamp int64  `json:"timestamp"`
}

// ProblemStat is the slice of the problem-status listing the sweeps
// consume.
type ProblemStat struct {
	QuestionId        int64  `json:"question_id"`
	QuestionTitle     string `json:"question__title"`
	QuestionTitleSlug string `json:"question__title_slug"`
}

type StatStatusPair struct {
	Stat     ProblemStat `json:"stat"`
	Status   string      `json:"status"`
	PaidOnly bool        `json:"paid_only"`
}

type ProblemStatusList struct {
	UserName        string           `json:"user_name"`
	StatStatusPairs []StatStatusPair `json:"stat_status_pairs"`
}
