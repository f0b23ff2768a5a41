package leetcode

const questionDetailQuery = `query getQuestionDetail($titleSlug: String!) {
    question(titleSlug: $titleSlug) {
        questionId
        questionFrontendId
        questionTitle
        questionTitleSlug
        content
        difficulty
        topicTags {
            name
            slug
        }
    }
}`

const questionNoteQuery = `query QuestionNote($titleSlug: String!) {
    question(titleSlug: $titleSlug) {
        questionId
        note
        solution {
            id
            content
            canSeeDetail
            paidOnly
        }
    }
}`

const favoriteQuestionListQuery = `query favoriteQuestionList(
    $favoriteSlug: String!,
    $filtersV2: QuestionFilterInput,
    $searchKeyword: String,
    $sortBy: QuestionSortByInput,
    $limit: Int,
    $skip: Int,
    $version: String = "v2"
) {
    favoriteQuestionList(
        favoriteSlug: $favoriteSlug
        filtersV2: $filtersV2
        searchKeyword: $searchKeyword
        sortBy: $sortBy
        limit: $limit
        skip: $skip
        version: $version
    ) {
        questions {
            id
            questionFrontendId
            title
            titleSlug
            difficulty
            status
            frequency
        }
        totalLength
        hasMore
    }
}`

const submissionListQuery = `query Submissions($offset: Int!, $limit: Int!, $lastKey: String, $questionSlug: String!) {
    submissionList(offset: $offset, limit: $limit, lastKey: $lastKey, questionSlug: $questionSlug) {
        lastKey
        hasNext
        submissions {
            id
            statusDisplay
            lang
            timestamp
        }
    }
}`

const submissionDetailsQuery = `query submissionDetails($submissionId: Int!) {
    submissionDetails(submissionId: $submissionId) {
        code
        timestamp
    }
}`
