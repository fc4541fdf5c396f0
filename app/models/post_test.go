package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeReportType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "found", NormalizeReportType("Found"))
	assert.Equal(t, "found", NormalizeReportType("  FOUND "))
	assert.Equal(t, "lost", NormalizeReportType("lost"))
}

func TestPostIsFound(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Post{ReportType: "found"}).IsFound())
	assert.True(t, (&Post{ReportType: "FOUND"}).IsFound(), "report type checks are case-insensitive")
	assert.False(t, (&Post{ReportType: "lost"}).IsFound())
}

func TestQuestionsOnlyStripsAnswers(t *testing.T) {
	t.Parallel()

	post := &Post{
		VerificationQuestions: QuestionList{
			{Question: "Color?", Answer: "red"},
			{Question: "Brand?", Answer: "Acme"},
		},
	}

	stripped := post.QuestionsOnly()
	require.Len(t, stripped, 2)
	for i, q := range stripped {
		assert.Equal(t, post.VerificationQuestions[i].Question, q.Question)
		assert.Empty(t, q.Answer, "answers must never leave QuestionsOnly")
	}
}

func TestQuestionListRoundTrip(t *testing.T) {
	t.Parallel()

	questions := QuestionList{{Question: "Color?", Answer: "red"}}

	value, err := questions.Value()
	require.NoError(t, err)

	var scanned QuestionList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, questions, scanned)
}
