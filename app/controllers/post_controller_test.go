package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CampusFound/CampusFound/app/models"
)

func TestNormalizeFilterDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"us format", "04/09/2026", []string{"04/09/2026", "2026-04-09"}},
		{"iso format", "2026-04-09", []string{"04/09/2026", "2026-04-09"}},
		{"unparseable passes through", "yesterday", []string{"yesterday"}},
		{"empty yields nil", "", nil},
		{"whitespace yields nil", "  ", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizeFilterDate(tt.input))
		})
	}
}

func TestPostJSONRedactsAnswers(t *testing.T) {
	t.Parallel()

	post := &models.Post{
		ID:         1,
		UserID:     10,
		ReportType: "found",
		ItemName:   "Black Wallet",
		VerificationQuestions: models.QuestionList{
			{Question: "Color?", Answer: "black"},
		},
	}

	// owner sees the answers
	ownerView := postJSON(post, 10)
	ownerQuestions, ok := ownerView["verification_questions"].(models.QuestionList)
	assert.True(t, ok)
	assert.Equal(t, "black", ownerQuestions[0].Answer)

	// everyone else gets the questions only
	visitorView := postJSON(post, 20)
	visitorQuestions, ok := visitorView["verification_questions"].([]models.VerificationQuestion)
	assert.True(t, ok)
	assert.Empty(t, visitorQuestions[0].Answer)

	anonView := postJSON(post, 0)
	anonQuestions, ok := anonView["verification_questions"].([]models.VerificationQuestion)
	assert.True(t, ok)
	assert.Empty(t, anonQuestions[0].Answer)
}
