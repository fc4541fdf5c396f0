// Package verification compares a claimant's answers against a post's
// verification questions. The comparison is advisory: it is computed at
// review time for display, never stored, and never approves a claim on
// its own. The post owner always makes the final call.
package verification

import (
	"strings"

	"github.com/CampusFound/CampusFound/app/models"
)

// AnswerCheck is the per-question row of the review matrix shown to the
// post owner.
type AnswerCheck struct {
	Question       string `json:"question"`
	GivenAnswer    string `json:"given_answer"`
	ExpectedAnswer string `json:"expected_answer"`
	Match          bool   `json:"match"`
	// Applicable is false when the claim answer has no positional
	// counterpart in the post's current question list ("N/A" in the UI).
	Applicable bool `json:"applicable"`
}

// Compare aligns the claim's answers positionally with the post's current
// verification questions. Matching is a case-insensitive string equality
// with no whitespace normalization. Extra answers without a counterpart
// question are reported as not applicable rather than an error.
func Compare(questions models.QuestionList, answers models.AnswerList) []AnswerCheck {
	checks := make([]AnswerCheck, 0, len(answers))
	for i, ans := range answers {
		check := AnswerCheck{
			Question:    ans.Question,
			GivenAnswer: ans.Answer,
		}
		if i < len(questions) {
			check.Applicable = true
			check.ExpectedAnswer = questions[i].Answer
			check.Match = strings.EqualFold(ans.Answer, questions[i].Answer)
		}
		checks = append(checks, check)
	}
	return checks
}

// AllMatch reports whether every applicable answer matched. Purely
// informational; callers must not auto-approve on it.
func AllMatch(checks []AnswerCheck) bool {
	for _, c := range checks {
		if !c.Applicable || !c.Match {
			return false
		}
	}
	return len(checks) > 0
}
