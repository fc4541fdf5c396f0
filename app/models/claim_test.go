package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidDecision(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidDecision(ClaimStatusApproved))
	assert.True(t, IsValidDecision(ClaimStatusRejected))
	assert.False(t, IsValidDecision(ClaimStatusPending))
	assert.False(t, IsValidDecision(""))
	assert.False(t, IsValidDecision("Approved"), "decision values are case-sensitive")
}

func TestClaimIsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, (&Claim{Status: ClaimStatusPending}).IsTerminal())
	assert.True(t, (&Claim{Status: ClaimStatusApproved}).IsTerminal())
	assert.True(t, (&Claim{Status: ClaimStatusRejected}).IsTerminal())
}

func TestClaimCanBeDecidedBy(t *testing.T) {
	t.Parallel()

	claim := &Claim{UserID: 2, PostOwnerID: 1}

	assert.True(t, claim.CanBeDecidedBy(1), "post owner decides")
	assert.False(t, claim.CanBeDecidedBy(2), "claimant does not")
	assert.False(t, claim.CanBeDecidedBy(3), "third parties do not")
}

func TestAnswerListRoundTrip(t *testing.T) {
	t.Parallel()

	answers := AnswerList{
		{Question: "Color?", Answer: "red"},
		{Question: "Brand?", Answer: "Acme"},
	}

	value, err := answers.Value()
	require.NoError(t, err)

	var scanned AnswerList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, answers, scanned)
}

func TestAnswerListScanNil(t *testing.T) {
	t.Parallel()

	var answers AnswerList
	require.NoError(t, answers.Scan(nil))
	assert.Empty(t, answers)

	value, err := AnswerList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value, "nil list stores as empty JSON array")
}
