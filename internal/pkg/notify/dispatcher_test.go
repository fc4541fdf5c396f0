package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CampusFound/CampusFound/app/models"
)

func TestNewClaim(t *testing.T) {
	t.Parallel()

	n := NewClaim(7, "Black Wallet", 42)

	assert.Equal(t, uint(7), n.UserID)
	assert.Equal(t, models.NotificationTypeClaim, n.Type)
	assert.Equal(t, "New Claim", n.Title)
	assert.Equal(t, "Someone has claimed your found item: Black Wallet", n.Message)
	assert.Equal(t, "/claims/42", n.Link)
}

func TestClaimDecision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      string
		message     string
		wantTitle   string
		wantMessage string
	}{
		{
			name:        "approved with owner message",
			status:      models.ClaimStatusApproved,
			message:     "it's yours",
			wantTitle:   "Claim Approved",
			wantMessage: "Your claim for the item has been approved: it's yours",
		},
		{
			name:        "rejected without message",
			status:      models.ClaimStatusRejected,
			message:     "",
			wantTitle:   "Claim Rejected",
			wantMessage: "Your claim for the item has been rejected",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n := ClaimDecision(3, 42, tt.status, tt.message)

			assert.Equal(t, uint(3), n.UserID)
			assert.Equal(t, models.NotificationTypeClaimUpdate, n.Type)
			assert.Equal(t, tt.wantTitle, n.Title)
			assert.Equal(t, tt.wantMessage, n.Message)
			assert.Equal(t, "/claims/42", n.Link)
		})
	}
}

func TestWelcome(t *testing.T) {
	t.Parallel()

	n := Welcome(1, "Alex")
	assert.Equal(t, models.NotificationTypeWelcome, n.Type)
	assert.Contains(t, n.Message, "Alex")
}

func TestNewMessage(t *testing.T) {
	t.Parallel()

	n := NewMessage(5, "Sam", 9)
	assert.Equal(t, models.NotificationTypeMessage, n.Type)
	assert.Equal(t, "Sam sent you a message", n.Message)
	assert.Equal(t, "/messages/9", n.Link)
}
