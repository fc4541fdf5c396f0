// Package notify creates notification records as a side effect of other
// operations. Dispatch is best-effort: failures are logged and never
// propagated to the operation that triggered them.
package notify

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/CampusFound/CampusFound/app/models"
	"github.com/CampusFound/CampusFound/internal/pkg/mail"
)

// Notice is one notification to deliver.
type Notice struct {
	UserID  uint
	Type    string
	Title   string
	Message string
	Link    string
}

// Send persists the notice. Errors are logged, not returned: the parent
// operation must succeed even when the side channel fails.
func Send(db *gorm.DB, n Notice) {
	if db == nil {
		log.Printf("notification dispatch skipped for user %d (%s): no database", n.UserID, n.Type)
		return
	}
	if err := models.CreateNotification(db, n.UserID, n.Type, n.Title, n.Message, n.Link); err != nil {
		log.Printf("notification dispatch failed for user %d (%s): %v", n.UserID, n.Type, err)
	}
}

// SendWithMail persists the notice and additionally e-mails the recipient
// when SMTP is configured. Both legs are best-effort.
func SendWithMail(db *gorm.DB, n Notice, email string) {
	Send(db, n)
	if email == "" {
		return
	}
	if err := mail.SendMail(email, n.Title, "<p>"+n.Message+"</p>"); err != nil {
		log.Printf("notification mail failed for %s: %v", email, err)
	}
}

// NewClaim builds the post-owner notification for a freshly created claim.
func NewClaim(ownerID uint, itemName string, claimID uint) Notice {
	return Notice{
		UserID:  ownerID,
		Type:    models.NotificationTypeClaim,
		Title:   "New Claim",
		Message: fmt.Sprintf("Someone has claimed your found item: %s", itemName),
		Link:    fmt.Sprintf("/claims/%d", claimID),
	}
}

// ClaimDecision builds the claimant notification for an approve/reject
// transition. The owner's message, when present, is appended after a colon.
func ClaimDecision(claimantID uint, claimID uint, status, message string) Notice {
	title := "Claim Rejected"
	if status == models.ClaimStatusApproved {
		title = "Claim Approved"
	}
	body := fmt.Sprintf("Your claim for the item has been %s", status)
	if message != "" {
		body += ": " + message
	}
	return Notice{
		UserID:  claimantID,
		Type:    models.NotificationTypeClaimUpdate,
		Title:   title,
		Message: body,
		Link:    fmt.Sprintf("/claims/%d", claimID),
	}
}

// PossibleMatch builds the notification telling a user that another report
// looks like their item.
func PossibleMatch(userID uint, ownItem string, otherPostID uint, similarity float64) Notice {
	return Notice{
		UserID:  userID,
		Type:    models.NotificationTypeMatch,
		Title:   "Possible Match Found",
		Message: fmt.Sprintf("A report similar to %q was posted (%.0f%% match)", ownItem, similarity*100),
		Link:    fmt.Sprintf("/posts/%d", otherPostID),
	}
}

// Welcome builds the first notification for a new account.
func Welcome(userID uint, name string) Notice {
	return Notice{
		UserID:  userID,
		Type:    models.NotificationTypeWelcome,
		Title:   "Welcome to CampusFound",
		Message: fmt.Sprintf("Hi %s! Post a report when you lose or find something on campus.", name),
		Link:    "/",
	}
}

// NewMessage builds the receiver notification for a direct message.
func NewMessage(receiverID uint, senderName string, senderID uint) Notice {
	return Notice{
		UserID:  receiverID,
		Type:    models.NotificationTypeMessage,
		Title:   "New Message",
		Message: fmt.Sprintf("%s sent you a message", senderName),
		Link:    fmt.Sprintf("/messages/%d", senderID),
	}
}
