package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

const (
	ClaimStatusPending  = "pending"
	ClaimStatusApproved = "approved"
	ClaimStatusRejected = "rejected"
)

// ClaimAnswer is a claimant's answer, positionally aligned with the post's
// verification questions at submission time.
type ClaimAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AnswerList stores claim answers as a JSON column. The claim owns this
// snapshot; it is never re-read from the post.
type AnswerList []ClaimAnswer

func (a AnswerList) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	return string(b), err
}

func (a *AnswerList) Scan(value interface{}) error {
	if value == nil {
		*a = AnswerList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for AnswerList")
	}
	if len(data) == 0 {
		*a = AnswerList{}
		return nil
	}
	return json.Unmarshal(data, a)
}

// Claim is a request by one user to take ownership of a found item posted by
// another. PostOwnerID is captured at creation time and never changes, so
// ownership checks do not need to re-fetch the post.
type Claim struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	PostID          uint       `gorm:"index;not null" json:"post_id"`
	Post            *Post      `gorm:"foreignKey:PostID" json:"post,omitempty"`
	UserID          uint       `gorm:"index;not null" json:"user_id"`
	PostOwnerID     uint       `gorm:"index;not null" json:"post_owner_id"`
	ContactInfo     string     `gorm:"type:varchar(255);not null" json:"contact_info"`
	Answers         AnswerList `gorm:"type:json" json:"answers"`
	Status          string     `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ResponseMessage string     `gorm:"type:text" json:"response_message"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

const (
	ClaimRoleClaimant = "claimant"
	ClaimRoleOwner    = "owner"
)

// IsValidDecision reports whether a requested transition target is one of
// the two terminal states.
func IsValidDecision(status string) bool {
	return status == ClaimStatusApproved || status == ClaimStatusRejected
}

// IsTerminal reports whether the claim has been decided. Note that the API
// intentionally does not guard transitions out of terminal states; a second
// decision overwrites the first (documented product gap).
func (c *Claim) IsTerminal() bool {
	return c.Status == ClaimStatusApproved || c.Status == ClaimStatusRejected
}

// CanBeDecidedBy reports whether userID may approve or reject this claim.
func (c *Claim) CanBeDecidedBy(userID uint) bool {
	return c.PostOwnerID == userID
}
