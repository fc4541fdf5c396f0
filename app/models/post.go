package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	ReportTypeLost  = "lost"
	ReportTypeFound = "found"
)

// VerificationQuestion is an owner-supplied challenge used to test whether a
// claimant truly owns the item. The answer is the ground truth and must never
// be serialized to anyone but the post owner.
type VerificationQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuestionList stores verification questions as a JSON column.
type QuestionList []VerificationQuestion

func (q QuestionList) Value() (driver.Value, error) {
	if q == nil {
		return "[]", nil
	}
	b, err := json.Marshal(q)
	return string(b), err
}

func (q *QuestionList) Scan(value interface{}) error {
	if value == nil {
		*q = QuestionList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for QuestionList")
	}
	if len(data) == 0 {
		*q = QuestionList{}
		return nil
	}
	return json.Unmarshal(data, q)
}

type Post struct {
	ID                    uint           `gorm:"primaryKey" json:"id"`
	ReportType            string         `gorm:"type:varchar(20);index;not null" json:"report_type" validate:"oneof=lost found"`
	UserID                uint           `gorm:"index;not null" json:"user_id"`
	User                  *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ItemName              string         `gorm:"type:varchar(255);not null" json:"item_name" validate:"required"`
	Description           string         `gorm:"type:text" json:"description"`
	Location              string         `gorm:"type:varchar(255)" json:"location"`
	ContactDetails        string         `gorm:"type:varchar(255)" json:"contact_details"`
	Date                  string         `gorm:"type:varchar(20)" json:"date"`
	Time                  string         `gorm:"type:varchar(20)" json:"time"`
	ImagePath             string         `gorm:"type:varchar(255);default:null" json:"image_path,omitempty"`
	ThumbnailPath         string         `gorm:"type:varchar(255);default:null" json:"thumbnail_path,omitempty"`
	ShareLink             string         `gorm:"type:varchar(20);uniqueIndex" json:"share_link"`
	ViewCount             uint64         `gorm:"default:0" json:"view_count"`
	VerificationQuestions QuestionList   `gorm:"type:json" json:"-"`
	CreatedAt             time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`
}

// NormalizeReportType lowercases and trims a report type for storage and
// comparison; inputs are case-insensitive throughout the API.
func NormalizeReportType(reportType string) string {
	return strings.ToLower(strings.TrimSpace(reportType))
}

// IsFound reports whether the post is a found-item report, the only kind
// that can be claimed.
func (p *Post) IsFound() bool {
	return NormalizeReportType(p.ReportType) == ReportTypeFound
}

// QuestionsOnly returns the verification questions with the answers
// stripped, for serialization to claimants and listings.
func (p *Post) QuestionsOnly() []VerificationQuestion {
	out := make([]VerificationQuestion, len(p.VerificationQuestions))
	for i, q := range p.VerificationQuestions {
		out[i] = VerificationQuestion{Question: q.Question}
	}
	return out
}

// FindPostByID loads a post with its owner preloaded.
func FindPostByID(db *gorm.DB, id uint) (*Post, error) {
	var post Post
	if err := db.Preload("User").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}
