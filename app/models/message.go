package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is a direct message between two users, optionally attached to a
// post (e.g. "is this my wallet?").
type Message struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	SenderID   uint           `gorm:"index;not null" json:"sender_id"`
	Sender     *User          `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	ReceiverID uint           `gorm:"index;not null" json:"receiver_id"`
	Receiver   *User          `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
	PostID     *uint          `gorm:"index" json:"post_id,omitempty"`
	Content    string         `gorm:"type:text;not null" json:"content" validate:"required,min=1"`
	ReadStatus bool           `gorm:"default:false" json:"read_status"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
