package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	NotificationTypeClaim       = "claim"
	NotificationTypeClaimUpdate = "claim_update"
	NotificationTypeMatch       = "match"
	NotificationTypeWelcome     = "welcome"
	NotificationTypeMessage     = "message"
)

type Notification struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"index" json:"user_id"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title     string         `gorm:"type:varchar(255)" json:"title"`
	Message   string         `gorm:"type:text" json:"message"`
	Type      string         `gorm:"type:varchar(50)" json:"type" validate:"oneof=claim claim_update match welcome message"`
	Link      string         `gorm:"type:varchar(255)" json:"link"`
	IsRead    bool           `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarkAsRead marks a notification as read.
func (n *Notification) MarkAsRead(db *gorm.DB) error {
	n.IsRead = true
	return db.Model(n).Update("is_read", true).Error
}

// CreateNotification persists a new notification record.
func CreateNotification(db *gorm.DB, userID uint, notificationType, title, message, link string) error {
	notification := Notification{
		UserID:  userID,
		Type:    notificationType,
		Title:   title,
		Message: message,
		Link:    link,
		IsRead:  false,
	}

	return db.Create(&notification).Error
}
