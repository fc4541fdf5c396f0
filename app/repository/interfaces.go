package repository

import (
	"gorm.io/gorm"

	"github.com/CampusFound/CampusFound/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByTokenHash(hash string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
}

// PostRepository defines the interface for post-related database operations
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	GetByShareLink(shareLink string) (*models.Post, error)
	GetByUserID(userID uint) ([]models.Post, error)
	GetByReportType(reportType string) ([]models.Post, error)
	List(offset, limit int) ([]models.Post, error)
	Search(query string) ([]models.Post, error)
	Filter(keyword, location, reportType string, dates []string) ([]models.Post, error)
	Update(post *models.Post) error
	Delete(id uint) error
	Count() (int64, error)
}

// ClaimRepository defines the interface for claim-related database operations
type ClaimRepository interface {
	Create(claim *models.Claim) error
	GetByID(id uint) (*models.Claim, error)
	GetByClaimant(userID uint) ([]models.Claim, error)
	GetByPostOwner(userID uint) ([]models.Claim, error)
	List(offset, limit int) ([]models.Claim, error)
	UpdateDecision(id uint, status, responseMessage string) error
	Count() (int64, error)
}

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	Create(notification *models.Notification) error
	GetByID(id uint) (*models.Notification, error)
	GetByUserID(userID uint) ([]models.Notification, error)
	CountUnread(userID uint) (int64, error)
	MarkRead(id uint) error
	MarkAllRead(userID uint) error
	Delete(id uint) error
	Count() (int64, error)
}

// MessageRepository defines the interface for direct-message operations
type MessageRepository interface {
	Create(message *models.Message) error
	GetByID(id uint) (*models.Message, error)
	GetChat(userID, otherUserID uint) ([]models.Message, error)
	GetConversations(userID uint) ([]Conversation, error)
	MarkRead(id uint) error
}

// Conversation summarizes a message thread with one partner.
type Conversation struct {
	PartnerID   uint           `json:"partner_id"`
	PartnerName string         `json:"partner_name"`
	LastMessage models.Message `json:"last_message"`
	UnreadCount int64          `json:"unread_count"`
}

// Repositories struct holds all repository instances
type Repositories struct {
	User         UserRepository
	Post         PostRepository
	Claim        ClaimRepository
	Notification NotificationRepository
	Message      MessageRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Post:         NewPostRepository(db),
		Claim:        NewClaimRepository(db),
		Notification: NewNotificationRepository(db),
		Message:      NewMessageRepository(db),
	}
}
