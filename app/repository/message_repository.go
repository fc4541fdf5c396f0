package repository

import (
	"gorm.io/gorm"

	"github.com/CampusFound/CampusFound/app/models"
)

// messageRepository implements the MessageRepository interface
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository instance
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create creates a new message in the database
func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// GetByID retrieves a message by its ID
func (r *messageRepository) GetByID(id uint) (*models.Message, error) {
	var message models.Message
	err := r.db.First(&message, id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// GetChat retrieves both directions of a two-party thread, oldest first.
func (r *messageRepository) GetChat(userID, otherUserID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherUserID, otherUserID, userID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// GetConversations lists the user's distinct chat partners with the last
// message and unread count per partner.
func (r *messageRepository) GetConversations(userID uint) ([]Conversation, error) {
	var messages []models.Message
	err := r.db.Preload("Sender").Preload("Receiver").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]*Conversation)
	order := make([]uint, 0)
	for _, msg := range messages {
		partnerID := msg.SenderID
		partner := msg.Sender
		if partnerID == userID {
			partnerID = msg.ReceiverID
			partner = msg.Receiver
		}
		conv, ok := seen[partnerID]
		if !ok {
			conv = &Conversation{PartnerID: partnerID, LastMessage: msg}
			if partner != nil {
				conv.PartnerName = partner.Name
			}
			seen[partnerID] = conv
			order = append(order, partnerID)
		}
		if msg.ReceiverID == userID && !msg.ReadStatus {
			conv.UnreadCount++
		}
	}

	conversations := make([]Conversation, 0, len(order))
	for _, id := range order {
		conversations = append(conversations, *seen[id])
	}
	return conversations, nil
}

// MarkRead marks a message as read
func (r *messageRepository) MarkRead(id uint) error {
	return r.db.Model(&models.Message{}).Where("id = ?", id).Update("read_status", true).Error
}
