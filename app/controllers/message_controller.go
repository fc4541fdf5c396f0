package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/CampusFound/CampusFound/app/models"
	"github.com/CampusFound/CampusFound/app/repository"
	"github.com/CampusFound/CampusFound/internal/pkg/apperr"
	"github.com/CampusFound/CampusFound/internal/pkg/database"
	"github.com/CampusFound/CampusFound/internal/pkg/notify"
	"github.com/CampusFound/CampusFound/internal/pkg/usercontext"
)

// SendMessageRequest is the body of POST /messages.
type SendMessageRequest struct {
	ReceiverID uint   `json:"receiver_id"`
	PostID     *uint  `json:"post_id"`
	Content    string `json:"content"`
}

// HandleSendMessage sends a direct message to another user and notifies the
// receiver.
func HandleSendMessage(c *fiber.Ctx) error {
	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	if req.ReceiverID == 0 || strings.TrimSpace(req.Content) == "" {
		return apperr.Respond(c, apperr.Validation("receiver_id and content are required"))
	}

	userCtx := usercontext.GetUserContext(c)
	if req.ReceiverID == userCtx.UserID {
		return apperr.Respond(c, apperr.InvalidState("You cannot message yourself"))
	}

	repos := repository.GetGlobalFactory()
	receiver, err := repos.GetUserRepository().GetByID(req.ReceiverID)
	if err != nil || receiver == nil {
		return apperr.Respond(c, apperr.NotFound("Receiver not found"))
	}

	message := &models.Message{
		SenderID:   userCtx.UserID,
		ReceiverID: req.ReceiverID,
		PostID:     req.PostID,
		Content:    req.Content,
	}

	if err := repos.GetMessageRepository().Create(message); err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to send message", err))
	}

	notify.Send(database.GetDB(), notify.NewMessage(req.ReceiverID, userCtx.Username, userCtx.UserID))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      message.ID,
		"message": "Message sent successfully",
	})
}

// HandleGetChat returns the full conversation with one partner, oldest first.
func HandleGetChat(c *fiber.Ctx) error {
	otherUserID := parseUintParam(c, "otherUserId")
	if otherUserID == 0 {
		return apperr.Respond(c, apperr.Validation("Invalid user id"))
	}

	messages, err := repository.GetGlobalFactory().GetMessageRepository().GetChat(usercontext.GetUserID(c), otherUserID)
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to get messages", err))
	}

	return c.Status(fiber.StatusOK).JSON(messages)
}

// HandleGetConversations returns the caller's inbox: distinct partners with
// the last message and the unread count per thread.
func HandleGetConversations(c *fiber.Ctx) error {
	conversations, err := repository.GetGlobalFactory().GetMessageRepository().GetConversations(usercontext.GetUserID(c))
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to get conversations", err))
	}

	return c.Status(fiber.StatusOK).JSON(conversations)
}

// HandleMarkMessageRead marks a message read. Receiver only.
func HandleMarkMessageRead(c *fiber.Ctx) error {
	id := parseUintParam(c, "id")
	if id == 0 {
		return apperr.Respond(c, apperr.NotFound("Message not found"))
	}

	repo := repository.GetGlobalFactory().GetMessageRepository()
	message, err := repo.GetByID(id)
	if err != nil || message == nil {
		return apperr.Respond(c, apperr.NotFound("Message not found"))
	}

	if message.ReceiverID != usercontext.GetUserID(c) {
		return apperr.Respond(c, apperr.Authorization("Only the receiver can mark a message as read"))
	}

	if err := repo.MarkRead(id); err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to update message", err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Message marked as read"})
}
