package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CampusFound/CampusFound/app/repository"
	"github.com/CampusFound/CampusFound/internal/pkg/apperr"
	"github.com/CampusFound/CampusFound/internal/pkg/usercontext"
)

// HandleGetNotifications returns the caller's notifications, newest first.
// The frontend polls this endpoint for the bell badge.
func HandleGetNotifications(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	notifications, err := repository.GetGlobalFactory().GetNotificationRepository().GetByUserID(userID)
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to get notifications", err))
	}

	return c.Status(fiber.StatusOK).JSON(notifications)
}

// HandleGetUnreadCount returns the caller's unread notification count.
func HandleGetUnreadCount(c *fiber.Ctx) error {
	count, err := repository.GetGlobalFactory().GetNotificationRepository().CountUnread(usercontext.GetUserID(c))
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to get unread count", err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"unread_count": count})
}

// HandleMarkNotificationRead marks one notification read. Recipient only.
func HandleMarkNotificationRead(c *fiber.Ctx) error {
	id := parseUintParam(c, "id")
	if id == 0 {
		return apperr.Respond(c, apperr.NotFound("Notification not found"))
	}

	repo := repository.GetGlobalFactory().GetNotificationRepository()
	notification, err := repo.GetByID(id)
	if err != nil || notification == nil {
		return apperr.Respond(c, apperr.NotFound("Notification not found"))
	}

	if notification.UserID != usercontext.GetUserID(c) {
		return apperr.Respond(c, apperr.Authorization("You can only update your own notifications"))
	}

	if err := repo.MarkRead(id); err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to update notification", err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Notification marked as read"})
}

// HandleMarkAllNotificationsRead marks every notification of the caller read.
func HandleMarkAllNotificationsRead(c *fiber.Ctx) error {
	if err := repository.GetGlobalFactory().GetNotificationRepository().MarkAllRead(usercontext.GetUserID(c)); err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to update notifications", err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "All notifications marked as read"})
}

// HandleDeleteNotification deletes one notification. Recipient only.
func HandleDeleteNotification(c *fiber.Ctx) error {
	id := parseUintParam(c, "id")
	if id == 0 {
		return apperr.Respond(c, apperr.NotFound("Notification not found"))
	}

	repo := repository.GetGlobalFactory().GetNotificationRepository()
	notification, err := repo.GetByID(id)
	if err != nil || notification == nil {
		return apperr.Respond(c, apperr.NotFound("Notification not found"))
	}

	if notification.UserID != usercontext.GetUserID(c) {
		return apperr.Respond(c, apperr.Authorization("You can only delete your own notifications"))
	}

	if err := repo.Delete(id); err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to delete notification", err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Notification deleted"})
}
