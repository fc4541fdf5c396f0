package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/CampusFound/CampusFound/app/models"
	"github.com/CampusFound/CampusFound/app/repository"
	"github.com/CampusFound/CampusFound/internal/pkg/apperr"
	"github.com/CampusFound/CampusFound/internal/pkg/session"
	"github.com/CampusFound/CampusFound/internal/pkg/usercontext"
)

// HandleAdminLogin authenticates a moderator against the user store and
// opens a server-side session. Admin auth is cookie-based, not token-based,
// so a leaked API token never grants panel access.
func HandleAdminLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	user, err := repository.GetGlobalFactory().GetUserRepository().GetByEmail(req.Email)
	if err != nil || user == nil || !user.CheckPassword(req.Password) {
		return apperr.Respond(c, apperr.Authentication("Invalid email or password"))
	}
	if user.Role != models.ROLE_ADMIN || !user.IsActive() {
		return apperr.Respond(c, apperr.Authorization("Admin access required"))
	}

	if err := session.SetSessionValue(c, usercontext.KeyAuthed, "true"); err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to create session", err))
	}
	_ = session.SetSessionValue(c, usercontext.KeyIsAdmin, "true")
	_ = session.SetSessionValue(c, usercontext.KeyUserID, strconv.FormatUint(uint64(user.ID), 10))
	_ = session.SetSessionValue(c, usercontext.KeyUsername, user.Name)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logged in"})
}

// HandleAdminLogout destroys the admin session.
func HandleAdminLogout(c *fiber.Ctx) error {
	if err := session.DestroySession(c); err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to log out", err))
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logged out"})
}

// HandleAdminStats returns the dashboard counters.
func HandleAdminStats(c *fiber.Ctx) error {
	repos := repository.GetGlobalFactory()

	userCount, err := repos.GetUserRepository().Count()
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to load stats", err))
	}
	postCount, err := repos.GetPostRepository().Count()
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to load stats", err))
	}
	claimCount, err := repos.GetClaimRepository().Count()
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to load stats", err))
	}
	notificationCount, err := repos.GetNotificationRepository().Count()
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to load stats", err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"users":         userCount,
		"posts":         postCount,
		"claims":        claimCount,
		"notifications": notificationCount,
	})
}

// HandleAdminListUsers lists accounts for moderation.
func HandleAdminListUsers(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)

	users, err := repository.GetGlobalFactory().GetUserRepository().List(offset, limit)
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to get users", err))
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

// HandleAdminDeleteUser soft-deletes an account.
func HandleAdminDeleteUser(c *fiber.Ctx) error {
	id := parseUintParam(c, "id")
	if id == 0 {
		return apperr.Respond(c, apperr.NotFound("User not found"))
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	if user, err := repo.GetByID(id); err != nil || user == nil {
		return apperr.Respond(c, apperr.NotFound("User not found"))
	}

	if err := repo.Delete(id); err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to delete user", err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User deleted"})
}

// HandleAdminListPosts lists reports for moderation.
func HandleAdminListPosts(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)

	posts, err := repository.GetGlobalFactory().GetPostRepository().List(offset, limit)
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to get posts", err))
	}

	// Moderators see everything, including verification answers.
	out := make([]fiber.Map, 0, len(posts))
	for i := range posts {
		m := postJSON(&posts[i], posts[i].UserID)
		out = append(out, m)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

// HandleAdminDeletePost removes a report via the moderation panel.
func HandleAdminDeletePost(c *fiber.Ctx) error {
	id := parseUintParam(c, "id")
	if id == 0 {
		return apperr.Respond(c, apperr.NotFound("Post not found"))
	}

	repo := repository.GetGlobalFactory().GetPostRepository()
	if post, err := repo.GetByID(id); err != nil || post == nil {
		return apperr.Respond(c, apperr.NotFound("Post not found"))
	}

	if err := repo.Delete(id); err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to delete post", err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Post deleted"})
}

// HandleAdminListClaims lists all claims, newest first.
func HandleAdminListClaims(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)

	claims, err := repository.GetGlobalFactory().GetClaimRepository().List(offset, limit)
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to get claims", err))
	}

	return c.Status(fiber.StatusOK).JSON(claims)
}
