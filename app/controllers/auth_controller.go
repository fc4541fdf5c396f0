package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/CampusFound/CampusFound/app/models"
	"github.com/CampusFound/CampusFound/app/repository"
	"github.com/CampusFound/CampusFound/internal/pkg/apperr"
	"github.com/CampusFound/CampusFound/internal/pkg/database"
	"github.com/CampusFound/CampusFound/internal/pkg/notify"
	"github.com/CampusFound/CampusFound/internal/pkg/usercontext"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates the local shadow record for a new account and
// issues the first bearer token.
func HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := models.CreateUser(req.Name, req.Email, req.Password)
	if err != nil {
		return apperr.Respond(c, apperr.Validation("Name, a valid email and a password of at least 6 characters are required"))
	}

	repos := repository.GetGlobalFactory()
	if existing, gerr := repos.GetUserRepository().GetByEmail(req.Email); gerr == nil && existing != nil {
		return apperr.Respond(c, apperr.Validation("An account with this email already exists"))
	}

	token, err := user.IssueToken()
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to create account", err))
	}

	if err := repos.GetUserRepository().Create(user); err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to create account", err))
	}

	notify.SendWithMail(database.GetDB(), notify.Welcome(user.ID, user.Name), user.Email)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"token": token,
	})
}

// HandleLogin verifies the password and rotates the bearer token. The old
// token stops working immediately.
func HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return apperr.Respond(c, apperr.Validation("Email and password are required"))
	}

	repos := repository.GetGlobalFactory()
	user, err := repos.GetUserRepository().GetByEmail(req.Email)
	if err != nil || user == nil || !user.CheckPassword(req.Password) {
		return apperr.Respond(c, apperr.Authentication("Invalid email or password"))
	}
	if !user.IsActive() {
		return apperr.Respond(c, apperr.Authentication("Account is disabled"))
	}

	token, err := user.IssueToken()
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to log in", err))
	}

	now := time.Now()
	user.LastLoginAt = &now

	if err := repos.GetUserRepository().Update(user); err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to log in", err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"token": token,
	})
}

// HandleMe returns the authenticated caller's account.
func HandleMe(c *fiber.Ctx) error {
	user, err := repository.GetGlobalFactory().GetUserRepository().GetByID(usercontext.GetUserID(c))
	if err != nil || user == nil {
		return apperr.Respond(c, apperr.NotFound("User not found"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"role":          user.Role,
		"status":        user.Status,
		"created_at":    user.CreatedAt,
		"last_login_at": formatTimePtr(user.LastLoginAt),
	})
}
