package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/CampusFound/CampusFound/app/models"
	"github.com/CampusFound/CampusFound/app/repository"
	"github.com/CampusFound/CampusFound/internal/pkg/session"
	"github.com/CampusFound/CampusFound/internal/pkg/usercontext"
)

// extractToken pulls the bearer token from the Authorization header or the
// X-API-Token header.
func extractToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return strings.TrimSpace(c.Get("X-API-Token"))
}

// TokenAuth resolves the caller from their bearer token and installs the
// request's UserContext. Unknown or disabled accounts get a 401.
func TokenAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Authentication required"})
		}

		repos := repository.GetGlobalFactory()
		user, err := repos.GetUserRepository().GetByTokenHash(models.HashToken(token))
		if err != nil || user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid token"})
		}
		if !user.IsActive() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Account is disabled"})
		}

		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
			UserID:     user.ID,
			Username:   user.Name,
			IsLoggedIn: true,
			IsAdmin:    user.Role == models.ROLE_ADMIN,
		})

		// Best effort; a failed timestamp update must not fail the request.
		now := time.Now()
		user.TokenLastUsedAt = &now
		if uerr := repos.GetUserRepository().Update(user); uerr != nil {
			log.Warnf("[Auth] Failed to update token usage for user %d: %v", user.ID, uerr)
		}

		return c.Next()
	}
}

// OptionalTokenAuth installs the UserContext when a valid token is present
// but lets anonymous requests pass through. Used on public listings where
// owners see more than visitors.
func OptionalTokenAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Next()
		}

		repos := repository.GetGlobalFactory()
		user, err := repos.GetUserRepository().GetByTokenHash(models.HashToken(token))
		if err == nil && user != nil && user.IsActive() {
			c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
				UserID:     user.ID,
				Username:   user.Name,
				IsLoggedIn: true,
				IsAdmin:    user.Role == models.ROLE_ADMIN,
			})
		}

		return c.Next()
	}
}

// SessionAdminAuth guards the admin panel using the Redis-backed session set
// by the admin login handler.
func SessionAdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if session.GetSessionValue(c, usercontext.KeyAuthed) != "true" ||
			session.GetSessionValue(c, usercontext.KeyIsAdmin) != "true" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Admin authentication required"})
		}
		return c.Next()
	}
}
