package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/CampusFound/CampusFound/app/controllers"
	"github.com/CampusFound/CampusFound/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
	}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "CampusFound API",
		})
	})

	v1 := api.Group("/v1")

	// Auth
	auth := v1.Group("/auth")
	auth.Post("/register", controllers.HandleRegister)
	auth.Post("/login", controllers.HandleLogin)
	auth.Get("/me", middleware.TokenAuth(), controllers.HandleMe)

	// Posts: listing and detail are public, everything else needs a token.
	posts := v1.Group("/posts")
	posts.Get("/", middleware.OptionalTokenAuth(), controllers.HandleListPosts)
	posts.Get("/search", middleware.OptionalTokenAuth(), controllers.HandleSearchPosts)
	posts.Get("/filter", middleware.OptionalTokenAuth(), controllers.HandleFilterPosts)
	posts.Get("/share/:shareLink", middleware.OptionalTokenAuth(), controllers.HandleGetPostByShareLink)
	posts.Get("/user/:userId", middleware.OptionalTokenAuth(), controllers.HandleGetUserPosts)
	posts.Get("/:id", middleware.OptionalTokenAuth(), controllers.HandleGetPost)
	posts.Post("/", middleware.TokenAuth(), controllers.HandleCreatePost)
	posts.Delete("/:id", middleware.TokenAuth(), controllers.HandleDeletePost)

	// Claims
	claims := v1.Group("/claims", middleware.TokenAuth())
	claims.Post("/", controllers.HandleCreateClaim)
	claims.Get("/user/:userId", controllers.HandleGetUserClaims)
	claims.Get("/:claimId/review", controllers.HandleReviewClaim)
	claims.Get("/:claimId", controllers.HandleGetClaim)
	claims.Put("/:claimId", controllers.HandleUpdateClaim)

	// Notifications
	notifications := v1.Group("/notifications", middleware.TokenAuth())
	notifications.Get("/", controllers.HandleGetNotifications)
	notifications.Get("/unread-count", controllers.HandleGetUnreadCount)
	notifications.Put("/read-all", controllers.HandleMarkAllNotificationsRead)
	notifications.Put("/:id/read", controllers.HandleMarkNotificationRead)
	notifications.Delete("/:id", controllers.HandleDeleteNotification)

	// Messages
	messages := v1.Group("/messages", middleware.TokenAuth())
	messages.Post("/", controllers.HandleSendMessage)
	messages.Get("/conversations", controllers.HandleGetConversations)
	messages.Get("/chat/:otherUserId", controllers.HandleGetChat)
	messages.Put("/:id/read", controllers.HandleMarkMessageRead)

	// Contact form is open to guests
	v1.Post("/contact", controllers.HandleContact)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
