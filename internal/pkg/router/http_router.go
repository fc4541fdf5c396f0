package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CampusFound/CampusFound/app/controllers"
	"github.com/CampusFound/CampusFound/internal/pkg/middleware"
	"github.com/CampusFound/CampusFound/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session store for the admin panel
	session.NewSessionStore()

	h.registerAdminRoutes(app)
}

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin")
	admin.Post("/login", controllers.HandleAdminLogin)
	admin.Post("/logout", controllers.HandleAdminLogout)

	protected := admin.Group("", middleware.SessionAdminAuth())
	protected.Get("/stats", controllers.HandleAdminStats)
	protected.Get("/users", controllers.HandleAdminListUsers)
	protected.Delete("/users/:id", controllers.HandleAdminDeleteUser)
	protected.Get("/posts", controllers.HandleAdminListPosts)
	protected.Delete("/posts/:id", controllers.HandleAdminDeletePost)
	protected.Get("/claims", controllers.HandleAdminListClaims)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
