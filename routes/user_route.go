package routes

import (
	"github.com/gofiber/fiber/v2"

	controllers "github.com/Binod-paudel/multi-vendor-ecommerce-backend/controllers/users"
	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/middlewares"
)

func UserRoute(app *fiber.App) {
	users := app.Group("/api/v1/users")

	users.Post("/signup", controllers.Signup)
	users.Post("/login", controllers.Login)
	users.Post("/logout", controllers.Logout)

	// registered before /:id so "vendors" is not captured as an id
	users.Get("/vendors", middlewares.CheckAuth, middlewares.CheckAdmin, controllers.GetPendingVendors)

	users.Get("/", middlewares.CheckAuth, middlewares.CheckAdmin, controllers.GetUsers)
	users.Put("/", middlewares.CheckAuth, controllers.UpdateUserProfile)
	users.Put("/:id", middlewares.CheckAuth, middlewares.CheckAdmin, controllers.UpdateUser)
	users.Delete("/:id", middlewares.CheckAuth, middlewares.CheckAdmin, controllers.DeleteUser)
}
