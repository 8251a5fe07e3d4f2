package routes

import (
	"github.com/gofiber/fiber/v2"

	controllers "github.com/Binod-paudel/multi-vendor-ecommerce-backend/controllers/orders"
	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/middlewares"
)

func OrdersRoute(app *fiber.App) {
	orders := app.Group("/api/v1/orders", middlewares.CheckAuth)

	orders.Post("/", controllers.AddOrders)
	orders.Get("/", controllers.GetOrders)
	orders.Get("/my-orders", controllers.GetMyOrders)
	orders.Get("/:id", controllers.GetOrdersById)
	orders.Put("/:id", controllers.UpdateOrders)
}
