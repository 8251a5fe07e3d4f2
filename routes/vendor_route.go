package routes

import (
	"github.com/gofiber/fiber/v2"

	controllers "github.com/Binod-paudel/multi-vendor-ecommerce-backend/controllers/vendor"
	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/middlewares"
)

func VendorRoute(app *fiber.App) {
	vendor := app.Group("/api/v1/vendor", middlewares.CheckAuth, middlewares.CheckVendor)

	vendor.Get("/dashboard", controllers.GetDashboard)
	vendor.Get("/products", controllers.GetVendorProducts)
	vendor.Get("/orders", controllers.GetVendorOrders)
	vendor.Put("/orders/:orderId/items/:itemId", controllers.UpdateOrderItemStatus)
}
