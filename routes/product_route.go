package routes

import (
	"github.com/gofiber/fiber/v2"

	controllers "github.com/Binod-paudel/multi-vendor-ecommerce-backend/controllers/products"
	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/middlewares"
)

func ProductsRoute(app *fiber.App) {
	products := app.Group("/api/v1/products")

	products.Get("/", middlewares.CheckAuthOptional, controllers.GetProducts)
	products.Post("/", middlewares.CheckAuth, middlewares.CheckAdmin, controllers.CreateProduct)

	// /top before /:id so it is not swallowed by the param route
	products.Post("/top", controllers.GetTopProducts)

	products.Get("/:id", controllers.GetProductById)
	products.Put("/:id", middlewares.CheckAuth, middlewares.CheckAdmin, controllers.UpdateProduct)
	products.Delete("/:id", middlewares.CheckAuth, middlewares.CheckAdmin, controllers.DeleteProduct)
	products.Post("/:id", middlewares.CheckAuth, controllers.AddProductReview)
}
