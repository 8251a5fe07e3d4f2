package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/configs"
	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/responses"
	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/routes"
)

func main() {
	app := fiber.New(fiber.Config{
		ErrorHandler: responses.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	configs.ConnectDB()

	routes.UserRoute(app)
	routes.ProductsRoute(app)
	routes.OrdersRoute(app)
	routes.VendorRoute(app)

	app.Use(responses.NotFoundHandler)

	log.Fatal(app.Listen(":" + configs.EnvPort()))
}
