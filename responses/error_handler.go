package responses

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Binod-paudel/multi-vendor-ecommerce-backend/configs"
)

// ApiError is a domain error carrying the HTTP status it should surface as.
// Handlers return it instead of writing responses themselves; ErrorHandler is
// the single translation boundary.
type ApiError struct {
	Status  int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(status int, message string) *ApiError {
	return &ApiError{Status: status, Message: message}
}

// ErrorHandler translates any error escaping a handler into a JSON response.
// Unknown errors become a generic 500; their detail is exposed only outside
// production.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(fiber.Map{"message": apiErr.Message})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
	}

	body := fiber.Map{"message": "internal server error"}
	if configs.EnvAppEnv() != "production" {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

// NotFoundHandler answers any route no router claimed.
func NotFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "route not found"})
}
