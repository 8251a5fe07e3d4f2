package responses

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestErrorHandler(t *testing.T) {
	t.Run("ApiErrorKeepsStatusAndMessage", func(t *testing.T) {
		app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
		app.Get("/", func(c *fiber.Ctx) error {
			return NewApiError(fiber.StatusConflict, "User with email a@b.c already exists")
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
		assert.Equal(t, "User with email a@b.c already exists", decode(t, resp)["message"])
	})

	t.Run("UnknownErrorIsGeneric500WithDetailOutsideProduction", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")

		app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
		app.Get("/", func(c *fiber.Ctx) error {
			return errors.New("cursor decode failed")
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		body := decode(t, resp)
		assert.Equal(t, "internal server error", body["message"])
		assert.Equal(t, "cursor decode failed", body["error"])
	})

	t.Run("UnknownErrorHidesDetailInProduction", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")

		app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
		app.Get("/", func(c *fiber.Ctx) error {
			return errors.New("cursor decode failed")
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		body := decode(t, resp)
		assert.Equal(t, "internal server error", body["message"])
		assert.NotContains(t, body, "error")
	})
}

func TestNotFoundHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(NotFoundHandler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/no-such-route", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "route not found", decode(t, resp)["message"])
}
