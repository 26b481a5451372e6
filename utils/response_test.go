package utils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetch(t *testing.T, app *fiber.App, path string) (int, map[string]json.RawMessage) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &payload))
	return resp.StatusCode, payload
}

func TestSuccessResponse(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return SuccessResponse(c, fiber.StatusCreated, fiber.Map{"id": 7})
	})

	status, payload := fetch(t, app, "/ok")
	assert.Equal(t, fiber.StatusCreated, status)
	assert.JSONEq(t, `true`, string(payload["success"]))
	assert.JSONEq(t, `{"id":7}`, string(payload["data"]))
	assert.NotContains(t, payload, "error")
}

func TestErrorResponse(t *testing.T) {
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusNotFound, "Contact not found", "NOT_FOUND")
	})

	status, payload := fetch(t, app, "/fail")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.JSONEq(t, `false`, string(payload["success"]))
	assert.JSONEq(t, `{"message":"Contact not found","code":"NOT_FOUND"}`, string(payload["error"]))
	assert.NotContains(t, payload, "data")
}
