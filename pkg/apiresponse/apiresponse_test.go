package apiresponse

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"anket.link/pkg/queryparams"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestJSONList(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		meta := queryparams.NewPaginationMeta(queryparams.ListParams{Page: 1, PerPage: 20}, 2, 2)
		return JSONList(c, "", []string{"a", "b"}, meta)
	})

	status, body := decode(t, app, "/")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["message"])

	pagination, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, pagination["totalPages"])
	assert.EqualValues(t, 2, pagination["count"])
}

func TestJSONError(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return JSONError(c, fiber.StatusConflict, "form kapalı")
	})

	status, body := decode(t, app, "/")
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "CONFLICT", body["error_code"])
	assert.Equal(t, "form kapalı", body["message"])
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", StatusToErrorCode(fiber.StatusNotFound))
	assert.Equal(t, "INTERNAL_ERROR", StatusToErrorCode(fiber.StatusBadGateway))
	assert.Equal(t, "ERROR", StatusToErrorCode(fiber.StatusTeapot))
}
