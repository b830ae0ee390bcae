package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"simplesocial/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmatchedRouteKeeps404(t *testing.T) {
	app, _, _ := setupTestServer(t, &stubUploader{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nonexistent", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.NotEmpty(t, errResp.Detail)
}

func TestFrameworkErrorKeepsItsStatus(t *testing.T) {
	app := NewFiberApp(testConfig(t))
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	var errResp models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "short and stout", errResp.Detail)
}

func TestUnexpectedErrorBecomes500(t *testing.T) {
	app := NewFiberApp(testConfig(t))
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("wires crossed")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var errResp models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "INTERNAL_ERROR", errResp.Code)
	assert.Equal(t, "Internal server error", errResp.Detail)
}
