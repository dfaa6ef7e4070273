package controllers

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newAuthTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/auth/register", RegisterUser)
	return app
}

func postJSON(app *fiber.App, path, body string) (int, string, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b), err
}

// validation ต้องตัดคำขอที่ไม่ผ่านก่อนถึงชั้น service
func TestRegisterUserValidation(t *testing.T) {
	app := newAuthTestApp()

	t.Run("TestShortPassword", func(t *testing.T) {
		status, body, err := postJSON(app, "/auth/register",
			`{"name":"Somchai J.","email":"somchai@example.com","password":"short"}`)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, body, "INVALID_FIELDS")
	})

	t.Run("TestMissingName", func(t *testing.T) {
		status, body, err := postJSON(app, "/auth/register",
			`{"email":"somchai@example.com","password":"secret1234"}`)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, body, "INVALID_FIELDS")
	})

	t.Run("TestBadEmailFormat", func(t *testing.T) {
		status, body, err := postJSON(app, "/auth/register",
			`{"name":"Somchai J.","email":"not-an-email","password":"secret1234"}`)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, body, "INVALID_FIELDS")
	})

	t.Run("TestMalformedBody", func(t *testing.T) {
		status, body, err := postJSON(app, "/auth/register", `{"name":`)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, body, "INVALID_REQUEST")
	})
}
