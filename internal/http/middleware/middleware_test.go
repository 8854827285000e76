package middleware

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims userClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return s
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		rid := c.Locals(RequestIDLocalKey).(string)
		// The id must also ride the user context into deeper layers
		assert.Equal(t, rid, RequestIDFromContext(c.UserContext()))
		return c.SendString(rid)
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()

	app.Use(RequestID())
	app.Use(Auth(testSecret))
	app.Use(LoggerWithWriter(&buf))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	token := signToken(t, userClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
	})
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	var logData map[string]any
	err := json.Unmarshal(buf.Bytes(), &logData)
	assert.NoError(t, err)

	assert.NotEmpty(t, logData["request_id"])
	assert.Equal(t, "GET", logData["method"])
	assert.Equal(t, "/test", logData["path"])
	assert.Equal(t, float64(fiber.StatusAccepted), logData["status"])
	assert.NotNil(t, logData["latency"])
	assert.NotEmpty(t, logData["ts"])
	assert.Equal(t, "u1", logData["user_id"])
}

func TestAuth(t *testing.T) {
	newApp := func() *fiber.App {
		app := fiber.New()
		app.Use(Auth(testSecret))
		app.Get("/whoami", func(c *fiber.Ctx) error {
			user := UserFromCtx(c)
			if user == nil {
				return c.SendString("anonymous")
			}
			return c.JSON(user)
		})
		return app
	}

	t.Run("no header means anonymous", func(t *testing.T) {
		app := newApp()
		req := httptest.NewRequest("GET", "/whoami", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, "anonymous", buf.String())
	})

	t.Run("valid token attaches user", func(t *testing.T) {
		app := newApp()
		token := signToken(t, userClaims{
			Email:   "staff@example.com",
			IsStaff: true,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "u1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "u1", body["id"])
		assert.Equal(t, true, body["is_staff"])
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		app := newApp()
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer not.a.token")
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		app := newApp()
		token := signToken(t, userClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "u1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRequireStaff(t *testing.T) {
	app := fiber.New()
	app.Use(Auth(testSecret))
	app.Get("/admin", RequireStaff(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("anonymous gets 401", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin", nil)
		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("regular user gets 403", func(t *testing.T) {
		token := signToken(t, userClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
		})
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("staff passes", func(t *testing.T) {
		token := signToken(t, userClaims{
			IsStaff:          true,
			RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
		})
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
