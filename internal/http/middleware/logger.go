package middleware

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logger logs each HTTP request as one JSON object per line on
// stdout. Fields: ts, request_id, method, path, status, latency
// (milliseconds) and user_id when the request is authenticated.
func Logger() fiber.Handler {
	return LoggerWithWriter(os.Stdout)
}

// LoggerWithWriter is Logger with an injectable output, used by tests.
func LoggerWithWriter(w io.Writer) fiber.Handler {
	enc := json.NewEncoder(w)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// Collect fields after the handler executed to capture the
		// final status
		rid, _ := c.Locals(RequestIDLocalKey).(string)
		status := c.Response().StatusCode()
		latency := float64(time.Since(start).Milliseconds())

		entry := map[string]any{
			"ts":         time.Now().UTC().Format(time.RFC3339Nano),
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    latency,
		}
		if user := UserFromCtx(c); user.Authenticated() {
			entry["user_id"] = user.ID
		}
		_ = enc.Encode(entry)

		return err
	}
}
