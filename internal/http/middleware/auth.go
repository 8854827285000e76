package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"corpsite/internal/model"
)

// UserLocalKey is the key under which the authenticated principal is
// stored in Fiber's context locals. A missing value means the request
// is anonymous.
const UserLocalKey = "auth_user"

type userClaims struct {
	Email       string `json:"email"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
	jwt.RegisteredClaims
}

// Auth parses an optional Authorization: Bearer token signed with
// HMAC-SHA and attaches the principal to the request context.
//
// Behavior:
//   - No Authorization header: the request proceeds anonymously.
//   - A malformed or invalid token is rejected with 401 rather than
//     silently downgraded to anonymous.
func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		claims := &userClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}
		if claims.Subject == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "token has no subject")
		}

		c.Locals(UserLocalKey, &model.User{
			ID:          claims.Subject,
			Email:       claims.Email,
			IsStaff:     claims.IsStaff,
			IsSuperuser: claims.IsSuperuser,
		})
		return c.Next()
	}
}

// UserFromCtx returns the principal attached by Auth, or nil for an
// anonymous request.
func UserFromCtx(c *fiber.Ctx) *model.User {
	if u, ok := c.Locals(UserLocalKey).(*model.User); ok {
		return u
	}
	return nil
}

// RequireStaff guards administrative routes. Anonymous requests get
// 401, authenticated non-staff users get 403.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := UserFromCtx(c)
		if !user.Authenticated() {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}
		if !user.Privileged() {
			return fiber.NewError(fiber.StatusForbidden, "staff access required")
		}
		return c.Next()
	}
}
