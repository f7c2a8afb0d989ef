// Package middleware provides request-scoped HTTP plumbing: logging, tracing,
// metrics, rate limiting and session token extraction.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the session guard.
const (
	LocalUserID    = "userID"
	LocalIsAdmin   = "isAdmin"
	LocalSessionID = "sessionID"
)

// TokenFromRequest returns the session token from the Authorization header,
// falling back to the named session cookie. The header wins when both are set.
func TokenFromRequest(c *fiber.Ctx, cookieName string) (string, bool) {
	if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}
	if cookieName == "" {
		return "", false
	}
	if token := c.Cookies(cookieName); token != "" {
		return token, true
	}
	return "", false
}

// UserIDFrom returns the authenticated user id stored by the guard.
func UserIDFrom(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(LocalUserID).(uint)
	return id, ok && id != 0
}

// IsAdminFrom returns the cached admin flag stored by the guard.
func IsAdminFrom(c *fiber.Ctx) bool {
	admin, _ := c.Locals(LocalIsAdmin).(bool)
	return admin
}
