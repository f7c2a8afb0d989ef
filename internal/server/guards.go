package server

import (
	"skillswap/internal/middleware"
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired resolves the session token (Bearer header or cookie) to a
// live, non-banned user and stores the actor in locals.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := middleware.TokenFromRequest(c, s.config.SessionCookieName)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authentication required"))
		}

		user, claims, err := s.authService.Authenticate(c.UserContext(), token)
		if err != nil {
			return respondError(c, err)
		}

		c.Locals(middleware.LocalUserID, user.ID)
		c.Locals(middleware.LocalIsAdmin, claims.Admin)
		c.Locals(middleware.LocalSessionID, claims.ID)
		c.SetUserContext(middleware.WithUserID(c.UserContext(), user.ID))

		return c.Next()
	}
}

// AdminRequired rejects callers whose session does not carry the admin flag.
// Must be placed after AuthRequired.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !middleware.IsAdminFrom(c) {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Admin access required"))
		}
		return c.Next()
	}
}
