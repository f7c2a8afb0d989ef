package server

import (
	"time"

	"skillswap/internal/middleware"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /api/register
// @Summary Register
// @Description Create an account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body registerRequest true "Registration"
// @Success 200 {object} object{success=bool,userId=int,token=string}
// @Failure 400 {object} models.ErrorResponse
// @Router /register [post]
func (s *Server) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	res, err := s.authService.Register(c.UserContext(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return respondError(c, err)
	}

	s.setSessionCookie(c, res.Token, res.ExpiresAt)
	return success(c, fiber.Map{
		"userId": res.User.ID,
		"token":  res.Token,
	})
}

// Login handles POST /api/login
// @Summary Login
// @Description Authenticate and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "Credentials"
// @Success 200 {object} object{success=bool,userId=int,isAdmin=bool,redirectTo=string,token=string}
// @Failure 401 {object} models.ErrorResponse
// @Router /login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	res, err := s.authService.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	s.setSessionCookie(c, res.Token, res.ExpiresAt)
	return success(c, fiber.Map{
		"userId":     res.User.ID,
		"isAdmin":    res.User.IsAdmin,
		"redirectTo": res.RedirectTo,
		"token":      res.Token,
	})
}

// Logout handles POST /api/logout
// @Summary Logout
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool}
// @Router /logout [post]
func (s *Server) Logout(c *fiber.Ctx) error {
	token, _ := middleware.TokenFromRequest(c, s.config.SessionCookieName)
	if err := s.authService.Logout(c.UserContext(), token); err != nil {
		return respondError(c, err)
	}

	c.ClearCookie(s.config.SessionCookieName)
	return success(c, nil)
}

func (s *Server) setSessionCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     s.config.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
