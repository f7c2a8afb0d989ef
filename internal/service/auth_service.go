package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/session"
	"skillswap/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

const (
	AdminLandingPage = "/admin.html"
	UserLandingPage  = "/dashboard.html"
)

var errInvalidCredentials = models.NewUnauthorizedError("Invalid credentials")

// dummyHash keeps unknown-username logins as slow as wrong-password ones.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("skillswap-timing-equalizer"), bcrypt.DefaultCost)
	return h
})

// AuthService registers users and manages their sessions.
type AuthService struct {
	userRepo repository.UserRepository
	sessions *session.Manager
	hashCost int
}

func NewAuthService(userRepo repository.UserRepository, sessions *session.Manager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
		hashCost: bcrypt.DefaultCost,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Name     string
}

// AuthResult is a freshly established session.
type AuthResult struct {
	User       *models.User
	Token      string
	ExpiresAt  time.Time
	RedirectTo string
}

// Register creates a public, non-admin account and logs it in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)

	if in.Username == "" || in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, models.NewValidationError("Username, email, password and name are required")
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateLength("name", in.Name, validation.MaxNameLength); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hashed),
		Name:     in.Name,
		IsPublic: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.establish(ctx, user)
}

// Login checks credentials. Unknown users, banned users and wrong passwords
// all produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, models.NewValidationError("Username and password are required")
	}

	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		return nil, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}
	if user.IsBanned {
		return nil, errInvalidCredentials
	}

	return s.establish(ctx, user)
}

// Logout revokes the session behind token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		if errors.Is(err, session.ErrInvalidSession) {
			return models.NewUnauthorizedError("Invalid or expired session")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Authenticate resolves a session token to its user. A banned user keeps a
// valid token but is refused with a forbidden error.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, *session.Claims, error) {
	claims, err := s.sessions.Validate(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrInvalidSession) {
			return nil, nil, models.NewUnauthorizedError("Invalid or expired session")
		}
		return nil, nil, models.NewInternalError(err)
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, nil, models.NewUnauthorizedError("Invalid or expired session")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, models.NewUnauthorizedError("Invalid or expired session")
		}
		return nil, nil, err
	}
	if user.IsBanned {
		return nil, nil, models.NewForbiddenError("Account is banned")
	}
	return user, claims, nil
}

func (s *AuthService) establish(ctx context.Context, user *models.User) (*AuthResult, error) {
	token, claims, err := s.sessions.Issue(ctx, user)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	redirect := UserLandingPage
	if user.IsAdmin {
		redirect = AdminLandingPage
	}
	return &AuthResult{
		User:       user,
		Token:      token,
		ExpiresAt:  claims.ExpiresAt.Time,
		RedirectTo: redirect,
	}, nil
}
