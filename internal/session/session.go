// Package session issues and validates login sessions: an HS256 JWT whose
// jti is also recorded server-side so a logout can revoke it before expiry.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"skillswap/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	Issuer   = "skillswap-api"
	Audience = "skillswap-client"
)

var (
	// ErrInvalidSession covers malformed, expired, mis-signed and revoked tokens.
	ErrInvalidSession = errors.New("invalid or expired session")
	errNoSecret       = errors.New("session secret not configured")
)

// Claims is the JWT payload. The admin flag is cached at login time.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Admin    bool   `json:"adm"`
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid subject %q: %w", c.Subject, err)
	}
	return uint(id), nil
}

// Manager signs tokens and checks them against the session Store.
type Manager struct {
	secret []byte
	ttl    time.Duration
	store  Store
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration, store Store) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
		now:    time.Now,
	}
}

// TTL is the lifetime of both the token and its server-side record.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a session for user and returns the signed token.
func (m *Manager) Issue(ctx context.Context, user *models.User) (string, *Claims, error) {
	if len(m.secret) == 0 {
		return "", nil, errNoSecret
	}

	now := m.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			Issuer:    Issuer,
			Audience:  jwt.ClaimStrings{Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Username: user.Username,
		Admin:    user.IsAdmin,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}

	if err := m.store.Save(ctx, claims.ID, user.ID, m.ttl); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}
	return signed, claims, nil
}

// Validate parses token and confirms its session record is still live.
// Storage failures are returned as-is so callers can tell them apart from
// ErrInvalidSession.
func (m *Manager) Validate(ctx context.Context, token string) (*Claims, error) {
	claims, err := m.parse(token)
	if err != nil {
		return nil, err
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, ErrInvalidSession
	}

	owner, ok, err := m.store.Lookup(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	if !ok || owner != userID {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

// Revoke deletes the session record behind token. Revoking an unknown or
// already revoked token is not an error.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	claims, err := m.parse(token)
	if err != nil {
		return err
	}
	return m.store.Delete(ctx, claims.ID)
}

func (m *Manager) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithAudience(Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid || claims.ID == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
