package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillswap/internal/config"
	"skillswap/internal/models"
	"skillswap/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testPassword = "password123"

type testEnv struct {
	t   *testing.T
	srv *Server
	app *fiber.App
	db  *gorm.DB
}

type testResponse struct {
	Status  int
	Body    []byte
	Cookies []*http.Cookie
}

// newTestEnv wires the full middleware and route stack over an in-memory
// sqlite database. Redis is left out, so sessions live in memory.
func newTestEnv(t *testing.T, mutate ...func(*config.Config)) *testEnv {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	cfg := &config.Config{
		Env:                  "test",
		Port:                 "0",
		JWTSecret:            "test-secret-that-is-at-least-32-chars",
		DBDriver:             "sqlite",
		SessionTTLHours:      24,
		SessionCookieName:    "skillswap_session",
		SwapTransitionPolicy: config.TransitionPolicyPermissive,
		AllowedOrigins:       "http://localhost:3000",
	}
	for _, m := range mutate {
		m(cfg)
	}

	db := testutil.NewTestDB(t)
	srv, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	app := NewApp()
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)

	return &testEnv{t: t, srv: srv, app: app, db: db}
}

func (e *testEnv) do(method, path, token string, body any) testResponse {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			b, err := json.Marshal(body)
			require.NoError(e.t, err)
			raw = string(b)
		}
		reader = bytes.NewBufferString(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(e.t, err)
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)
	return testResponse{Status: resp.StatusCode, Body: data, Cookies: resp.Cookies()}
}

func readAll(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return data
}

func decode[T any](t *testing.T, r testResponse) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(r.Body, &out), "body: %s", r.Body)
	return out
}

type authBody struct {
	Success    bool   `json:"success"`
	UserID     uint   `json:"userId"`
	IsAdmin    bool   `json:"isAdmin"`
	RedirectTo string `json:"redirectTo"`
	Token      string `json:"token"`
}

type testUser struct {
	ID    uint
	Token string
}

// register creates username and returns its id and session token.
func (e *testEnv) register(username string) testUser {
	e.t.Helper()
	resp := e.do(http.MethodPost, "/api/register", "", fiber.Map{
		"username": username,
		"email":    username + "@example.com",
		"password": testPassword,
		"name":     "Name " + username,
	})
	require.Equal(e.t, fiber.StatusOK, resp.Status, "body: %s", resp.Body)
	body := decode[authBody](e.t, resp)
	return testUser{ID: body.UserID, Token: body.Token}
}

// registerAdmin promotes a fresh user and logs in again so the session
// carries the admin flag.
func (e *testEnv) registerAdmin(username string) testUser {
	e.t.Helper()
	u := e.register(username)
	require.NoError(e.t, e.db.Model(&models.User{}).Where("id = ?", u.ID).Update("is_admin", true).Error)
	return e.login(username)
}

func (e *testEnv) login(username string) testUser {
	e.t.Helper()
	resp := e.do(http.MethodPost, "/api/login", "", fiber.Map{
		"username": username,
		"password": testPassword,
	})
	require.Equal(e.t, fiber.StatusOK, resp.Status, "body: %s", resp.Body)
	body := decode[authBody](e.t, resp)
	return testUser{ID: body.UserID, Token: body.Token}
}

func (e *testEnv) addSkill(u testUser, name string, skillType models.SkillType) uint {
	e.t.Helper()
	resp := e.do(http.MethodPost, "/api/skills", u.Token, fiber.Map{
		"skill_name":  name,
		"skill_type":  skillType,
		"description": "",
		"level":       models.SkillLevelIntermediate,
	})
	require.Equal(e.t, fiber.StatusOK, resp.Status, "body: %s", resp.Body)
	return decode[struct {
		SkillID uint `json:"skillId"`
	}](e.t, resp).SkillID
}

func (e *testEnv) createSwap(from, to testUser) uint {
	e.t.Helper()
	resp := e.do(http.MethodPost, "/api/swap-requests", from.Token, fiber.Map{
		"requested_id":  to.ID,
		"offered_skill": "Guitar",
		"wanted_skill":  "Python",
		"message":       "Trade?",
	})
	require.Equal(e.t, fiber.StatusOK, resp.Status, "body: %s", resp.Body)
	return decode[struct {
		RequestID uint `json:"requestId"`
	}](e.t, resp).RequestID
}

func (e *testEnv) setStatus(u testUser, swapID uint, status models.SwapStatus) testResponse {
	e.t.Helper()
	return e.do(http.MethodPut, fmt.Sprintf("/api/swap-requests/%d", swapID), u.Token, fiber.Map{"status": status})
}

func errorBody(t *testing.T, r testResponse) models.ErrorResponse {
	t.Helper()
	return decode[models.ErrorResponse](t, r)
}
