package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"skillswap/internal/config"
	"skillswap/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func TestHealth_WithoutRedis(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.Status)

	resp = env.do(http.MethodGet, "/health/ready", "", nil)
	require.Equal(t, fiber.StatusOK, resp.Status)
	body := decode[healthBody](t, resp)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "healthy", body.Checks["database"])
	assert.Equal(t, "unavailable", body.Checks["redis"])
}

func TestHealth_RedisDown(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	srv, err := NewServerWithDeps(&config.Config{
		Env:               "test",
		JWTSecret:         "test-secret-that-is-at-least-32-chars",
		SessionTTLHours:   24,
		SessionCookieName: "skillswap_session",
	}, testutil.NewTestDB(t), rdb)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/health", srv.ReadinessCheck)

	check := func() healthBody {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		return decode[healthBody](t, testResponse{Status: resp.StatusCode, Body: readAll(t, resp)})
	}

	assert.Equal(t, "healthy", check().Checks["redis"])

	mr.Close()
	body := check()
	assert.Equal(t, "unhealthy", body.Status)
	assert.Equal(t, "unhealthy", body.Checks["redis"])
}

func TestNewServerWithDeps_UnknownPolicy(t *testing.T) {
	_, err := NewServerWithDeps(&config.Config{
		JWTSecret:            "test-secret-that-is-at-least-32-chars",
		SessionTTLHours:      24,
		SwapTransitionPolicy: "chaotic",
	}, testutil.NewTestDB(t), nil)
	assert.Error(t, err)
}

func TestSetupMiddleware_SecurityHeadersAndCORS(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Content-Type-Options"))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestSetupMiddleware_LimiterReturnsJSON(t *testing.T) {
	srv := &Server{config: &config.Config{AllowedOrigins: "http://localhost:3000"}}

	app := NewApp()
	srv.SetupMiddleware(app)
	app.Get("/limited", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 100; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/limited", nil), -1)
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/limited", nil), -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	body := decode[map[string]string](t, testResponse{Status: resp.StatusCode, Body: readAll(t, resp)})
	assert.Equal(t, "RATE_LIMITED", body["code"])
}

func TestNewApp_ErrorHandler(t *testing.T) {
	app := NewApp()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return assert.AnError
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body := decode[map[string]string](t, testResponse{Status: resp.StatusCode, Body: readAll(t, resp)})
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotContains(t, body["error"], assert.AnError.Error())
}

func TestSwaggerIsServed(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(http.MethodGet, "/api/swagger/doc.json", "", nil)
	require.Equal(t, fiber.StatusOK, resp.Status)
	assert.Contains(t, string(resp.Body), "SkillSwap API")
	assert.Contains(t, string(resp.Body), "/swap-requests/{id}")
}
