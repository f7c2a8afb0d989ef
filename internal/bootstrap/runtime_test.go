package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"skillswap/internal/cache"
	"skillswap/internal/config"
	"skillswap/internal/models"
	"skillswap/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func rootConfig() *config.Config {
	return &config.Config{
		Env:               "test",
		DBDriver:          "sqlite",
		RootAdminUsername: "admin",
		RootAdminEmail:    "Admin@SkillSwap.com",
		RootAdminPassword: "admin123",
	}
}

func TestEnsureRootAdmin_Creates(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	require.NoError(t, EnsureRootAdmin(ctx, rootConfig(), db))
	require.NoError(t, EnsureRootAdmin(ctx, rootConfig(), db))

	var admins []models.User
	require.NoError(t, db.Where("username = ?", "admin").Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.True(t, admins[0].IsAdmin)
	assert.False(t, admins[0].IsPublic)
	assert.Equal(t, "admin@skillswap.com", admins[0].Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admins[0].Password), []byte("admin123")))
}

func TestEnsureRootAdmin_RegrantsWithoutTouchingPassword(t *testing.T) {
	db := testutil.NewTestDB(t)
	require.NoError(t, db.Create(&models.User{
		Username: "admin", Email: "ops@example.com", Password: "existing-hash", Name: "Ops", IsBanned: true,
	}).Error)

	require.NoError(t, EnsureRootAdmin(context.Background(), rootConfig(), db))

	var root models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&root).Error)
	assert.True(t, root.IsAdmin)
	assert.False(t, root.IsBanned)
	assert.Equal(t, "existing-hash", root.Password)
	assert.Equal(t, "ops@example.com", root.Email)
}

func TestEnsureRootAdmin_NoPasswordIsNoop(t *testing.T) {
	db := testutil.NewTestDB(t)
	cfg := rootConfig()
	cfg.RootAdminPassword = ""

	require.NoError(t, EnsureRootAdmin(context.Background(), cfg, db))

	var n int64
	require.NoError(t, db.Model(&models.User{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestInitRuntime(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Cleanup(func() { cache.SetClient(nil) })

	cfg := rootConfig()
	cfg.SQLitePath = filepath.Join(t.TempDir(), "runtime.db")
	cfg.RedisURL = mr.Addr()

	db, rdb, err := InitRuntime(context.Background(), cfg, Options{SeedDemo: true})
	require.NoError(t, err)
	require.NotNil(t, rdb)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = rdb.Close()
	})

	var usernames []string
	require.NoError(t, db.Model(&models.User{}).Order("id").Pluck("username", &usernames).Error)
	assert.Equal(t, []string{"admin", "sarah_dev", "mike_designer"}, usernames)
}

func TestInitRuntime_WithoutRedis(t *testing.T) {
	t.Cleanup(func() { cache.SetClient(nil) })

	cfg := rootConfig()
	cfg.SQLitePath = filepath.Join(t.TempDir(), "runtime.db")
	cfg.RedisURL = "redis://:bad url"

	db, rdb, err := InitRuntime(context.Background(), cfg, Options{})
	require.NoError(t, err)
	assert.Nil(t, rdb)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
}
