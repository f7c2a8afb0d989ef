package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"skillswap/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRun_StatusThenUp(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg := &config.Config{DBDriver: "sqlite", Env: "test"}
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, run(ctx, cfg, db, "status", &out))
	assert.Contains(t, out.String(), "ready=false")
	assert.Contains(t, out.String(), "missing table: users")

	out.Reset()
	require.NoError(t, run(ctx, cfg, db, "UP", &out))
	assert.Contains(t, out.String(), "schema applied")

	out.Reset()
	require.NoError(t, run(ctx, cfg, db, "status", &out))
	assert.Contains(t, out.String(), "ready=true")
	assert.NotContains(t, out.String(), "missing")

	assert.Error(t, run(ctx, cfg, db, "down", &out))
}
