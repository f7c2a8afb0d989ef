package repository

import (
	"context"
	"testing"

	"skillswap/internal/models"
	"skillswap/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func setupSQLite(t *testing.T) *gorm.DB {
	return testutil.NewTestDB(t)
}

func seedUser(t *testing.T, db *gorm.DB, username string, mutate ...func(*models.User)) *models.User {
	t.Helper()
	u := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hash",
		Name:     username,
		IsPublic: true,
	}
	for _, m := range mutate {
		m(u)
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func seedSkill(t *testing.T, db *gorm.DB, userID uint, name string, skillType models.SkillType) *models.SkillEntry {
	t.Helper()
	s := &models.SkillEntry{
		UserID:    userID,
		SkillName: name,
		SkillType: skillType,
		Level:     models.SkillLevelIntermediate,
	}
	require.NoError(t, NewSkillRepository(db).Create(context.Background(), s))
	return s
}
