package database

import (
	"context"
	"fmt"
	"log/slog"

	"skillswap/internal/config"
	"skillswap/internal/middleware"
	"skillswap/internal/models"

	"gorm.io/gorm"
)

// checkConstraints lists the CHECK constraints every deployment must carry.
var checkConstraints = []struct {
	Model any
	Name  string
}{
	{&models.SkillEntry{}, "chk_skills_type"},
	{&models.SkillEntry{}, "chk_skills_level"},
	{&models.SwapRequest{}, "chk_swap_requests_status"},
	{&models.Rating{}, "chk_ratings_rating"},
}

// SchemaStatus reports which managed tables and constraints exist.
type SchemaStatus struct {
	Driver             string
	Environment        string
	MissingTables      []string
	MissingConstraints []string
}

// Ready reports whether nothing is missing.
func (s *SchemaStatus) Ready() bool {
	return len(s.MissingTables) == 0 && len(s.MissingConstraints) == 0
}

func runAutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(PersistentModels()...)
}

// ApplySchema creates or updates every managed table.
func ApplySchema(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	middleware.Logger.InfoContext(ctx, "Running GORM AutoMigrate",
		slog.String("driver", cfg.DBDriver), slog.String("env", cfg.Env))
	if err := runAutoMigrate(db.WithContext(ctx)); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	middleware.Logger.InfoContext(ctx, "Database migration completed")
	return nil
}

// GetSchemaStatus inspects the live schema without modifying it.
func GetSchemaStatus(ctx context.Context, db *gorm.DB, cfg *config.Config) (*SchemaStatus, error) {
	status := &SchemaStatus{
		Driver:      cfg.DBDriver,
		Environment: cfg.Env,
	}

	migrator := db.WithContext(ctx).Migrator()
	for _, model := range PersistentModels() {
		if !migrator.HasTable(model) {
			stmt := &gorm.Statement{DB: db}
			if err := stmt.Parse(model); err != nil {
				return nil, fmt.Errorf("parse model: %w", err)
			}
			status.MissingTables = append(status.MissingTables, stmt.Schema.Table)
		}
	}

	for _, chk := range checkConstraints {
		if !migrator.HasTable(chk.Model) {
			continue
		}
		if !migrator.HasConstraint(chk.Model, chk.Name) {
			status.MissingConstraints = append(status.MissingConstraints, chk.Name)
		}
	}

	return status, nil
}
