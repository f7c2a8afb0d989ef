// Package main provides operator utilities for SkillSwap accounts.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"skillswap/internal/cache"
	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/repository"
	"skillswap/internal/service"

	"gorm.io/gorm"
)

const usage = `Usage:
  admin promote <username>     - Grant the admin role
  admin demote <username>      - Revoke the admin role (existing sessions keep admin access until they expire)
  admin ban <username>         - Ban a user
  admin unban <username>       - Lift a ban
  admin list-admins            - List all admins`

var errUsage = errors.New("invalid usage")

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := run(context.Background(), db, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Println(usage)
		} else {
			fmt.Printf("❌ %v\n", err)
		}
		os.Exit(1)
	}
}

// connect opens the database and the shared Redis cache. Ban and role
// changes must reach the server's cached user rows.
func connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	cache.InitRedis(cfg.RedisURL)
	if cache.GetClient() == nil {
		log.Println("⚠️  Redis unavailable: running servers may serve cached user rows for up to", cache.UserTTL)
	}
	return db, nil
}

func run(ctx context.Context, db *gorm.DB, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	admin := service.NewAdminService(repository.NewUserRepository(db), repository.NewAdminRepository(db))

	username := func() (string, error) {
		if len(args) < 2 || args[1] == "" {
			return "", errUsage
		}
		return args[1], nil
	}

	switch args[0] {
	case "promote", "demote":
		name, err := username()
		if err != nil {
			return err
		}
		user, err := admin.SetAdmin(ctx, name, args[0] == "promote")
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "✅ %s (ID: %d) is_admin=%v\n", user.Username, user.ID, user.IsAdmin)

	case "ban", "unban":
		name, err := username()
		if err != nil {
			return err
		}
		user, err := admin.SetBannedByUsername(ctx, name, args[0] == "ban")
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "✅ %s (ID: %d) is_banned=%v\n", user.Username, user.ID, user.IsBanned)

	case "list-admins":
		admins, err := admin.ListAdmins(ctx)
		if err != nil {
			return err
		}
		if len(admins) == 0 {
			fmt.Fprintln(out, "No admins found in the system")
			return nil
		}
		fmt.Fprintln(out, "📋 Current Admins:")
		for _, a := range admins {
			fmt.Fprintf(out, "ID: %d | Username: %s | Email: %s\n", a.ID, a.Username, a.Email)
		}

	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
	return nil
}
