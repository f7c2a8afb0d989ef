// Command migrate runs schema operations for the backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"skillswap/internal/config"
	"skillswap/internal/database"

	"gorm.io/gorm"
)

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		log.Fatal(usage())
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := run(context.Background(), cfg, db, flag.Arg(0), os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: migrate <up|status>")
}

func run(ctx context.Context, cfg *config.Config, db *gorm.DB, command string, out io.Writer) error {
	switch strings.ToLower(strings.TrimSpace(command)) {
	case "up":
		if err := database.ApplySchema(ctx, db, cfg); err != nil {
			return fmt.Errorf("schema apply failed: %w", err)
		}
		fmt.Fprintln(out, "schema applied")
	case "status":
		status, err := database.GetSchemaStatus(ctx, db, cfg)
		if err != nil {
			return fmt.Errorf("schema status failed: %w", err)
		}
		fmt.Fprintf(out, "driver=%s env=%s ready=%t\n", status.Driver, status.Environment, status.Ready())
		for _, table := range status.MissingTables {
			fmt.Fprintf(out, "missing table: %s\n", table)
		}
		for _, constraint := range status.MissingConstraints {
			fmt.Fprintf(out, "missing constraint: %s\n", constraint)
		}
	default:
		return usage()
	}
	return nil
}
