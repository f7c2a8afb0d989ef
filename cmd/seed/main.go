// Command main runs the database seeder for SkillSwap.
package main

import (
	"context"
	"flag"
	"log"

	"skillswap/internal/bootstrap"
	"skillswap/internal/config"
	"skillswap/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 0, "Number of fake users to create on top of the demo accounts")
	numSwaps := flag.Int("swaps", 0, "Number of fake swap requests between fake users")
	shouldClean := flag.Bool("clean", false, "Remove all non-admin data before seeding")
	dryRun := flag.Bool("dry-run", false, "Build fake rows without writing them")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: demo accounts + %d fake users, %d swaps, clean=%v\n", *numUsers, *numSwaps, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	db, _, err := bootstrap.InitRuntime(ctx, cfg, bootstrap.Options{})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	s := seed.NewSeeder(db, seed.Options{DryRun: *dryRun})

	if *shouldClean && !*dryRun {
		if err := s.ClearAll(ctx); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	if !*dryRun {
		created, err := seed.Demo(ctx, db)
		if err != nil {
			log.Fatalf("❌ Demo seeding failed: %v", err)
		}
		log.Printf("👤 Demo accounts created: %d", created)
	}

	if *numUsers > 0 {
		users, err := s.FakeUsers(*numUsers)
		if err != nil {
			log.Fatalf("❌ User seeding failed: %v", err)
		}
		if *numSwaps > 0 {
			if _, err := s.FakeSwaps(users, *numSwaps); err != nil {
				log.Fatalf("❌ Swap seeding failed: %v", err)
			}
		}
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Printf("📧 Demo and fake users have the password: %s", seed.FakePassword)
}
