package main

import (
	"context"
	"log"
	"os"

	"betvida/internal/catalog"
	"betvida/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// Seeds the game, video and achievement catalogs. Safe to run more than
// once: rows that already exist are skipped.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()

	games, err := repository.NewGameRepository(db).Seed(ctx, catalog.Games)
	if err != nil {
		log.Fatalf("seed games: %v", err)
	}
	videos, err := repository.NewVideoRepository(db).Seed(ctx, catalog.Videos)
	if err != nil {
		log.Fatalf("seed videos: %v", err)
	}
	achievements, err := repository.NewAchievementRepository(db).Seed(ctx, catalog.Achievements)
	if err != nil {
		log.Fatalf("seed achievements: %v", err)
	}

	log.Printf("seeded %d games, %d videos, %d achievements (existing rows skipped)",
		games, videos, achievements)
}
