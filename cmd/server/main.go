package main

import (
	"context"
	"log"

	"anoa.com/noorautomobiles/internal/bootstrap"
	"anoa.com/noorautomobiles/internal/config"
	"anoa.com/noorautomobiles/internal/server"
	"anoa.com/noorautomobiles/pkg/database"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	log.Println("✅ Connected to database")

	// The process must not serve requests on a not-fully-initialized schema.
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println("✅ Tables verified")

	if err := bootstrap.SeedAdminUser(db); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
	if err := bootstrap.SeedCars(db); err != nil {
		log.Fatalf("failed to seed cars: %v", err)
	}
	if err := bootstrap.SeedParts(db); err != nil {
		log.Fatalf("failed to seed parts: %v", err)
	}
	log.Println("🚀 Database initialized successfully")

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(opts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("⚠️ Redis unreachable, rate limiting disabled: %v", err)
			rdb = nil
		}
	}

	srv := server.NewServer(db, rdb, cfg)

	log.Printf("✅ Server running on port %s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
