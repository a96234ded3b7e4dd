package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shoplyne/catalog-api/internal/cache"
	"github.com/shoplyne/catalog-api/internal/database"
	"github.com/shoplyne/catalog-api/internal/handlers"
	"github.com/shoplyne/catalog-api/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	app := &handlers.Handlers{DB: db}

	// Redis is optional. When REDIS_ADDR is unset or the server is
	// unreachable, category listings are served straight from the DB.
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
		rdb, err := cache.ConnectRedis(addr, os.Getenv("REDIS_PASSWORD"), redisDB)
		if err != nil {
			log.Printf("WARNING: Redis unavailable, continuing without cache: %v", err)
		} else {
			defer rdb.Close()
			app.Cache = rdb
		}
	}

	router := routes.SetupRouter(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting catalog API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
