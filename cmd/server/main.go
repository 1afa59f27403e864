package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"logistics-quote-service/internal/adapters/cache"
	"logistics-quote-service/internal/adapters/geocode"
	"logistics-quote-service/internal/adapters/repositories"
	"logistics-quote-service/internal/adapters/routing"
	"logistics-quote-service/internal/api"
	"logistics-quote-service/internal/config"
	"logistics-quote-service/internal/domain"
	"logistics-quote-service/internal/platform/db"
	"logistics-quote-service/internal/ports"
	"logistics-quote-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres, Redis, Nominatim, OSRM/ORS)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	seedPath := config.Get("SEED_PATH", "data/seeds/offices.json")

	database, err := openDatabase()
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	// Initialize schema and seed demo offices on startup for local runs.
	if err := initAndSeed(database, seedPath); err != nil {
		log.Fatal(err)
	}

	geocodeCache, distanceCache := buildCaches(database)

	geocoder, err := geocode.NewNominatimClient(
		config.Get("GEOCODER_USER_AGENT", "logistics-quote-service/1.0"),
		config.Get("GEOCODER_COUNTRY", "bg"),
		geocodeCache,
	)
	if err != nil {
		log.Fatal(err)
	}

	osrm := routing.NewOSRMRouter(config.Get("OSRM_BASE_URL", ""))
	providers := []ports.RouteProvider{}
	if key := strings.TrimSpace(os.Getenv("ORS_API_KEY")); key != "" {
		ors, err := routing.NewORSRouter(key)
		if err != nil {
			log.Fatal(err)
		}
		providers = append(providers, ors)
	}
	providers = append(providers, osrm)

	// Great-circle distance is the last resort when every road router is down.
	chain, err := routing.NewChain(distanceCache, routing.NewHaversineRouter(), providers...)
	if err != nil {
		log.Fatal(err)
	}

	resolver, err := services.NewResolver(geocoder, chain, pricingFromEnv())
	if err != nil {
		log.Fatal(err)
	}

	offices := repositories.NewSQLOfficeRepository(database)
	router := api.NewRouter(resolver, offices, geocoder, osrm)

	// Timeouts are tuned for cold-cache quoting (two geocodes plus a routing
	// call against external APIs).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openDatabase prefers Postgres when DATABASE_URL is set and falls back to a
// local SQLite file otherwise.
func openDatabase() (*sql.DB, error) {
	if url := strings.TrimSpace(os.Getenv("DATABASE_URL")); url != "" {
		return db.Open(url)
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %q: %w", dbPath, err)
	}
	if err := sqliteDB.Ping(); err != nil {
		return nil, fmt.Errorf("verify sqlite connection to %q: %w", dbPath, err)
	}

	return sqliteDB, nil
}

func initAndSeed(database *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(database); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(database, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// buildCaches picks the cache backend: Redis when REDIS_ADDR is set,
// otherwise the relational store doubles as the cache.
func buildCaches(database *sql.DB) (ports.GeocodeCache, ports.DistanceCache) {
	if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		ttl := 24 * time.Hour
		return cache.NewRedisGeocodeCache(client, ttl), cache.NewRedisDistanceCache(client, ttl)
	}

	if strings.TrimSpace(os.Getenv("DATABASE_URL")) != "" {
		return cache.NewSQLGeocodeCache(database), cache.NewSQLDistanceCache(database)
	}

	return cache.NewSqliteGeocodeCache(database), cache.NewSqliteDistanceCache(database)
}

func pricingFromEnv() services.PricingConfig {
	return services.PricingConfig{
		BaseFee:   config.GetFloat("BASE_FEE", 5.0),
		RatePerKM: config.GetFloat("RATE_PER_KM", 1.2),
		SizeMultiplier: map[domain.SizeClass]float64{
			domain.SizeS: config.GetFloat("SIZE_MULTIPLIER_S", 1.0),
			domain.SizeM: config.GetFloat("SIZE_MULTIPLIER_M", 1.3),
			domain.SizeL: config.GetFloat("SIZE_MULTIPLIER_L", 1.6),
		},
	}
}
