package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the database schema. The statements are restricted to syntax
// accepted by both SQLite and Postgres so the same code path serves the
// embedded and server-backed deployments.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createOfficesQuery := `
	CREATE TABLE IF NOT EXISTS offices (
		office_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		city TEXT NOT NULL,
		address TEXT NOT NULL,
		country TEXT NOT NULL,
		lat REAL,
		lon REAL
	);
	`

	createDistanceCacheQuery := `
	CREATE TABLE IF NOT EXISTS distance_cache (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        distance_km REAL NOT NULL,
        duration_seconds INTEGER NOT NULL,
        PRIMARY KEY (origin, destination)
    );
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        address TEXT PRIMARY KEY,
        lon REAL NOT NULL,
        lat REAL NOT NULL
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_distance_cache_destination_origin
    ON distance_cache(destination, origin);
	`

	statements := []string{
		createOfficesQuery,
		createDistanceCacheQuery,
		createGeocodeCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type OfficeSeed struct {
	OfficeID int      `json:"office_id"`
	Name     string   `json:"name"`
	City     string   `json:"city"`
	Address  string   `json:"address"`
	Country  string   `json:"country"`
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
}

// Populate the database with office data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed offices: read %q: %w", jsonPath, err)
	}

	var data []OfficeSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed offices: parse json: %w", err)
	}

	rows := make([]OfficeSeed, 0, len(data))
	for i, item := range data {
		if item.OfficeID <= 0 {
			return fmt.Errorf("seed offices: invalid office_id at index %d: %d", i+1, item.OfficeID)
		}

		item.Name = strings.TrimSpace(item.Name)
		item.City = strings.TrimSpace(item.City)
		item.Address = strings.TrimSpace(item.Address)
		item.Country = strings.TrimSpace(item.Country)
		if item.Name == "" || item.City == "" || item.Address == "" || item.Country == "" {
			return fmt.Errorf("seed offices: item at index %d: name, city, address and country are required", i+1)
		}
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed offices: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// $N placeholders are understood by both the pgx and sqlite drivers.
	query := `
	INSERT INTO offices (
		office_id,
		name,
		city,
		address,
		country,
		lat,
		lon
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (office_id) DO UPDATE
	SET name = EXCLUDED.name,
		city = EXCLUDED.city,
		address = EXCLUDED.address,
		country = EXCLUDED.country,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed offices: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range rows {
		if _, err := stmt.Exec(o.OfficeID, o.Name, o.City, o.Address, o.Country, o.Lat, o.Lon); err != nil {
			return fmt.Errorf("seed offices: insert office_id=%d: %w", o.OfficeID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed offices: commit tx: %w", err)
	}

	return nil
}
