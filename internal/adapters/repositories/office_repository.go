package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"logistics-quote-service/internal/domain"
)

// SQL-backed implementation of the OfficeRepository port. Works against both
// the embedded SQLite database and Postgres.
type SQLOfficeRepository struct{ DB *sql.DB }

func NewSQLOfficeRepository(db *sql.DB) *SQLOfficeRepository {
	return &SQLOfficeRepository{DB: db}
}

// Return all offices stored in the database.
func (s *SQLOfficeRepository) ListOffices(ctx context.Context) ([]*domain.Office, error) {
	if s.DB == nil {
		return nil, errors.New("office repository: DB is nil")
	}

	query := `
	SELECT
		office_id,
		name,
		city,
		address,
		country,
		lat,
		lon
	FROM offices
	ORDER BY office_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list offices: query offices table: %w", err)
	}
	defer rows.Close()

	offices := make([]*domain.Office, 0, 16)
	for rows.Next() {
		o, err := scanOffice(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list offices: scan row: %w", err)
		}
		offices = append(offices, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list offices: row iteration: %w", err)
	}

	return offices, nil
}

// Return a single office by ID.
func (s *SQLOfficeRepository) GetOffice(ctx context.Context, officeID int) (*domain.Office, error) {
	if s.DB == nil {
		return nil, errors.New("office repository: DB is nil")
	}

	query := `
	SELECT
		office_id,
		name,
		city,
		address,
		country,
		lat,
		lon
	FROM offices
	WHERE office_id = $1;
	`
	row := s.DB.QueryRowContext(ctx, query, officeID)

	o, err := scanOffice(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no office with id %d", domain.ErrInvalidInput, officeID)
	}
	if err != nil {
		return nil, fmt.Errorf("get office %d: %w", officeID, err)
	}

	return o, nil
}

func scanOffice(scan func(dest ...any) error) (*domain.Office, error) {
	var o domain.Office
	var lat, lon sql.NullFloat64

	if err := scan(&o.OfficeID, &o.Name, &o.City, &o.Address, &o.Country, &lat, &lon); err != nil {
		return nil, err
	}

	if lat.Valid && lon.Valid {
		o.Coords = &domain.Coordinates{Lat: lat.Float64, Lon: lon.Float64}
	}

	return &o, nil
}
