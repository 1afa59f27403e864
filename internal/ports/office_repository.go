package ports

import (
	"context"
	"logistics-quote-service/internal/domain"
)

// Port: a boundary for retrieving Office entities from a data source.
type OfficeRepository interface {
	// Retrieve all registered offices.
	ListOffices(ctx context.Context) ([]*domain.Office, error)
	// Retrieve a single office by ID. Returns domain.ErrInvalidInput
	// (wrapped) when no office with that ID exists.
	GetOffice(ctx context.Context, officeID int) (*domain.Office, error)
}
