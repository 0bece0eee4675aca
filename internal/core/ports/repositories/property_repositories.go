package repositories

import (
	"context"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
)

// PropertyReader defines read operations for properties
type PropertyReader interface {
	// ListProperties returns every property ordered by id.
	ListProperties(ctx context.Context) ([]domain.Property, error)

	// FindPropertyByID returns apperrors.ErrNotFound for unknown ids.
	FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error)
}

// PropertyWriter is used by the seeding path only.
type PropertyWriter interface {
	SaveProperty(ctx context.Context, property domain.Property) error
}

type PropertyRepositoryFacade interface {
	PropertyReader
	PropertyWriter
}
