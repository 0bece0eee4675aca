package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/rental_management_app/internal/utils/mapping"
)

type PgxPropertyRepository struct {
	BaseRepository
}

var _ portsrepo.PropertyRepositoryFacade = (*PgxPropertyRepository)(nil)

const propertyColumns = `property_id, name, address, unit_count, occupied_unit_count, base_rent, property_type, occupancy_status, image_url`

func (r *PgxPropertyRepository) ListProperties(ctx context.Context) ([]domain.Property, error) {
	props, err := queryAll(ctx, r.db(ctx), mapping.ToDomainProperty,
		`SELECT `+propertyColumns+` FROM properties ORDER BY property_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return props, nil
}

func (r *PgxPropertyRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	p, err := queryOne(ctx, r.db(ctx), mapping.ToDomainProperty,
		`SELECT `+propertyColumns+` FROM properties WHERE property_id = $1`, propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("property %s: %w", propertyID, err)
		}
		return nil, fmt.Errorf("failed to find property %s: %w", propertyID, err)
	}
	return p, nil
}

func (r *PgxPropertyRepository) SaveProperty(ctx context.Context, property domain.Property) error {
	m := mapping.ToModelProperty(property)
	query := `
		INSERT INTO properties (property_id, name, address, unit_count, occupied_unit_count, base_rent, property_type, occupancy_status, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (property_id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			unit_count = EXCLUDED.unit_count,
			occupied_unit_count = EXCLUDED.occupied_unit_count,
			base_rent = EXCLUDED.base_rent,
			property_type = EXCLUDED.property_type,
			occupancy_status = EXCLUDED.occupancy_status,
			image_url = EXCLUDED.image_url;
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.PropertyID, m.Name, m.Address, m.UnitCount, m.OccupiedUnitCount,
		m.BaseRent, m.PropertyType, m.OccupancyStatus, m.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("failed to save property: %w", err)
	}
	return nil
}
