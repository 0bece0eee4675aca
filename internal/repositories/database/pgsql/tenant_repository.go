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

type PgxTenantRepository struct {
	BaseRepository
}

var _ portsrepo.TenantRepositoryFacade = (*PgxTenantRepository)(nil)

const tenantColumns = `tenant_id, name, email, phone, property_id, unit_label, lease_start, lease_end, monthly_rent, deposit_amount, lease_status`

func (r *PgxTenantRepository) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	tenants, err := queryAll(ctx, r.db(ctx), mapping.ToDomainTenant,
		`SELECT `+tenantColumns+` FROM tenants ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

func (r *PgxTenantRepository) ListTenantsByProperty(ctx context.Context, propertyID string) ([]domain.Tenant, error) {
	tenants, err := queryAll(ctx, r.db(ctx), mapping.ToDomainTenant,
		`SELECT `+tenantColumns+` FROM tenants WHERE property_id = $1 ORDER BY seq`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants for property %s: %w", propertyID, err)
	}
	return tenants, nil
}

func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	t, err := queryOne(ctx, r.db(ctx), mapping.ToDomainTenant,
		`SELECT `+tenantColumns+` FROM tenants WHERE tenant_id = $1`, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("tenant %s: %w", tenantID, err)
		}
		return nil, fmt.Errorf("failed to find tenant %s: %w", tenantID, err)
	}
	return t, nil
}

func (r *PgxTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	query := `
		INSERT INTO tenants (tenant_id, name, email, phone, property_id, unit_label, lease_start, lease_end, monthly_rent, deposit_amount, lease_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (tenant_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			property_id = EXCLUDED.property_id,
			unit_label = EXCLUDED.unit_label,
			lease_start = EXCLUDED.lease_start,
			lease_end = EXCLUDED.lease_end,
			monthly_rent = EXCLUDED.monthly_rent,
			deposit_amount = EXCLUDED.deposit_amount,
			lease_status = EXCLUDED.lease_status;
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.TenantID, m.Name, m.Email, m.Phone, m.PropertyID, m.UnitLabel,
		m.LeaseStart, m.LeaseEnd, m.MonthlyRent, m.DepositAmount, m.LeaseStatus,
	)
	if err != nil {
		return fmt.Errorf("failed to save tenant: %w", err)
	}
	return nil
}
