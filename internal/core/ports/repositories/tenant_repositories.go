package repositories

import (
	"context"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
)

// TenantReader defines read operations for tenants
type TenantReader interface {
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
	ListTenantsByProperty(ctx context.Context, propertyID string) ([]domain.Tenant, error)
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
}

type TenantWriter interface {
	SaveTenant(ctx context.Context, tenant domain.Tenant) error
}

type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
}
