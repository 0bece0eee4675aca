package services

import (
	"context"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
)

// TenantSvcFacade builds the tenant pages for one tenant.
type TenantSvcFacade interface {
	Dashboard(ctx context.Context, tenantID string) (*domain.TenantDashboard, error)
	ListInvoices(ctx context.Context, tenantID string, status string) (*domain.InvoiceList, error)
	ListPayments(ctx context.Context, tenantID string) (*domain.PaymentList, error)
	ListCredits(ctx context.Context, tenantID string) (*domain.CreditSummary, error)
	Statement(ctx context.Context, tenantID string) (*domain.Statement, error)
	Profile(ctx context.Context, tenantID string) (*domain.TenantProfile, error)
}
