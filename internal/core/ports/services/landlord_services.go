package services

import (
	"context"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
)

// LandlordSvcFacade builds the landlord pages. Landlords see every record.
type LandlordSvcFacade interface {
	Dashboard(ctx context.Context) (*domain.LandlordDashboard, error)
	ListProperties(ctx context.Context) ([]domain.PropertyOverview, error)
	// ListTenants filters by lease status; "all" keeps everyone.
	ListTenants(ctx context.Context, status string) (*domain.TenantList, error)
	ListInvoices(ctx context.Context, filter domain.InvoiceFilter) (*domain.InvoiceList, error)
	ListPayments(ctx context.Context, filter domain.PaymentFilter) (*domain.PaymentList, error)
	ListExpenses(ctx context.Context, filter domain.ExpenseFilter) (*domain.ExpenseList, error)
}
