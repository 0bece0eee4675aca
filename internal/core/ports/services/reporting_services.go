package services

import (
	"context"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
)

// ReportingSvcFacade generates the landlord reports over an optional period.
type ReportingSvcFacade interface {
	IncomeStatement(ctx context.Context, period domain.DateRange) (*domain.IncomeStatement, error)
	RentRoll(ctx context.Context) (*domain.RentRoll, error)
	TenantPaymentHistory(ctx context.Context, period domain.DateRange) ([]domain.TenantPaymentHistory, error)
	PropertyPerformance(ctx context.Context, period domain.DateRange) ([]domain.PropertyPerformance, error)
	ExpenseSummary(ctx context.Context, period domain.DateRange) (*domain.ExpenseSummary, error)
}
