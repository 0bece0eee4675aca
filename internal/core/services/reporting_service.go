package services

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
	"github.com/SscSPs/rental_management_app/internal/utils/accounting"
	"github.com/SscSPs/rental_management_app/internal/utils/records"
)

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	loader recordLoader
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repos portsrepo.RepositoryProvider, opts ...Option) portssvc.ReportingSvcFacade {
	return &reportingService{
		BaseService: newBaseService(opts),
		loader:      newRecordLoader(repos),
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// startReport opens the span every report runs under.
func (s *reportingService) startReport(ctx context.Context, report domain.ReportType, period domain.DateRange) (context.Context, trace.Span) {
	ctx, span := tracer.Start(ctx, "ReportingService."+string(report))
	span.SetAttributes(attribute.String("report.type", string(report)))
	if !period.From.IsZero() {
		span.SetAttributes(attribute.String("report.from", domain.FormatDate(period.From)))
	}
	if !period.To.IsZero() {
		span.SetAttributes(attribute.String("report.to", domain.FormatDate(period.To)))
	}
	return ctx, span
}

func (s *reportingService) fail(ctx context.Context, span trace.Span, err error, msg string) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	s.LogError(ctx, err, msg)
	return err
}

// IncomeStatement generates a profit and loss report for a period
func (s *reportingService) IncomeStatement(ctx context.Context, period domain.DateRange) (*domain.IncomeStatement, error) {
	ctx, span := s.startReport(ctx, domain.ReportIncomeStatement, period)
	defer span.End()

	rs, err := s.loader.load(ctx, withProperties, withInvoices, withPayments, withExpenses)
	if err != nil {
		return nil, s.fail(ctx, span, err, "Failed to load records for income statement")
	}
	report := accounting.IncomeStatement(rs.properties, rs.invoices, rs.payments, rs.expenses, period)

	s.LogInfo(ctx, "Income statement generated successfully",
		slog.String("revenue", report.TotalRevenue.StringFixed(2)),
		slog.String("expenses", report.TotalExpenses.StringFixed(2)))
	return &report, nil
}

// RentRoll lists every lease. It has no period.
func (s *reportingService) RentRoll(ctx context.Context) (*domain.RentRoll, error) {
	ctx, span := s.startReport(ctx, domain.ReportRentRoll, domain.DateRange{})
	defer span.End()

	rs, err := s.loader.load(ctx, withProperties, withTenants)
	if err != nil {
		return nil, s.fail(ctx, span, err, "Failed to load records for rent roll")
	}
	roll := accounting.RentRoll(rs.tenants, rs.properties)

	s.LogInfo(ctx, "Rent roll generated successfully", slog.Int("entry_count", len(roll.Entries)))
	return &roll, nil
}

func (s *reportingService) TenantPaymentHistory(ctx context.Context, period domain.DateRange) ([]domain.TenantPaymentHistory, error) {
	ctx, span := s.startReport(ctx, domain.ReportTenantPayments, period)
	defer span.End()

	rs, err := s.loader.load(ctx, withTenants, withInvoices, withPayments)
	if err != nil {
		return nil, s.fail(ctx, span, err, "Failed to load records for tenant payment history")
	}
	history := accounting.TenantPaymentHistory(rs.tenants, rs.invoices, rs.payments, period)

	s.LogInfo(ctx, "Tenant payment history generated successfully", slog.Int("row_count", len(history)))
	return history, nil
}

func (s *reportingService) PropertyPerformance(ctx context.Context, period domain.DateRange) ([]domain.PropertyPerformance, error) {
	ctx, span := s.startReport(ctx, domain.ReportPropertyPerformance, period)
	defer span.End()

	rs, err := s.loader.load(ctx, withProperties, withInvoices, withPayments, withExpenses)
	if err != nil {
		return nil, s.fail(ctx, span, err, "Failed to load records for property performance")
	}
	payments := records.FilterByDateRange(rs.payments, paymentDate, period.From, period.To)
	expenses := records.FilterByDateRange(rs.expenses, func(e domain.Expense) time.Time { return e.Date }, period.From, period.To)
	perf := accounting.PropertyPerformance(rs.properties, rs.invoices, payments, expenses)

	s.LogInfo(ctx, "Property performance generated successfully", slog.Int("property_count", len(perf)))
	return perf, nil
}

func (s *reportingService) ExpenseSummary(ctx context.Context, period domain.DateRange) (*domain.ExpenseSummary, error) {
	ctx, span := s.startReport(ctx, domain.ReportExpenseSummary, period)
	defer span.End()

	rs, err := s.loader.load(ctx, withExpenses)
	if err != nil {
		return nil, s.fail(ctx, span, err, "Failed to load records for expense summary")
	}
	summary := accounting.ExpenseSummaryByCategory(rs.expenses, period)

	s.LogInfo(ctx, "Expense summary generated successfully", slog.Int("category_count", len(summary.Categories)))
	return &summary, nil
}
