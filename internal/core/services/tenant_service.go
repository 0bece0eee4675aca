package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
	"github.com/SscSPs/rental_management_app/internal/utils/accounting"
	"github.com/SscSPs/rental_management_app/internal/utils/records"
)

const dashboardTenantPayments = 5

// tenantService serves the pages of one tenant. A tenant's identity id is
// its tenant record id.
type tenantService struct {
	BaseService
	properties portsrepo.PropertyReader
	tenants    portsrepo.TenantReader
	invoices   portsrepo.InvoiceReader
	payments   portsrepo.PaymentReader
	credits    portsrepo.CreditNoteReader
}

// NewTenantService creates the service behind the tenant pages.
func NewTenantService(repos portsrepo.RepositoryProvider, opts ...Option) portssvc.TenantSvcFacade {
	return &tenantService{
		BaseService: newBaseService(opts),
		properties:  repos.PropertyRepo,
		tenants:     repos.TenantRepo,
		invoices:    repos.InvoiceRepo,
		payments:    repos.PaymentRepo,
		credits:     repos.CreditNoteRepo,
	}
}

var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

func (s *tenantService) Dashboard(ctx context.Context, tenantID string) (*domain.TenantDashboard, error) {
	ctx, span := tracer.Start(ctx, "TenantService.Dashboard")
	defer span.End()

	tenant, err := s.tenants.FindTenantByID(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find tenant", slog.String("tenant_id", tenantID))
		return nil, err
	}

	var (
		invoices []domain.Invoice
		payments []domain.Payment
		credits  []domain.CreditNote
		propName string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		invoices, err = s.invoices.ListInvoicesByTenant(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.payments.ListPaymentsByTenant(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		credits, err = s.credits.ListCreditNotesByTenant(gctx, tenantID)
		return err
	})
	g.Go(func() error {
		prop, err := s.lookupProperty(gctx, tenant.PropertyID)
		if prop != nil {
			propName = prop.Name
		}
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load tenant records", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to load records for tenant %s: %w", tenantID, err)
	}

	dash := &domain.TenantDashboard{
		Tenant:            *tenant,
		PropertyName:      propName,
		CurrentDue:        decimal.Zero,
		TotalPaidThisYear: accounting.IncomeForPeriod(payments, strconv.Itoa(s.Today().Year())),
		AvailableCredits:  accounting.AvailableCredit(credits),
		OverdueAmount: accounting.SumAmounts(invoices, func(i domain.Invoice) bool {
			return i.Status == domain.InvoiceOverdue
		}),
		RecentPayments: records.Take(records.SortByDateDesc(payments, paymentDate), dashboardTenantPayments),
	}
	// The first open invoice in stored order is the one currently due.
	for _, inv := range invoices {
		if inv.Status.IsOutstanding() {
			dash.CurrentDue = inv.Amount
			due := domain.FormatDate(inv.DueDate)
			dash.CurrentDueDate = &due
			break
		}
	}
	return dash, nil
}

func (s *tenantService) ListInvoices(ctx context.Context, tenantID string, status string) (*domain.InvoiceList, error) {
	if err := checkFilter("status", status, invoiceStatuses); err != nil {
		return nil, err
	}
	invoices, err := s.invoices.ListInvoicesByTenant(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tenant invoices", slog.String("tenant_id", tenantID))
		return nil, err
	}
	return buildInvoiceList(invoices, domain.InvoiceFilter{Status: status})
}

func (s *tenantService) ListPayments(ctx context.Context, tenantID string) (*domain.PaymentList, error) {
	payments, err := s.payments.ListPaymentsByTenant(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tenant payments", slog.String("tenant_id", tenantID))
		return nil, err
	}
	return buildPaymentList(payments, domain.PaymentFilter{})
}

func (s *tenantService) ListCredits(ctx context.Context, tenantID string) (*domain.CreditSummary, error) {
	credits, err := s.credits.ListCreditNotesByTenant(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tenant credits", slog.String("tenant_id", tenantID))
		return nil, err
	}
	sorted := records.SortByDateDesc(credits, func(c domain.CreditNote) time.Time { return c.Date })
	if sorted == nil {
		sorted = []domain.CreditNote{}
	}
	return &domain.CreditSummary{
		Credits:        sorted,
		AvailableTotal: accounting.AvailableCredit(credits),
		Total:          accounting.SumAmounts(credits, nil),
	}, nil
}

func (s *tenantService) Statement(ctx context.Context, tenantID string) (*domain.Statement, error) {
	ctx, span := tracer.Start(ctx, "TenantService.Statement")
	defer span.End()

	var (
		invoices []domain.Invoice
		payments []domain.Payment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		invoices, err = s.invoices.ListInvoicesByTenant(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.payments.ListPaymentsByTenant(gctx, tenantID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load statement records", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to load statement for tenant %s: %w", tenantID, err)
	}

	lines := accounting.BuildStatement(invoices, payments, tenantID)
	if lines == nil {
		lines = []domain.LedgerLine{}
	}
	return &domain.Statement{
		TenantID: tenantID,
		Lines:    lines,
		Summary:  accounting.SummarizeStatement(lines),
	}, nil
}

func (s *tenantService) Profile(ctx context.Context, tenantID string) (*domain.TenantProfile, error) {
	tenant, err := s.tenants.FindTenantByID(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find tenant", slog.String("tenant_id", tenantID))
		return nil, err
	}
	prop, err := s.lookupProperty(ctx, tenant.PropertyID)
	if err != nil {
		return nil, err
	}
	return &domain.TenantProfile{Tenant: *tenant, Property: prop}, nil
}

// lookupProperty tolerates a dangling property reference.
func (s *tenantService) lookupProperty(ctx context.Context, propertyID string) (*domain.Property, error) {
	prop, err := s.properties.FindPropertyByID(ctx, propertyID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	return prop, err
}
