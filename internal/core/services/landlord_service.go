package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
	"github.com/SscSPs/rental_management_app/internal/utils/accounting"
	"github.com/SscSPs/rental_management_app/internal/utils/pagination"
	"github.com/SscSPs/rental_management_app/internal/utils/records"
)

const (
	dashboardRecentPayments = 8
	dashboardMonths         = 6
)

var (
	invoiceStatuses = []string{string(domain.InvoicePaid), string(domain.InvoicePending), string(domain.InvoiceOverdue)}
	leaseStatuses   = []string{string(domain.LeaseCurrent), string(domain.LeaseExpiring), string(domain.LeaseOverdue)}
)

type landlordService struct {
	BaseService
	loader recordLoader
}

// NewLandlordService creates the service behind the landlord pages.
func NewLandlordService(repos portsrepo.RepositoryProvider, opts ...Option) portssvc.LandlordSvcFacade {
	return &landlordService{
		BaseService: newBaseService(opts),
		loader:      newRecordLoader(repos),
	}
}

var _ portssvc.LandlordSvcFacade = (*landlordService)(nil)

func (s *landlordService) Dashboard(ctx context.Context) (*domain.LandlordDashboard, error) {
	ctx, span := tracer.Start(ctx, "LandlordService.Dashboard")
	defer span.End()

	rs, err := s.loader.load(ctx, withProperties, withTenants, withInvoices, withPayments, withExpenses)
	if err != nil {
		s.LogError(ctx, err, "Failed to load records for landlord dashboard")
		return nil, err
	}

	ref := s.Today()
	month := accounting.MonthOf(ref)
	income := accounting.IncomeForPeriod(rs.payments, month)
	lastIncome := accounting.IncomeForPeriod(rs.payments, accounting.PreviousMonth(ref))
	spent := accounting.ExpensesForPeriod(rs.expenses, month)

	dash := &domain.LandlordDashboard{
		Month:              month,
		MonthlyIncome:      income,
		LastMonthIncome:    lastIncome,
		IncomeChangePct:    accounting.PercentChange(income, lastIncome),
		MonthlyExpenses:    spent,
		AccountsReceivable: accounting.AccountsReceivable(rs.invoices),
		WorkingCapital:     income.Sub(spent),
		IncomeVsExpenses:   accounting.MonthlyRollup(rs.payments, rs.expenses, ref, dashboardMonths),
		CollectionRate:     accounting.CollectionRateFor(rs.invoices, month),
		RecentPayments:     records.Take(records.SortByDateDesc(rs.payments, paymentDate), dashboardRecentPayments),
		Outstanding:        accounting.OutstandingInvoices(rs.invoices, ref),
		PropertyCount:      len(rs.properties),
		TenantCount:        len(rs.tenants),
	}
	for _, p := range rs.properties {
		dash.OccupiedUnits += p.OccupiedUnitCount
		dash.TotalUnits += p.UnitCount
	}

	s.LogDebug(ctx, "Landlord dashboard built", slog.String("month", month), slog.Int("outstanding", len(dash.Outstanding)))
	return dash, nil
}

func (s *landlordService) ListProperties(ctx context.Context) ([]domain.PropertyOverview, error) {
	rs, err := s.loader.load(ctx, withProperties, withTenants)
	if err != nil {
		s.LogError(ctx, err, "Failed to load properties")
		return nil, err
	}
	byProperty := records.GroupBy(rs.tenants, func(t domain.Tenant) string { return t.PropertyID })

	out := make([]domain.PropertyOverview, 0, len(rs.properties))
	for _, p := range rs.properties {
		tenants := byProperty[p.ID]
		if tenants == nil {
			tenants = []domain.Tenant{}
		}
		rent := decimal.Zero
		for _, t := range tenants {
			rent = rent.Add(t.MonthlyRent)
		}
		out = append(out, domain.PropertyOverview{Property: p, Tenants: tenants, MonthlyIncome: rent})
	}
	return out, nil
}

func (s *landlordService) ListTenants(ctx context.Context, status string) (*domain.TenantList, error) {
	if err := checkFilter("status", status, leaseStatuses); err != nil {
		return nil, err
	}
	rs, err := s.loader.load(ctx, withProperties, withTenants)
	if err != nil {
		s.LogError(ctx, err, "Failed to load tenants")
		return nil, err
	}
	names := propertyNames(rs.properties)

	list := &domain.TenantList{
		Tenants:       []domain.TenantOverview{},
		StatusCounts:  make(map[domain.LeaseStatus]int, len(leaseStatuses)),
		TotalTenants:  len(rs.tenants),
		TotalRentRoll: decimal.Zero,
	}
	for _, st := range leaseStatuses {
		list.StatusCounts[domain.LeaseStatus(st)] = 0
	}
	for _, t := range rs.tenants {
		list.StatusCounts[t.LeaseStatus]++
		list.TotalRentRoll = list.TotalRentRoll.Add(t.MonthlyRent)
	}
	for _, t := range records.FilterByField(rs.tenants, tenantStatus, status) {
		list.Tenants = append(list.Tenants, domain.TenantOverview{Tenant: t, PropertyName: names[t.PropertyID]})
	}
	return list, nil
}

func (s *landlordService) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) (*domain.InvoiceList, error) {
	if err := checkFilter("status", filter.Status, invoiceStatuses); err != nil {
		return nil, err
	}
	rs, err := s.loader.load(ctx, withInvoices)
	if err != nil {
		s.LogError(ctx, err, "Failed to load invoices")
		return nil, err
	}
	return buildInvoiceList(rs.invoices, filter)
}

func (s *landlordService) ListPayments(ctx context.Context, filter domain.PaymentFilter) (*domain.PaymentList, error) {
	rs, err := s.loader.load(ctx, withPayments)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payments")
		return nil, err
	}
	return buildPaymentList(rs.payments, filter)
}

func (s *landlordService) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) (*domain.ExpenseList, error) {
	categories := make([]string, len(domain.ExpenseCategories))
	for i, c := range domain.ExpenseCategories {
		categories[i] = string(c)
	}
	if err := checkFilter("category", filter.Category, categories); err != nil {
		return nil, err
	}
	rs, err := s.loader.load(ctx, withExpenses)
	if err != nil {
		s.LogError(ctx, err, "Failed to load expenses")
		return nil, err
	}

	expenses := records.FilterByField(rs.expenses, func(e domain.Expense) string { return string(e.Category) }, filter.Category)
	expenses = records.FilterByField(expenses, func(e domain.Expense) string { return e.PropertyID }, filter.PropertyID)
	expenses = records.FilterByDateRange(expenses, func(e domain.Expense) time.Time { return e.Date }, filter.Period.From, filter.Period.To)
	expenses = records.SortByDateDesc(expenses, func(e domain.Expense) time.Time { return e.Date })

	return &domain.ExpenseList{
		Expenses:    expenses,
		TotalAmount: accounting.SumAmounts(expenses, nil),
		ByCategory:  accounting.ExpensesByCategory(expenses),
	}, nil
}

// buildInvoiceList filters, sorts newest first and pages invoices. Stats
// cover every status so that status tabs can show their counts.
func buildInvoiceList(invoices []domain.Invoice, filter domain.InvoiceFilter) (*domain.InvoiceList, error) {
	scoped := records.FilterByField(invoices, func(i domain.Invoice) string { return i.PropertyID }, filter.PropertyID)
	scoped = records.FilterByField(scoped, func(i domain.Invoice) string { return i.TenantID }, filter.TenantID)

	stats := domain.InvoiceStats{
		TotalAmount:   decimal.Zero,
		PaidAmount:    decimal.Zero,
		PendingAmount: decimal.Zero,
	}
	for _, inv := range scoped {
		stats.TotalAmount = stats.TotalAmount.Add(inv.Amount)
		switch inv.Status {
		case domain.InvoicePaid:
			stats.PaidCount++
			stats.PaidAmount = stats.PaidAmount.Add(inv.Amount)
		case domain.InvoicePending:
			stats.PendingCount++
			stats.PendingAmount = stats.PendingAmount.Add(inv.Amount)
		case domain.InvoiceOverdue:
			stats.OverdueCount++
			stats.PendingAmount = stats.PendingAmount.Add(inv.Amount)
		}
	}

	shown := records.FilterByField(scoped, func(i domain.Invoice) string { return string(i.Status) }, filter.Status)
	shown = records.SortByDateDesc(shown, invoiceIssueDate)
	page, next, err := pagination.Paginate(shown, invoiceIssueDate, func(i domain.Invoice) string { return i.ID }, filter.Limit, filter.PageToken)
	if err != nil {
		return nil, err
	}
	if page == nil {
		page = []domain.Invoice{}
	}
	return &domain.InvoiceList{Invoices: page, Stats: stats, NextPageToken: next}, nil
}

// buildPaymentList filters, sorts newest first and pages payments. Totals
// cover the whole filtered set, not just the page.
func buildPaymentList(payments []domain.Payment, filter domain.PaymentFilter) (*domain.PaymentList, error) {
	filtered := records.FilterByField(payments, func(p domain.Payment) string { return string(p.Method) }, filter.Method)
	filtered = records.FilterByField(filtered, func(p domain.Payment) string { return p.TenantID }, filter.TenantID)
	filtered = records.FilterByDateRange(filtered, paymentDate, filter.Period.From, filter.Period.To)
	filtered = records.SortByDateDesc(filtered, paymentDate)

	page, next, err := pagination.Paginate(filtered, paymentDate, func(p domain.Payment) string { return p.ID }, filter.Limit, filter.PageToken)
	if err != nil {
		return nil, err
	}
	if page == nil {
		page = []domain.Payment{}
	}
	return &domain.PaymentList{
		Payments:      page,
		TotalAmount:   accounting.SumAmounts(filtered, nil),
		Count:         len(filtered),
		NextPageToken: next,
	}, nil
}

// checkFilter accepts "all", empty, or one of allowed.
func checkFilter(field, value string, allowed []string) error {
	if value == "" || value == records.All || slices.Contains(allowed, value) {
		return nil
	}
	return apperrors.NewValidationError(field, fmt.Sprintf("unknown value %q", value))
}

func propertyNames(properties []domain.Property) map[string]string {
	names := make(map[string]string, len(properties))
	for _, p := range properties {
		names[p.ID] = p.Name
	}
	return names
}

func paymentDate(p domain.Payment) time.Time      { return p.PaymentDate }
func invoiceIssueDate(i domain.Invoice) time.Time { return i.IssueDate }
func tenantStatus(t domain.Tenant) string         { return string(t.LeaseStatus) }
