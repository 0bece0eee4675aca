package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_management_app/internal/core/ports/repositories"
)

// recordSet is a snapshot of every record a landlord can see.
type recordSet struct {
	properties []domain.Property
	tenants    []domain.Tenant
	invoices   []domain.Invoice
	payments   []domain.Payment
	expenses   []domain.Expense
}

// recordLoader reads the record tables concurrently.
type recordLoader struct {
	properties portsrepo.PropertyReader
	tenants    portsrepo.TenantReader
	invoices   portsrepo.InvoiceReader
	payments   portsrepo.PaymentReader
	expenses   portsrepo.ExpenseReader
}

func newRecordLoader(repos portsrepo.RepositoryProvider) recordLoader {
	return recordLoader{
		properties: repos.PropertyRepo,
		tenants:    repos.TenantRepo,
		invoices:   repos.InvoiceRepo,
		payments:   repos.PaymentRepo,
		expenses:   repos.ExpenseRepo,
	}
}

// loadFunc names the tables a caller needs. Unrequested tables stay nil.
type loadFunc func(ctx context.Context, l recordLoader, rs *recordSet) error

var (
	withProperties loadFunc = func(ctx context.Context, l recordLoader, rs *recordSet) (err error) {
		rs.properties, err = l.properties.ListProperties(ctx)
		return wrapLoad("properties", err)
	}
	withTenants loadFunc = func(ctx context.Context, l recordLoader, rs *recordSet) (err error) {
		rs.tenants, err = l.tenants.ListTenants(ctx)
		return wrapLoad("tenants", err)
	}
	withInvoices loadFunc = func(ctx context.Context, l recordLoader, rs *recordSet) (err error) {
		rs.invoices, err = l.invoices.ListInvoices(ctx)
		return wrapLoad("invoices", err)
	}
	withPayments loadFunc = func(ctx context.Context, l recordLoader, rs *recordSet) (err error) {
		rs.payments, err = l.payments.ListPayments(ctx)
		return wrapLoad("payments", err)
	}
	withExpenses loadFunc = func(ctx context.Context, l recordLoader, rs *recordSet) (err error) {
		rs.expenses, err = l.expenses.ListExpenses(ctx)
		return wrapLoad("expenses", err)
	}
)

func wrapLoad(table string, err error) error {
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", table, err)
	}
	return nil
}

// load runs every requested read in parallel and fails on the first error.
func (l recordLoader) load(ctx context.Context, tables ...loadFunc) (*recordSet, error) {
	rs := &recordSet{}
	g, gctx := errgroup.WithContext(ctx)
	for _, fn := range tables {
		g.Go(func() error { return fn(gctx, l, rs) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rs, nil
}
