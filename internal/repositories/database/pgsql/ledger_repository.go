package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/rental_management_app/internal/utils/mapping"
)

// List queries order by seq, the insertion order of the rows.

type PgxInvoiceRepository struct {
	BaseRepository
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, tenant_id, property_id, amount, issue_date, due_date, status, line_items`

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	out, err := queryAll(ctx, r.db(ctx), mapping.ToDomainInvoice,
		`SELECT `+invoiceColumns+` FROM invoices ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return out, nil
}

func (r *PgxInvoiceRepository) ListInvoicesByTenant(ctx context.Context, tenantID string) ([]domain.Invoice, error) {
	out, err := queryAll(ctx, r.db(ctx), mapping.ToDomainInvoice,
		`SELECT `+invoiceColumns+` FROM invoices WHERE tenant_id = $1 ORDER BY seq`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for tenant %s: %w", tenantID, err)
	}
	return out, nil
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (invoice_id, tenant_id, property_id, amount, issue_date, due_date, status, line_items)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (invoice_id) DO UPDATE SET
			tenant_id = EXCLUDED.tenant_id,
			property_id = EXCLUDED.property_id,
			amount = EXCLUDED.amount,
			issue_date = EXCLUDED.issue_date,
			due_date = EXCLUDED.due_date,
			status = EXCLUDED.status,
			line_items = EXCLUDED.line_items;
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.InvoiceID, m.TenantID, m.PropertyID, m.Amount, m.IssueDate, m.DueDate, m.Status, m.LineItems,
	)
	if err != nil {
		return fmt.Errorf("failed to save invoice %s: %w", invoice.ID, err)
	}
	return nil
}

type PgxPaymentRepository struct {
	BaseRepository
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, invoice_id, tenant_id, amount, payment_date, method, reference_number`

func (r *PgxPaymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	out, err := queryAll(ctx, r.db(ctx), mapping.ToDomainPayment,
		`SELECT `+paymentColumns+` FROM payments ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return out, nil
}

func (r *PgxPaymentRepository) ListPaymentsByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	out, err := queryAll(ctx, r.db(ctx), mapping.ToDomainPayment,
		`SELECT `+paymentColumns+` FROM payments WHERE tenant_id = $1 ORDER BY seq`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for tenant %s: %w", tenantID, err)
	}
	return out, nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (payment_id, invoice_id, tenant_id, amount, payment_date, method, reference_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (payment_id) DO UPDATE SET
			invoice_id = EXCLUDED.invoice_id,
			tenant_id = EXCLUDED.tenant_id,
			amount = EXCLUDED.amount,
			payment_date = EXCLUDED.payment_date,
			method = EXCLUDED.method,
			reference_number = EXCLUDED.reference_number;
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.PaymentID, m.InvoiceID, m.TenantID, m.Amount, m.PaymentDate, m.Method, m.ReferenceNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment %s: %w", payment.ID, err)
	}
	return nil
}

type PgxExpenseRepository struct {
	BaseRepository
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, property_id, category, vendor, amount, expense_date, description, receipt_url`

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	out, err := queryAll(ctx, r.db(ctx), mapping.ToDomainExpense,
		`SELECT `+expenseColumns+` FROM expenses ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return out, nil
}

func (r *PgxExpenseRepository) ListExpensesByProperty(ctx context.Context, propertyID string) ([]domain.Expense, error) {
	out, err := queryAll(ctx, r.db(ctx), mapping.ToDomainExpense,
		`SELECT `+expenseColumns+` FROM expenses WHERE property_id = $1 ORDER BY seq`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for property %s: %w", propertyID, err)
	}
	return out, nil
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (expense_id, property_id, category, vendor, amount, expense_date, description, receipt_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (expense_id) DO UPDATE SET
			property_id = EXCLUDED.property_id,
			category = EXCLUDED.category,
			vendor = EXCLUDED.vendor,
			amount = EXCLUDED.amount,
			expense_date = EXCLUDED.expense_date,
			description = EXCLUDED.description,
			receipt_url = EXCLUDED.receipt_url;
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.ExpenseID, m.PropertyID, m.Category, m.Vendor, m.Amount, m.ExpenseDate, m.Description, m.ReceiptURL,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", expense.ID, err)
	}
	return nil
}

type PgxCreditNoteRepository struct {
	BaseRepository
}

var _ portsrepo.CreditNoteRepositoryFacade = (*PgxCreditNoteRepository)(nil)

const creditNoteColumns = `credit_note_id, tenant_id, credit_type, amount, credit_date, description, status`

func (r *PgxCreditNoteRepository) ListCreditNotes(ctx context.Context) ([]domain.CreditNote, error) {
	out, err := queryAll(ctx, r.db(ctx), mapping.ToDomainCreditNote,
		`SELECT `+creditNoteColumns+` FROM credit_notes ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit notes: %w", err)
	}
	return out, nil
}

func (r *PgxCreditNoteRepository) ListCreditNotesByTenant(ctx context.Context, tenantID string) ([]domain.CreditNote, error) {
	out, err := queryAll(ctx, r.db(ctx), mapping.ToDomainCreditNote,
		`SELECT `+creditNoteColumns+` FROM credit_notes WHERE tenant_id = $1 ORDER BY seq`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit notes for tenant %s: %w", tenantID, err)
	}
	return out, nil
}

func (r *PgxCreditNoteRepository) SaveCreditNote(ctx context.Context, note domain.CreditNote) error {
	m := mapping.ToModelCreditNote(note)
	query := `
		INSERT INTO credit_notes (credit_note_id, tenant_id, credit_type, amount, credit_date, description, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (credit_note_id) DO UPDATE SET
			tenant_id = EXCLUDED.tenant_id,
			credit_type = EXCLUDED.credit_type,
			amount = EXCLUDED.amount,
			credit_date = EXCLUDED.credit_date,
			description = EXCLUDED.description,
			status = EXCLUDED.status;
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.CreditNoteID, m.TenantID, m.CreditType, m.Amount, m.CreditDate, m.Description, m.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to save credit note %s: %w", note.ID, err)
	}
	return nil
}
