package repositories

import (
	"context"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
)

// InvoiceReader returns invoices in their stored order.
type InvoiceReader interface {
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	ListInvoicesByTenant(ctx context.Context, tenantID string) ([]domain.Invoice, error)
}

type InvoiceWriter interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
}

type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

// PaymentReader returns payments in their stored order.
type PaymentReader interface {
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	ListPaymentsByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error)
}

type PaymentWriter interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
}

type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// ExpenseReader returns expenses in their stored order.
type ExpenseReader interface {
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
	ListExpensesByProperty(ctx context.Context, propertyID string) ([]domain.Expense, error)
}

type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
}

type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}

// CreditNoteReader returns credit notes in their stored order.
type CreditNoteReader interface {
	ListCreditNotes(ctx context.Context) ([]domain.CreditNote, error)
	ListCreditNotesByTenant(ctx context.Context, tenantID string) ([]domain.CreditNote, error)
}

type CreditNoteWriter interface {
	SaveCreditNote(ctx context.Context, note domain.CreditNote) error
}

type CreditNoteRepositoryFacade interface {
	CreditNoteReader
	CreditNoteWriter
}
