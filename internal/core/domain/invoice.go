package domain

import (
	"time"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "paid"
	InvoicePending InvoiceStatus = "pending"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// IsOutstanding reports whether the status still expects money.
func (s InvoiceStatus) IsOutstanding() bool {
	return s == InvoicePending || s == InvoiceOverdue
}

// InvoiceItem is one charge on an invoice.
type InvoiceItem struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice is a bill issued to a tenant.
type Invoice struct {
	ID         string          `json:"id" validate:"required"`
	TenantID   string          `json:"tenantId" validate:"required"`
	PropertyID string          `json:"propertyId" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	IssueDate  time.Time       `json:"issueDate" validate:"required"`
	DueDate    time.Time       `json:"dueDate" validate:"required"`
	Status     InvoiceStatus   `json:"status" validate:"oneof=paid pending overdue"`
	LineItems  []InvoiceItem   `json:"lineItems" validate:"min=1,dive"`
}

func (i Invoice) Validate() error {
	if !i.Amount.IsPositive() {
		return apperrors.NewValidationError("amount", "must be greater than zero")
	}
	if i.DueDate.Before(i.IssueDate) {
		return apperrors.NewValidationError("dueDate", "must not be before issueDate")
	}
	total := decimal.Zero
	for _, item := range i.LineItems {
		total = total.Add(item.Amount)
	}
	if !total.Equal(i.Amount) {
		return apperrors.NewValidationError("lineItems", "line item total "+total.String()+" does not equal amount "+i.Amount.String())
	}
	return nil
}

// GetAmount lets invoices be folded by the ledger aggregator.
func (i Invoice) GetAmount() decimal.Decimal { return i.Amount }
