package domain

import (
	"time"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodCreditCard   PaymentMethod = "Credit Card"
	MethodCash         PaymentMethod = "Cash"
	MethodCheck        PaymentMethod = "Check"
)

// Payment is money received from a tenant, optionally against one invoice.
type Payment struct {
	ID              string          `json:"id" validate:"required"`
	InvoiceID       string          `json:"invoiceId,omitempty"`
	TenantID        string          `json:"tenantId" validate:"required"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     time.Time       `json:"paymentDate" validate:"required"`
	Method          PaymentMethod   `json:"method" validate:"oneof='Bank Transfer' 'Credit Card' Cash Check"`
	ReferenceNumber string          `json:"referenceNumber"`
}

func (p Payment) Validate() error {
	if !p.Amount.IsPositive() {
		return apperrors.NewValidationError("amount", "must be greater than zero")
	}
	return nil
}

func (p Payment) GetAmount() decimal.Decimal { return p.Amount }
