package domain

import (
	"time"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

type CreditType string

const (
	CreditSecurityDeposit CreditType = "security_deposit"
	CreditRefund          CreditType = "refund"
	CreditAdjustment      CreditType = "adjustment"
)

type CreditStatus string

const (
	CreditAvailable CreditStatus = "available"
	CreditApplied   CreditStatus = "applied"
	CreditRefunded  CreditStatus = "refunded"
)

// CreditNote is money held on a tenant's behalf.
type CreditNote struct {
	ID          string          `json:"id" validate:"required"`
	TenantID    string          `json:"tenantId" validate:"required"`
	Type        CreditType      `json:"type" validate:"oneof=security_deposit refund adjustment"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date" validate:"required"`
	Description string          `json:"description"`
	Status      CreditStatus    `json:"status" validate:"oneof=available applied refunded"`
}

func (c CreditNote) Validate() error {
	if c.Amount.IsNegative() {
		return apperrors.NewValidationError("amount", "must not be negative")
	}
	return nil
}

func (c CreditNote) GetAmount() decimal.Decimal { return c.Amount }
