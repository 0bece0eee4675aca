package domain

import (
	"time"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

type ExpenseCategory string

const (
	CategoryMaintenance ExpenseCategory = "maintenance"
	CategoryRepairs     ExpenseCategory = "repairs"
	CategoryUtilities   ExpenseCategory = "utilities"
	CategoryInsurance   ExpenseCategory = "insurance"
	CategoryPropertyTax ExpenseCategory = "property_tax"
	CategoryManagement  ExpenseCategory = "management"
)

// ExpenseCategories lists categories in display order.
var ExpenseCategories = []ExpenseCategory{
	CategoryMaintenance,
	CategoryRepairs,
	CategoryUtilities,
	CategoryInsurance,
	CategoryPropertyTax,
	CategoryManagement,
}

// Expense is a cost incurred for a property.
type Expense struct {
	ID          string          `json:"id" validate:"required"`
	PropertyID  string          `json:"propertyId" validate:"required"`
	Category    ExpenseCategory `json:"category" validate:"oneof=maintenance repairs utilities insurance property_tax management"`
	Vendor      string          `json:"vendor" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date" validate:"required"`
	Description string          `json:"description"`
	ReceiptURL  string          `json:"receiptUrl,omitempty"`
}

func (e Expense) Validate() error {
	if !e.Amount.IsPositive() {
		return apperrors.NewValidationError("amount", "must be greater than zero")
	}
	return nil
}

func (e Expense) GetAmount() decimal.Decimal { return e.Amount }
