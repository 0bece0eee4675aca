// Package models holds the row shapes of the Postgres tables.
package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type Property struct {
	PropertyID        string          `db:"property_id"`
	Name              string          `db:"name"`
	Address           string          `db:"address"`
	UnitCount         int             `db:"unit_count"`
	OccupiedUnitCount int             `db:"occupied_unit_count"`
	BaseRent          decimal.Decimal `db:"base_rent"`
	PropertyType      string          `db:"property_type"`
	OccupancyStatus   string          `db:"occupancy_status"`
	ImageURL          sql.NullString  `db:"image_url"`
}

type Tenant struct {
	TenantID      string          `db:"tenant_id"`
	Name          string          `db:"name"`
	Email         string          `db:"email"`
	Phone         string          `db:"phone"`
	PropertyID    string          `db:"property_id"`
	UnitLabel     string          `db:"unit_label"`
	LeaseStart    time.Time       `db:"lease_start"`
	LeaseEnd      time.Time       `db:"lease_end"`
	MonthlyRent   decimal.Decimal `db:"monthly_rent"`
	DepositAmount decimal.Decimal `db:"deposit_amount"`
	LeaseStatus   string          `db:"lease_status"`
}

// InvoiceLineItem is one element of the invoices.line_items JSONB array.
type InvoiceLineItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type Invoice struct {
	InvoiceID  string            `db:"invoice_id"`
	TenantID   string            `db:"tenant_id"`
	PropertyID string            `db:"property_id"`
	Amount     decimal.Decimal   `db:"amount"`
	IssueDate  time.Time         `db:"issue_date"`
	DueDate    time.Time         `db:"due_date"`
	Status     string            `db:"status"`
	LineItems  []InvoiceLineItem `db:"line_items"`
}

type Payment struct {
	PaymentID       string          `db:"payment_id"`
	InvoiceID       sql.NullString  `db:"invoice_id"`
	TenantID        string          `db:"tenant_id"`
	Amount          decimal.Decimal `db:"amount"`
	PaymentDate     time.Time       `db:"payment_date"`
	Method          string          `db:"method"`
	ReferenceNumber string          `db:"reference_number"`
}

type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	PropertyID  string          `db:"property_id"`
	Category    string          `db:"category"`
	Vendor      string          `db:"vendor"`
	Amount      decimal.Decimal `db:"amount"`
	ExpenseDate time.Time       `db:"expense_date"`
	Description string          `db:"description"`
	ReceiptURL  sql.NullString  `db:"receipt_url"`
}

type CreditNote struct {
	CreditNoteID string          `db:"credit_note_id"`
	TenantID     string          `db:"tenant_id"`
	CreditType   string          `db:"credit_type"`
	Amount       decimal.Decimal `db:"amount"`
	CreditDate   time.Time       `db:"credit_date"`
	Description  string          `db:"description"`
	Status       string          `db:"status"`
}
