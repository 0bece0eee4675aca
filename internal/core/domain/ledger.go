package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLineType tells a debit line from a credit line.
type LedgerLineType string

const (
	LineInvoice LedgerLineType = "invoice"
	LinePayment LedgerLineType = "payment"
)

// LedgerLine is one entry of a tenant statement.
type LedgerLine struct {
	Date           time.Time       `json:"date"`
	Type           LedgerLineType  `json:"type"`
	Reference      string          `json:"reference"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// StatementSummary totals a statement.
type StatementSummary struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	TotalCharges   decimal.Decimal `json:"totalCharges"`
	TotalPayments  decimal.Decimal `json:"totalPayments"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// Statement is the full account statement of one tenant.
type Statement struct {
	TenantID string           `json:"tenantId"`
	Lines    []LedgerLine     `json:"lines"`
	Summary  StatementSummary `json:"summary"`
}

// OutstandingInvoice is an unpaid invoice annotated with its age.
type OutstandingInvoice struct {
	Invoice
	DaysOverdue int `json:"daysOverdue"`
}

// CollectionRate partitions the invoices issued in a period.
type CollectionRate struct {
	Period           string `json:"period"`
	PaidCount        int    `json:"paidCount"`
	OutstandingCount int    `json:"outstandingCount"`
}

// Total is the number of invoices issued in the period.
func (c CollectionRate) Total() int {
	return c.PaidCount + c.OutstandingCount
}

// Percent is the rounded share of paid invoices, 0 for an empty period.
func (c CollectionRate) Percent() int {
	if c.Total() == 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(c.PaidCount * 100)).
		Div(decimal.NewFromInt(int64(c.Total()))).Round(0).IntPart())
}

// MonthlyTotals compares income and expenses for one month.
type MonthlyTotals struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}
