// Package accounting folds immutable rental records into derived figures.
// Every function is pure: no I/O, no clock reads, no mutation of inputs.
package accounting

import (
	"strings"
	"time"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Amounted is any record carrying a money amount.
type Amounted interface {
	GetAmount() decimal.Decimal
}

// SumAmounts totals the amount of records satisfying pred. A nil pred
// matches every record. Sums are exact.
func SumAmounts[T Amounted](records []T, pred func(T) bool) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if pred == nil || pred(r) {
			total = total.Add(r.GetAmount())
		}
	}
	return total
}

// InPeriod reports whether date, formatted YYYY-MM-DD, starts with prefix.
// "2025-01" selects January 2025 and "2025" the whole year.
func InPeriod(date time.Time, prefix string) bool {
	return strings.HasPrefix(domain.FormatDate(date), prefix)
}

// MonthOf returns the YYYY-MM prefix of t.
func MonthOf(t time.Time) string {
	return t.Format(domain.MonthLayout)
}

// PreviousMonth returns the YYYY-MM prefix of the month before t.
func PreviousMonth(t time.Time) string {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return MonthOf(first.AddDate(0, -1, 0))
}

// PercentChange is round((current - previous) / previous * 100), or 0 when
// previous is zero.
func PercentChange(current, previous decimal.Decimal) int {
	if previous.IsZero() {
		return 0
	}
	return int(current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// IncomeForPeriod totals payments received in the period.
func IncomeForPeriod(payments []domain.Payment, prefix string) decimal.Decimal {
	return SumAmounts(payments, func(p domain.Payment) bool { return InPeriod(p.PaymentDate, prefix) })
}

// ExpensesForPeriod totals expenses incurred in the period.
func ExpensesForPeriod(expenses []domain.Expense, prefix string) decimal.Decimal {
	return SumAmounts(expenses, func(e domain.Expense) bool { return InPeriod(e.Date, prefix) })
}

// AccountsReceivable totals pending and overdue invoices.
func AccountsReceivable(invoices []domain.Invoice) decimal.Decimal {
	return SumAmounts(invoices, func(i domain.Invoice) bool { return i.Status.IsOutstanding() })
}

// AvailableCredit totals credit notes still available to the tenant.
func AvailableCredit(credits []domain.CreditNote) decimal.Decimal {
	return SumAmounts(credits, func(c domain.CreditNote) bool { return c.Status == domain.CreditAvailable })
}
