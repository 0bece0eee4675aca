package accounting

import (
	"fmt"
	"slices"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildStatement merges a tenant's invoices (debits) and payments (credits)
// into one ledger ordered by date ascending and carries a running balance
// from an opening balance of zero. Invoice lines precede payment lines, so on
// equal dates a charge is listed before the payment against it.
func BuildStatement(invoices []domain.Invoice, payments []domain.Payment, tenantID string) []domain.LedgerLine {
	lines := make([]domain.LedgerLine, 0, len(invoices)+len(payments))
	for _, inv := range invoices {
		if inv.TenantID != tenantID {
			continue
		}
		lines = append(lines, domain.LedgerLine{
			Date:        inv.IssueDate,
			Type:        domain.LineInvoice,
			Reference:   inv.ID,
			Description: fmt.Sprintf("Invoice %s", inv.ID),
			Debit:       inv.Amount,
			Credit:      decimal.Zero,
		})
	}
	for _, p := range payments {
		if p.TenantID != tenantID {
			continue
		}
		lines = append(lines, domain.LedgerLine{
			Date:        p.PaymentDate,
			Type:        domain.LinePayment,
			Reference:   p.ID,
			Description: fmt.Sprintf("Payment - %s", p.Method),
			Debit:       decimal.Zero,
			Credit:      p.Amount,
		})
	}

	slices.SortStableFunc(lines, func(a, b domain.LedgerLine) int {
		return a.Date.Compare(b.Date)
	})

	balance := decimal.Zero
	for i := range lines {
		balance = balance.Add(lines[i].Debit).Sub(lines[i].Credit)
		lines[i].RunningBalance = balance
	}
	return lines
}

// SummarizeStatement totals a statement built by BuildStatement.
func SummarizeStatement(lines []domain.LedgerLine) domain.StatementSummary {
	summary := domain.StatementSummary{
		OpeningBalance: decimal.Zero,
		TotalCharges:   decimal.Zero,
		TotalPayments:  decimal.Zero,
	}
	for _, l := range lines {
		summary.TotalCharges = summary.TotalCharges.Add(l.Debit)
		summary.TotalPayments = summary.TotalPayments.Add(l.Credit)
	}
	summary.ClosingBalance = summary.OpeningBalance.Add(summary.TotalCharges).Sub(summary.TotalPayments)
	return summary
}
