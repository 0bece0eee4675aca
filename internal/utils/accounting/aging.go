package accounting

import (
	"slices"
	"time"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
)

const day = 24 * time.Hour

// DaysOverdue is max(0, ceil((referenceDate - dueDate) / 1 day)).
func DaysOverdue(dueDate, referenceDate time.Time) int {
	diff := referenceDate.Sub(dueDate)
	if diff <= 0 {
		return 0
	}
	days := int(diff / day)
	if diff%day != 0 {
		days++
	}
	return days
}

// OutstandingInvoices keeps pending and overdue invoices, annotates each with
// its age at ref, and orders them most overdue first. Ties keep input order.
func OutstandingInvoices(invoices []domain.Invoice, ref time.Time) []domain.OutstandingInvoice {
	out := make([]domain.OutstandingInvoice, 0, len(invoices))
	for _, inv := range invoices {
		if !inv.Status.IsOutstanding() {
			continue
		}
		out = append(out, domain.OutstandingInvoice{Invoice: inv, DaysOverdue: DaysOverdue(inv.DueDate, ref)})
	}
	slices.SortStableFunc(out, func(a, b domain.OutstandingInvoice) int {
		return b.DaysOverdue - a.DaysOverdue
	})
	return out
}

// CollectionRateFor partitions invoices issued in the period into paid and
// not paid.
func CollectionRateFor(invoices []domain.Invoice, prefix string) domain.CollectionRate {
	rate := domain.CollectionRate{Period: prefix}
	for _, inv := range invoices {
		if !InPeriod(inv.IssueDate, prefix) {
			continue
		}
		if inv.Status == domain.InvoicePaid {
			rate.PaidCount++
		} else {
			rate.OutstandingCount++
		}
	}
	return rate
}
