package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDaysOverdue(t *testing.T) {
	due := domain.MustDate("2025-01-05")

	tests := []struct {
		name string
		ref  time.Time
		want int
	}{
		{name: "not yet due", ref: domain.MustDate("2025-01-01"), want: 0},
		{name: "due today", ref: due, want: 0},
		{name: "one full day", ref: domain.MustDate("2025-01-06"), want: 1},
		{name: "ten full days", ref: domain.MustDate("2025-01-15"), want: 10},
		{name: "partial day rounds up", ref: due.Add(3 * time.Hour), want: 1},
		{name: "one day and a bit", ref: due.Add(25 * time.Hour), want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysOverdue(due, tt.ref))
		})
	}
}

func TestDaysOverdue_IncreasesByOnePerDay(t *testing.T) {
	due := domain.MustDate("2024-12-05")
	for n := 0; n <= 60; n++ {
		assert.Equal(t, n, DaysOverdue(due, due.AddDate(0, 0, n)))
	}
	for n := 1; n <= 30; n++ {
		assert.Equal(t, 0, DaysOverdue(due, due.AddDate(0, 0, -n)))
	}
}

func TestOutstandingInvoices_MostOverdueFirst(t *testing.T) {
	ref := domain.MustDate("2025-01-15")
	invoices := []domain.Invoice{
		{ID: "pending-soon", Amount: decimal.NewFromInt(1500), DueDate: ref.AddDate(0, 0, 5), Status: domain.InvoicePending},
		{ID: "paid", Amount: decimal.NewFromInt(1500), DueDate: ref.AddDate(0, 0, -30), Status: domain.InvoicePaid},
		{ID: "overdue-10", Amount: decimal.NewFromInt(1500), DueDate: ref.AddDate(0, 0, -10), Status: domain.InvoiceOverdue},
	}

	got := OutstandingInvoices(invoices, ref)

	if assert.Len(t, got, 2) {
		assert.Equal(t, "overdue-10", got[0].ID)
		assert.Equal(t, 10, got[0].DaysOverdue)
		assert.Equal(t, "pending-soon", got[1].ID)
		assert.Equal(t, 0, got[1].DaysOverdue)
	}
}

func TestOutstandingInvoices_TiesKeepInputOrder(t *testing.T) {
	ref := domain.MustDate("2025-01-15")
	due := domain.MustDate("2025-01-05")
	invoices := []domain.Invoice{
		{ID: "first", DueDate: due, Status: domain.InvoicePending},
		{ID: "second", DueDate: due, Status: domain.InvoiceOverdue},
		{ID: "third", DueDate: due, Status: domain.InvoicePending},
	}
	got := OutstandingInvoices(invoices, ref)
	assert.Equal(t, []string{"first", "second", "third"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestCollectionRateFor(t *testing.T) {
	invoices := []domain.Invoice{
		{IssueDate: domain.MustDate("2025-01-01"), Status: domain.InvoicePaid},
		{IssueDate: domain.MustDate("2025-01-01"), Status: domain.InvoiceOverdue},
		{IssueDate: domain.MustDate("2025-01-01"), Status: domain.InvoicePending},
		{IssueDate: domain.MustDate("2025-01-02"), Status: domain.InvoicePaid},
		{IssueDate: domain.MustDate("2024-12-01"), Status: domain.InvoicePaid},
	}
	got := CollectionRateFor(invoices, "2025-01")
	assert.Equal(t, domain.CollectionRate{Period: "2025-01", PaidCount: 2, OutstandingCount: 2}, got)

	empty := CollectionRateFor(invoices, "2023-01")
	assert.Equal(t, 0, empty.Total())
}
