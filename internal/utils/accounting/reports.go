package accounting

import (
	"time"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
	"github.com/SscSPs/rental_management_app/internal/utils/records"
	"github.com/shopspring/decimal"
)

// MonthlyRollup returns income and expenses for the n months ending with the
// month of ref, oldest first.
func MonthlyRollup(payments []domain.Payment, expenses []domain.Expense, ref time.Time, n int) []domain.MonthlyTotals {
	if n <= 0 {
		return nil
	}
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]domain.MonthlyTotals, 0, n)
	for i := n - 1; i >= 0; i-- {
		month := MonthOf(first.AddDate(0, -i, 0))
		income := IncomeForPeriod(payments, month)
		spent := ExpensesForPeriod(expenses, month)
		out = append(out, domain.MonthlyTotals{
			Month:    month,
			Income:   income,
			Expenses: spent,
			Net:      income.Sub(spent),
		})
	}
	return out
}

// PropertyPerformance attributes payments to properties through the invoice
// they settle. Payments without a known invoice are not attributed.
func PropertyPerformance(properties []domain.Property, invoices []domain.Invoice, payments []domain.Payment, expenses []domain.Expense) []domain.PropertyPerformance {
	invoiceProperty := make(map[string]string, len(invoices))
	for _, inv := range invoices {
		invoiceProperty[inv.ID] = inv.PropertyID
	}

	out := make([]domain.PropertyPerformance, 0, len(properties))
	for _, prop := range properties {
		revenue := SumAmounts(payments, func(p domain.Payment) bool {
			return p.InvoiceID != "" && invoiceProperty[p.InvoiceID] == prop.ID
		})
		spent := SumAmounts(expenses, func(e domain.Expense) bool { return e.PropertyID == prop.ID })
		occupancy := 0
		if prop.UnitCount > 0 {
			occupancy = prop.OccupiedUnitCount * 100 / prop.UnitCount
		}
		out = append(out, domain.PropertyPerformance{
			PropertyID:   prop.ID,
			PropertyName: prop.Name,
			Revenue:      revenue,
			Expenses:     spent,
			NetIncome:    revenue.Sub(spent),
			Occupancy:    occupancy,
		})
	}
	return out
}

// IncomeStatement totals revenue and expenses inside period.
func IncomeStatement(properties []domain.Property, invoices []domain.Invoice, payments []domain.Payment, expenses []domain.Expense, period domain.DateRange) domain.IncomeStatement {
	payments = records.FilterByDateRange(payments, func(p domain.Payment) time.Time { return p.PaymentDate }, period.From, period.To)
	expenses = records.FilterByDateRange(expenses, func(e domain.Expense) time.Time { return e.Date }, period.From, period.To)

	revenue := SumAmounts(payments, nil)
	spent := SumAmounts(expenses, nil)
	return domain.IncomeStatement{
		Period:        period,
		TotalRevenue:  revenue,
		TotalExpenses: spent,
		NetIncome:     revenue.Sub(spent),
		ByProperty:    PropertyPerformance(properties, invoices, payments, expenses),
	}
}

// RentRoll lists every tenant's rent with monthly and annual totals.
func RentRoll(tenants []domain.Tenant, properties []domain.Property) domain.RentRoll {
	names := make(map[string]string, len(properties))
	for _, p := range properties {
		names[p.ID] = p.Name
	}
	roll := domain.RentRoll{
		Entries:     make([]domain.RentRollEntry, 0, len(tenants)),
		MonthlyRent: decimal.Zero,
	}
	for _, t := range tenants {
		roll.Entries = append(roll.Entries, domain.RentRollEntry{
			TenantID:     t.ID,
			TenantName:   t.Name,
			PropertyName: names[t.PropertyID],
			UnitLabel:    t.UnitLabel,
			MonthlyRent:  t.MonthlyRent,
			LeaseEnd:     domain.FormatDate(t.LeaseEnd),
			LeaseStatus:  t.LeaseStatus,
		})
		roll.MonthlyRent = roll.MonthlyRent.Add(t.MonthlyRent)
	}
	roll.AnnualRent = roll.MonthlyRent.Mul(decimal.NewFromInt(12))
	return roll
}

// ExpenseSummaryByCategory groups expenses in period by category, in the
// fixed category order. Empty categories are omitted.
func ExpenseSummaryByCategory(expenses []domain.Expense, period domain.DateRange) domain.ExpenseSummary {
	expenses = records.FilterByDateRange(expenses, func(e domain.Expense) time.Time { return e.Date }, period.From, period.To)
	groups := records.GroupBy(expenses, func(e domain.Expense) domain.ExpenseCategory { return e.Category })

	summary := domain.ExpenseSummary{Period: period, Total: decimal.Zero}
	for _, cat := range domain.ExpenseCategories {
		group, ok := groups[cat]
		if !ok {
			continue
		}
		total := SumAmounts(group, nil)
		summary.Categories = append(summary.Categories, domain.ExpenseCategoryTotal{
			Category: cat,
			Label:    domain.CategoryLabel(string(cat)),
			Count:    len(group),
			Total:    total,
		})
		summary.Total = summary.Total.Add(total)
	}
	return summary
}

// ExpensesByCategory totals every category present in expenses.
func ExpensesByCategory(expenses []domain.Expense) map[domain.ExpenseCategory]decimal.Decimal {
	out := make(map[domain.ExpenseCategory]decimal.Decimal)
	for _, e := range expenses {
		out[e.Category] = out[e.Category].Add(e.Amount)
	}
	return out
}

// TenantPaymentHistory totals payments and open balances per tenant, in
// tenant order.
func TenantPaymentHistory(tenants []domain.Tenant, invoices []domain.Invoice, payments []domain.Payment, period domain.DateRange) []domain.TenantPaymentHistory {
	payments = records.FilterByDateRange(payments, func(p domain.Payment) time.Time { return p.PaymentDate }, period.From, period.To)
	byTenant := records.GroupBy(payments, func(p domain.Payment) string { return p.TenantID })

	out := make([]domain.TenantPaymentHistory, 0, len(tenants))
	for _, t := range tenants {
		paid := byTenant[t.ID]
		row := domain.TenantPaymentHistory{
			TenantID:     t.ID,
			TenantName:   t.Name,
			PaymentCount: len(paid),
			TotalPaid:    SumAmounts(paid, nil),
			Outstanding: SumAmounts(invoices, func(i domain.Invoice) bool {
				return i.TenantID == t.ID && i.Status.IsOutstanding()
			}),
		}
		if len(paid) > 0 {
			latest := records.SortByDateDesc(paid, func(p domain.Payment) time.Time { return p.PaymentDate })[0]
			d := domain.FormatDate(latest.PaymentDate)
			row.LastPayment = &d
		}
		out = append(out, row)
	}
	return out
}
