package domain

import (
	"github.com/shopspring/decimal"
)

// PropertyOverview is a property with its tenants and rent roll.
type PropertyOverview struct {
	Property
	Tenants       []Tenant        `json:"tenants"`
	MonthlyIncome decimal.Decimal `json:"monthlyIncome"`
}

// TenantOverview is a tenant joined with the property name.
type TenantOverview struct {
	Tenant
	PropertyName string `json:"propertyName"`
}

// TenantList is the landlord tenants page.
type TenantList struct {
	Tenants       []TenantOverview    `json:"tenants"`
	StatusCounts  map[LeaseStatus]int `json:"statusCounts"`
	TotalTenants  int                 `json:"totalTenants"`
	TotalRentRoll decimal.Decimal     `json:"totalRentRoll"`
}

// InvoiceFilter narrows invoice lists. "all" or empty matches everything.
type InvoiceFilter struct {
	Status     string
	PropertyID string
	TenantID   string
	Limit      int
	PageToken  string
}

// InvoiceStats summarises an invoice list.
type InvoiceStats struct {
	PaidCount     int             `json:"paidCount"`
	PendingCount  int             `json:"pendingCount"`
	OverdueCount  int             `json:"overdueCount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
}

// InvoiceList is a page of invoices, newest issue date first.
type InvoiceList struct {
	Invoices      []Invoice    `json:"invoices"`
	Stats         InvoiceStats `json:"stats"`
	NextPageToken string       `json:"nextPageToken,omitempty"`
}

// PaymentFilter narrows payment lists.
type PaymentFilter struct {
	Method    string
	TenantID  string
	Period    DateRange
	Limit     int
	PageToken string
}

// PaymentList is a page of payments, newest first.
type PaymentList struct {
	Payments      []Payment       `json:"payments"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Count         int             `json:"count"`
	NextPageToken string          `json:"nextPageToken,omitempty"`
}

// ExpenseFilter narrows expense lists.
type ExpenseFilter struct {
	Category   string
	PropertyID string
	Period     DateRange
}

// ExpenseList is the landlord expenses page.
type ExpenseList struct {
	Expenses    []Expense                           `json:"expenses"`
	TotalAmount decimal.Decimal                     `json:"totalAmount"`
	ByCategory  map[ExpenseCategory]decimal.Decimal `json:"byCategory"`
}

// CreditSummary is the tenant credits page.
type CreditSummary struct {
	Credits        []CreditNote    `json:"credits"`
	AvailableTotal decimal.Decimal `json:"availableTotal"`
	Total          decimal.Decimal `json:"total"`
}

// LandlordDashboard is the landlord landing page.
type LandlordDashboard struct {
	Month              string               `json:"month"`
	MonthlyIncome      decimal.Decimal      `json:"monthlyIncome"`
	LastMonthIncome    decimal.Decimal      `json:"lastMonthIncome"`
	IncomeChangePct    int                  `json:"incomeChangePct"`
	MonthlyExpenses    decimal.Decimal      `json:"monthlyExpenses"`
	AccountsReceivable decimal.Decimal      `json:"accountsReceivable"`
	WorkingCapital     decimal.Decimal      `json:"workingCapital"`
	IncomeVsExpenses   []MonthlyTotals      `json:"incomeVsExpenses"`
	CollectionRate     CollectionRate       `json:"collectionRate"`
	RecentPayments     []Payment            `json:"recentPayments"`
	Outstanding        []OutstandingInvoice `json:"outstanding"`
	PropertyCount      int                  `json:"propertyCount"`
	TenantCount        int                  `json:"tenantCount"`
	OccupiedUnits      int                  `json:"occupiedUnits"`
	TotalUnits         int                  `json:"totalUnits"`
}

// TenantDashboard is the tenant landing page.
type TenantDashboard struct {
	Tenant            Tenant          `json:"tenant"`
	PropertyName      string          `json:"propertyName"`
	CurrentDue        decimal.Decimal `json:"currentDue"`
	CurrentDueDate    *string         `json:"currentDueDate,omitempty"`
	TotalPaidThisYear decimal.Decimal `json:"totalPaidThisYear"`
	AvailableCredits  decimal.Decimal `json:"availableCredits"`
	OverdueAmount     decimal.Decimal `json:"overdueAmount"`
	RecentPayments    []Payment       `json:"recentPayments"`
}

// TenantProfile is a tenant's lease details.
type TenantProfile struct {
	Tenant   Tenant    `json:"tenant"`
	Property *Property `json:"property,omitempty"`
}

// PropertyPerformance is revenue and cost for one property.
type PropertyPerformance struct {
	PropertyID   string          `json:"propertyId"`
	PropertyName string          `json:"propertyName"`
	Revenue      decimal.Decimal `json:"revenue"`
	Expenses     decimal.Decimal `json:"expenses"`
	NetIncome    decimal.Decimal `json:"netIncome"`
	Occupancy    int             `json:"occupancyPct"`
}

// IncomeStatement is the profit and loss report.
type IncomeStatement struct {
	Period        DateRange             `json:"period"`
	TotalRevenue  decimal.Decimal       `json:"totalRevenue"`
	TotalExpenses decimal.Decimal       `json:"totalExpenses"`
	NetIncome     decimal.Decimal       `json:"netIncome"`
	ByProperty    []PropertyPerformance `json:"byProperty"`
}

// RentRollEntry is one tenant line in the rent roll.
type RentRollEntry struct {
	TenantID     string          `json:"tenantId"`
	TenantName   string          `json:"tenantName"`
	PropertyName string          `json:"propertyName"`
	UnitLabel    string          `json:"unitLabel"`
	MonthlyRent  decimal.Decimal `json:"monthlyRent"`
	LeaseEnd     string          `json:"leaseEnd"`
	LeaseStatus  LeaseStatus     `json:"leaseStatus"`
}

// RentRoll lists every lease with its rent.
type RentRoll struct {
	Entries     []RentRollEntry `json:"entries"`
	MonthlyRent decimal.Decimal `json:"monthlyRent"`
	AnnualRent  decimal.Decimal `json:"annualRent"`
}

// TenantPaymentHistory totals what each tenant paid.
type TenantPaymentHistory struct {
	TenantID     string          `json:"tenantId"`
	TenantName   string          `json:"tenantName"`
	PaymentCount int             `json:"paymentCount"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	Outstanding  decimal.Decimal `json:"outstanding"`
	LastPayment  *string         `json:"lastPayment,omitempty"`
}

// ExpenseCategoryTotal is one row of the expense summary.
type ExpenseCategoryTotal struct {
	Category ExpenseCategory `json:"category"`
	Label    string          `json:"label"`
	Count    int             `json:"count"`
	Total    decimal.Decimal `json:"total"`
}

// ExpenseSummary groups expenses by category.
type ExpenseSummary struct {
	Period     DateRange              `json:"period"`
	Categories []ExpenseCategoryTotal `json:"categories"`
	Total      decimal.Decimal        `json:"total"`
}

// ReportType names a landlord report.
type ReportType string

const (
	ReportIncomeStatement     ReportType = "income-statement"
	ReportRentRoll            ReportType = "rent-roll"
	ReportTenantPayments      ReportType = "tenant-payments"
	ReportPropertyPerformance ReportType = "property-performance"
	ReportExpenseSummary      ReportType = "expense-summary"
)

// CategoryLabel returns the display label of an expense category or credit type.
func CategoryLabel(category string) string {
	switch category {
	case string(CategoryMaintenance):
		return "Maintenance"
	case string(CategoryRepairs):
		return "Repairs"
	case string(CategoryUtilities):
		return "Utilities"
	case string(CategoryInsurance):
		return "Insurance"
	case string(CategoryPropertyTax):
		return "Property Tax"
	case string(CategoryManagement):
		return "Management Fees"
	case string(CreditSecurityDeposit):
		return "Security Deposit"
	case string(CreditRefund):
		return "Refund"
	case string(CreditAdjustment):
		return "Adjustment"
	}
	return category
}
