package seed

import (
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var d = domain.MustDate

func properties() []domain.Property {
	return []domain.Property{
		{ID: "prop-1", Name: "Sunset Apartments", Address: "123 Sunset Blvd, Los Angeles, CA 90028", UnitCount: 4, OccupiedUnitCount: 4, BaseRent: decimal.NewFromInt(1500), Type: domain.PropertyApartment, OccupancyStatus: domain.OccupancyOccupied, ImageURL: "https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=400"},
		{ID: "prop-2", Name: "Oak Street House", Address: "456 Oak Street, San Francisco, CA 94102", UnitCount: 1, OccupiedUnitCount: 1, BaseRent: decimal.NewFromInt(3200), Type: domain.PropertyHouse, OccupancyStatus: domain.OccupancyOccupied, ImageURL: "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=400"},
		{ID: "prop-3", Name: "Downtown Lofts", Address: "789 Main St, San Diego, CA 92101", UnitCount: 6, OccupiedUnitCount: 4, BaseRent: decimal.NewFromInt(1800), Type: domain.PropertyCondo, OccupancyStatus: domain.OccupancyPartial, ImageURL: "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=400"},
	}
}

func tenants() []domain.Tenant {
	return []domain.Tenant{
		{ID: "tenant-1", Name: "John Smith", Email: "john.smith@email.com", Phone: "(555) 123-4567", PropertyID: "prop-1", UnitLabel: "Unit 101", LeaseStart: d("2024-01-01"), LeaseEnd: d("2025-12-31"), MonthlyRent: decimal.NewFromInt(1500), DepositAmount: decimal.NewFromInt(3000), LeaseStatus: domain.LeaseCurrent},
		{ID: "tenant-2", Name: "Sarah Johnson", Email: "sarah.j@email.com", Phone: "(555) 234-5678", PropertyID: "prop-1", UnitLabel: "Unit 102", LeaseStart: d("2024-03-01"), LeaseEnd: d("2025-02-28"), MonthlyRent: decimal.NewFromInt(1500), DepositAmount: decimal.NewFromInt(3000), LeaseStatus: domain.LeaseExpiring},
		{ID: "tenant-3", Name: "Michael Brown", Email: "mbrown@email.com", Phone: "(555) 345-6789", PropertyID: "prop-1", UnitLabel: "Unit 103", LeaseStart: d("2024-06-01"), LeaseEnd: d("2025-05-31"), MonthlyRent: decimal.NewFromInt(1500), DepositAmount: decimal.NewFromInt(3000), LeaseStatus: domain.LeaseCurrent},
		{ID: "tenant-4", Name: "Emily Davis", Email: "emily.d@email.com", Phone: "(555) 456-7890", PropertyID: "prop-1", UnitLabel: "Unit 104", LeaseStart: d("2024-02-01"), LeaseEnd: d("2025-01-31"), MonthlyRent: decimal.NewFromInt(1500), DepositAmount: decimal.NewFromInt(3000), LeaseStatus: domain.LeaseOverdue},
		{ID: "tenant-5", Name: "David Wilson", Email: "dwilson@email.com", Phone: "(555) 567-8901", PropertyID: "prop-2", UnitLabel: "Main House", LeaseStart: d("2024-04-01"), LeaseEnd: d("2025-03-31"), MonthlyRent: decimal.NewFromInt(3200), DepositAmount: decimal.NewFromInt(6400), LeaseStatus: domain.LeaseCurrent},
		{ID: "tenant-6", Name: "Lisa Anderson", Email: "lisa.a@email.com", Phone: "(555) 678-9012", PropertyID: "prop-3", UnitLabel: "Loft 301", LeaseStart: d("2024-05-01"), LeaseEnd: d("2025-04-30"), MonthlyRent: decimal.NewFromInt(1800), DepositAmount: decimal.NewFromInt(3600), LeaseStatus: domain.LeaseCurrent},
	}
}

// invoices are grouped by billing month, newest first.
func invoices() []domain.Invoice {
	return []domain.Invoice{
		{ID: "INV-2025-001", TenantID: "tenant-1", PropertyID: "prop-1", Amount: decimal.NewFromInt(1500), IssueDate: d("2025-01-01"), DueDate: d("2025-01-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - January 2025", Amount: decimal.NewFromInt(1500)}}},
		{ID: "INV-2025-002", TenantID: "tenant-2", PropertyID: "prop-1", Amount: decimal.NewFromInt(1500), IssueDate: d("2025-01-01"), DueDate: d("2025-01-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - January 2025", Amount: decimal.NewFromInt(1500)}}},
		{ID: "INV-2025-003", TenantID: "tenant-3", PropertyID: "prop-1", Amount: decimal.NewFromInt(1500), IssueDate: d("2025-01-01"), DueDate: d("2025-01-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - January 2025", Amount: decimal.NewFromInt(1500)}}},
		{ID: "INV-2025-004", TenantID: "tenant-4", PropertyID: "prop-1", Amount: decimal.NewFromInt(1500), IssueDate: d("2025-01-01"), DueDate: d("2025-01-05"), Status: domain.InvoiceOverdue, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - January 2025", Amount: decimal.NewFromInt(1500)}}},
		{ID: "INV-2025-005", TenantID: "tenant-5", PropertyID: "prop-2", Amount: decimal.NewFromInt(3200), IssueDate: d("2025-01-01"), DueDate: d("2025-01-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - January 2025", Amount: decimal.NewFromInt(3200)}}},
		{ID: "INV-2025-006", TenantID: "tenant-6", PropertyID: "prop-3", Amount: decimal.NewFromInt(1800), IssueDate: d("2025-01-01"), DueDate: d("2025-01-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - January 2025", Amount: decimal.NewFromInt(1800)}}},
		{ID: "INV-2024-101", TenantID: "tenant-1", PropertyID: "prop-1", Amount: decimal.NewFromInt(1500), IssueDate: d("2024-12-01"), DueDate: d("2024-12-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - December 2024", Amount: decimal.NewFromInt(1500)}}},
		{ID: "INV-2024-102", TenantID: "tenant-2", PropertyID: "prop-1", Amount: decimal.NewFromInt(1500), IssueDate: d("2024-12-01"), DueDate: d("2024-12-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - December 2024", Amount: decimal.NewFromInt(1500)}}},
		{ID: "INV-2024-103", TenantID: "tenant-3", PropertyID: "prop-1", Amount: decimal.NewFromInt(1500), IssueDate: d("2024-12-01"), DueDate: d("2024-12-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - December 2024", Amount: decimal.NewFromInt(1500)}}},
		{ID: "INV-2024-104", TenantID: "tenant-4", PropertyID: "prop-1", Amount: decimal.NewFromInt(1650), IssueDate: d("2024-12-01"), DueDate: d("2024-12-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - December 2024", Amount: decimal.NewFromInt(1500)}, {Description: "Late Fee", Amount: decimal.NewFromInt(150)}}},
		{ID: "INV-2024-105", TenantID: "tenant-5", PropertyID: "prop-2", Amount: decimal.NewFromInt(3200), IssueDate: d("2024-12-01"), DueDate: d("2024-12-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - December 2024", Amount: decimal.NewFromInt(3200)}}},
		{ID: "INV-2024-106", TenantID: "tenant-6", PropertyID: "prop-3", Amount: decimal.NewFromInt(1800), IssueDate: d("2024-12-01"), DueDate: d("2024-12-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - December 2024", Amount: decimal.NewFromInt(1800)}}},
		{ID: "INV-2024-091", TenantID: "tenant-1", PropertyID: "prop-1", Amount: decimal.NewFromInt(1500), IssueDate: d("2024-11-01"), DueDate: d("2024-11-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - November 2024", Amount: decimal.NewFromInt(1500)}}},
		{ID: "INV-2024-092", TenantID: "tenant-2", PropertyID: "prop-1", Amount: decimal.NewFromInt(1500), IssueDate: d("2024-11-01"), DueDate: d("2024-11-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - November 2024", Amount: decimal.NewFromInt(1500)}}},
		{ID: "INV-2024-093", TenantID: "tenant-3", PropertyID: "prop-1", Amount: decimal.NewFromInt(1500), IssueDate: d("2024-11-01"), DueDate: d("2024-11-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - November 2024", Amount: decimal.NewFromInt(1500)}}},
		{ID: "INV-2024-094", TenantID: "tenant-4", PropertyID: "prop-1", Amount: decimal.NewFromInt(1500), IssueDate: d("2024-11-01"), DueDate: d("2024-11-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - November 2024", Amount: decimal.NewFromInt(1500)}}},
		{ID: "INV-2024-095", TenantID: "tenant-5", PropertyID: "prop-2", Amount: decimal.NewFromInt(3200), IssueDate: d("2024-11-01"), DueDate: d("2024-11-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - November 2024", Amount: decimal.NewFromInt(3200)}}},
		{ID: "INV-2024-096", TenantID: "tenant-6", PropertyID: "prop-3", Amount: decimal.NewFromInt(1800), IssueDate: d("2024-11-01"), DueDate: d("2024-11-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - November 2024", Amount: decimal.NewFromInt(1800)}}},
		{ID: "INV-2024-081", TenantID: "tenant-1", PropertyID: "prop-1", Amount: decimal.NewFromInt(1500), IssueDate: d("2024-10-01"), DueDate: d("2024-10-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - October 2024", Amount: decimal.NewFromInt(1500)}}},
		{ID: "INV-2024-082", TenantID: "tenant-2", PropertyID: "prop-1", Amount: decimal.NewFromInt(1500), IssueDate: d("2024-10-01"), DueDate: d("2024-10-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - October 2024", Amount: decimal.NewFromInt(1500)}}},
		{ID: "INV-2024-083", TenantID: "tenant-5", PropertyID: "prop-2", Amount: decimal.NewFromInt(3200), IssueDate: d("2024-10-01"), DueDate: d("2024-10-05"), Status: domain.InvoicePaid, LineItems: []domain.InvoiceItem{{Description: "Monthly Rent - October 2024", Amount: decimal.NewFromInt(3200)}}},
	}
}

func payments() []domain.Payment {
	return []domain.Payment{
		{ID: "PAY-001", InvoiceID: "INV-2025-001", TenantID: "tenant-1", Amount: decimal.NewFromInt(1500), PaymentDate: d("2025-01-03"), Method: domain.MethodBankTransfer, ReferenceNumber: "TXN123456"},
		{ID: "PAY-002", InvoiceID: "INV-2025-002", TenantID: "tenant-2", Amount: decimal.NewFromInt(1500), PaymentDate: d("2025-01-04"), Method: domain.MethodCreditCard, ReferenceNumber: "CC789012"},
		{ID: "PAY-003", InvoiceID: "INV-2025-003", TenantID: "tenant-3", Amount: decimal.NewFromInt(1500), PaymentDate: d("2025-01-02"), Method: domain.MethodBankTransfer, ReferenceNumber: "TXN345678"},
		{ID: "PAY-004", InvoiceID: "INV-2025-005", TenantID: "tenant-5", Amount: decimal.NewFromInt(3200), PaymentDate: d("2025-01-05"), Method: domain.MethodCheck, ReferenceNumber: "CHK901234"},
		{ID: "PAY-005", InvoiceID: "INV-2025-006", TenantID: "tenant-6", Amount: decimal.NewFromInt(1800), PaymentDate: d("2025-01-03"), Method: domain.MethodBankTransfer, ReferenceNumber: "TXN567890"},
		{ID: "PAY-006", InvoiceID: "INV-2024-101", TenantID: "tenant-1", Amount: decimal.NewFromInt(1500), PaymentDate: d("2024-12-03"), Method: domain.MethodBankTransfer, ReferenceNumber: "TXN111111"},
		{ID: "PAY-007", InvoiceID: "INV-2024-102", TenantID: "tenant-2", Amount: decimal.NewFromInt(1500), PaymentDate: d("2024-12-04"), Method: domain.MethodCreditCard, ReferenceNumber: "CC222222"},
		{ID: "PAY-008", InvoiceID: "INV-2024-103", TenantID: "tenant-3", Amount: decimal.NewFromInt(1500), PaymentDate: d("2024-12-02"), Method: domain.MethodBankTransfer, ReferenceNumber: "TXN333333"},
		{ID: "PAY-009", InvoiceID: "INV-2024-104", TenantID: "tenant-4", Amount: decimal.NewFromInt(1650), PaymentDate: d("2024-12-10"), Method: domain.MethodCash, ReferenceNumber: "CASH444444"},
		{ID: "PAY-010", InvoiceID: "INV-2024-105", TenantID: "tenant-5", Amount: decimal.NewFromInt(3200), PaymentDate: d("2024-12-05"), Method: domain.MethodCheck, ReferenceNumber: "CHK555555"},
		{ID: "PAY-011", InvoiceID: "INV-2024-106", TenantID: "tenant-6", Amount: decimal.NewFromInt(1800), PaymentDate: d("2024-12-03"), Method: domain.MethodBankTransfer, ReferenceNumber: "TXN666666"},
		{ID: "PAY-012", InvoiceID: "INV-2024-091", TenantID: "tenant-1", Amount: decimal.NewFromInt(1500), PaymentDate: d("2024-11-03"), Method: domain.MethodBankTransfer, ReferenceNumber: "TXN777777"},
		{ID: "PAY-013", InvoiceID: "INV-2024-092", TenantID: "tenant-2", Amount: decimal.NewFromInt(1500), PaymentDate: d("2024-11-04"), Method: domain.MethodCreditCard, ReferenceNumber: "CC888888"},
		{ID: "PAY-014", InvoiceID: "INV-2024-093", TenantID: "tenant-3", Amount: decimal.NewFromInt(1500), PaymentDate: d("2024-11-02"), Method: domain.MethodBankTransfer, ReferenceNumber: "TXN999999"},
		{ID: "PAY-015", InvoiceID: "INV-2024-094", TenantID: "tenant-4", Amount: decimal.NewFromInt(1500), PaymentDate: d("2024-11-05"), Method: domain.MethodBankTransfer, ReferenceNumber: "TXN101010"},
	}
}

func expenses() []domain.Expense {
	return []domain.Expense{
		{ID: "EXP-001", PropertyID: "prop-1", Category: domain.CategoryMaintenance, Vendor: "ABC Plumbing", Amount: decimal.NewFromInt(350), Date: d("2025-01-15"), Description: "Fixed leaking faucet in Unit 102"},
		{ID: "EXP-002", PropertyID: "prop-1", Category: domain.CategoryUtilities, Vendor: "City Water Dept", Amount: decimal.NewFromInt(180), Date: d("2025-01-10"), Description: "Common area water bill - January"},
		{ID: "EXP-003", PropertyID: "prop-2", Category: domain.CategoryRepairs, Vendor: "Roof Masters Inc", Amount: decimal.NewFromInt(1200), Date: d("2025-01-08"), Description: "Roof repair after storm damage"},
		{ID: "EXP-004", PropertyID: "prop-3", Category: domain.CategoryInsurance, Vendor: "State Farm", Amount: decimal.NewFromInt(450), Date: d("2025-01-01"), Description: "Monthly property insurance premium"},
		{ID: "EXP-005", PropertyID: "prop-1", Category: domain.CategoryPropertyTax, Vendor: "LA County", Amount: decimal.NewFromInt(850), Date: d("2024-12-15"), Description: "Quarterly property tax payment"},
		{ID: "EXP-006", PropertyID: "prop-2", Category: domain.CategoryManagement, Vendor: "PM Solutions", Amount: decimal.NewFromInt(320), Date: d("2024-12-01"), Description: "Property management fee - December"},
		{ID: "EXP-007", PropertyID: "prop-3", Category: domain.CategoryMaintenance, Vendor: "Green Lawn Care", Amount: decimal.NewFromInt(150), Date: d("2024-12-10"), Description: "Landscaping and lawn maintenance"},
		{ID: "EXP-008", PropertyID: "prop-1", Category: domain.CategoryRepairs, Vendor: "Electric Pro", Amount: decimal.NewFromInt(275), Date: d("2024-11-20"), Description: "Electrical outlet repairs Unit 104"},
		{ID: "EXP-009", PropertyID: "prop-2", Category: domain.CategoryUtilities, Vendor: "PG&E", Amount: decimal.NewFromInt(220), Date: d("2024-11-15"), Description: "Gas and electric - common areas"},
		{ID: "EXP-010", PropertyID: "prop-3", Category: domain.CategoryMaintenance, Vendor: "HVAC Experts", Amount: decimal.NewFromInt(500), Date: d("2024-11-05"), Description: "Annual HVAC system maintenance"},
	}
}

func creditNotes() []domain.CreditNote {
	return []domain.CreditNote{
		{ID: "CN-001", TenantID: "tenant-1", Type: domain.CreditSecurityDeposit, Amount: decimal.NewFromInt(3000), Date: d("2024-01-01"), Description: "Security deposit received", Status: domain.CreditAvailable},
		{ID: "CN-002", TenantID: "tenant-2", Type: domain.CreditAdjustment, Amount: decimal.NewFromInt(75), Date: d("2024-12-15"), Description: "Rent overcharge correction", Status: domain.CreditApplied},
		{ID: "CN-003", TenantID: "tenant-3", Type: domain.CreditRefund, Amount: decimal.NewFromInt(150), Date: d("2024-11-20"), Description: "Overpayment refund pending", Status: domain.CreditAvailable},
		{ID: "CN-004", TenantID: "tenant-5", Type: domain.CreditSecurityDeposit, Amount: decimal.NewFromInt(6400), Date: d("2024-04-01"), Description: "Security deposit received", Status: domain.CreditAvailable},
		{ID: "CN-005", TenantID: "tenant-6", Type: domain.CreditAdjustment, Amount: decimal.NewFromInt(50), Date: d("2024-10-10"), Description: "Utility bill adjustment", Status: domain.CreditApplied},
	}
}
