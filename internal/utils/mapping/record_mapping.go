package mapping

import (
	"database/sql"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
	"github.com/SscSPs/rental_management_app/internal/models"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ToModelProperty converts a domain Property to a model Property
func ToModelProperty(d domain.Property) models.Property {
	return models.Property{
		PropertyID:        d.ID,
		Name:              d.Name,
		Address:           d.Address,
		UnitCount:         d.UnitCount,
		OccupiedUnitCount: d.OccupiedUnitCount,
		BaseRent:          d.BaseRent,
		PropertyType:      string(d.Type),
		OccupancyStatus:   string(d.OccupancyStatus),
		ImageURL:          nullString(d.ImageURL),
	}
}

// ToDomainProperty converts a model Property to a domain Property
func ToDomainProperty(m models.Property) domain.Property {
	return domain.Property{
		ID:                m.PropertyID,
		Name:              m.Name,
		Address:           m.Address,
		UnitCount:         m.UnitCount,
		OccupiedUnitCount: m.OccupiedUnitCount,
		BaseRent:          m.BaseRent,
		Type:              domain.PropertyType(m.PropertyType),
		OccupancyStatus:   domain.OccupancyStatus(m.OccupancyStatus),
		ImageURL:          m.ImageURL.String,
	}
}

func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:      d.ID,
		Name:          d.Name,
		Email:         d.Email,
		Phone:         d.Phone,
		PropertyID:    d.PropertyID,
		UnitLabel:     d.UnitLabel,
		LeaseStart:    d.LeaseStart,
		LeaseEnd:      d.LeaseEnd,
		MonthlyRent:   d.MonthlyRent,
		DepositAmount: d.DepositAmount,
		LeaseStatus:   string(d.LeaseStatus),
	}
}

func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		ID:            m.TenantID,
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		PropertyID:    m.PropertyID,
		UnitLabel:     m.UnitLabel,
		LeaseStart:    domain.DateOf(m.LeaseStart),
		LeaseEnd:      domain.DateOf(m.LeaseEnd),
		MonthlyRent:   m.MonthlyRent,
		DepositAmount: m.DepositAmount,
		LeaseStatus:   domain.LeaseStatus(m.LeaseStatus),
	}
}

// ToModelInvoice converts a domain Invoice, line items included.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	items := make([]models.InvoiceLineItem, len(d.LineItems))
	for i, it := range d.LineItems {
		items[i] = models.InvoiceLineItem{Description: it.Description, Amount: it.Amount}
	}
	return models.Invoice{
		InvoiceID:  d.ID,
		TenantID:   d.TenantID,
		PropertyID: d.PropertyID,
		Amount:     d.Amount,
		IssueDate:  d.IssueDate,
		DueDate:    d.DueDate,
		Status:     string(d.Status),
		LineItems:  items,
	}
}

func ToDomainInvoice(m models.Invoice) domain.Invoice {
	items := make([]domain.InvoiceItem, len(m.LineItems))
	for i, it := range m.LineItems {
		items[i] = domain.InvoiceItem{Description: it.Description, Amount: it.Amount}
	}
	return domain.Invoice{
		ID:         m.InvoiceID,
		TenantID:   m.TenantID,
		PropertyID: m.PropertyID,
		Amount:     m.Amount,
		IssueDate:  domain.DateOf(m.IssueDate),
		DueDate:    domain.DateOf(m.DueDate),
		Status:     domain.InvoiceStatus(m.Status),
		LineItems:  items,
	}
}

func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:       d.ID,
		InvoiceID:       nullString(d.InvoiceID),
		TenantID:        d.TenantID,
		Amount:          d.Amount,
		PaymentDate:     d.PaymentDate,
		Method:          string(d.Method),
		ReferenceNumber: d.ReferenceNumber,
	}
}

func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		ID:              m.PaymentID,
		InvoiceID:       m.InvoiceID.String,
		TenantID:        m.TenantID,
		Amount:          m.Amount,
		PaymentDate:     domain.DateOf(m.PaymentDate),
		Method:          domain.PaymentMethod(m.Method),
		ReferenceNumber: m.ReferenceNumber,
	}
}

func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ID,
		PropertyID:  d.PropertyID,
		Category:    string(d.Category),
		Vendor:      d.Vendor,
		Amount:      d.Amount,
		ExpenseDate: d.Date,
		Description: d.Description,
		ReceiptURL:  nullString(d.ReceiptURL),
	}
}

func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ID:          m.ExpenseID,
		PropertyID:  m.PropertyID,
		Category:    domain.ExpenseCategory(m.Category),
		Vendor:      m.Vendor,
		Amount:      m.Amount,
		Date:        domain.DateOf(m.ExpenseDate),
		Description: m.Description,
		ReceiptURL:  m.ReceiptURL.String,
	}
}

func ToModelCreditNote(d domain.CreditNote) models.CreditNote {
	return models.CreditNote{
		CreditNoteID: d.ID,
		TenantID:     d.TenantID,
		CreditType:   string(d.Type),
		Amount:       d.Amount,
		CreditDate:   d.Date,
		Description:  d.Description,
		Status:       string(d.Status),
	}
}

func ToDomainCreditNote(m models.CreditNote) domain.CreditNote {
	return domain.CreditNote{
		ID:          m.CreditNoteID,
		TenantID:    m.TenantID,
		Type:        domain.CreditType(m.CreditType),
		Amount:      m.Amount,
		Date:        domain.DateOf(m.CreditDate),
		Description: m.Description,
		Status:      domain.CreditStatus(m.Status),
	}
}
