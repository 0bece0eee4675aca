package dto

import (
	"github.com/SscSPs/rental_management_app/internal/core/domain"
)

// InvoiceListParams are the query parameters of the invoice list pages.
type InvoiceListParams struct {
	Status     string `form:"status"`
	PropertyID string `form:"propertyId"`
	TenantID   string `form:"tenantId"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
	PageToken  string `form:"pageToken"`
}

// PaymentListParams are the query parameters of the payment list pages.
type PaymentListParams struct {
	Method    string `form:"method"`
	TenantID  string `form:"tenantId"`
	From      string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	PageToken string `form:"pageToken"`
}

// ExpenseListParams are the query parameters of the expenses page.
type ExpenseListParams struct {
	Category   string `form:"category"`
	PropertyID string `form:"propertyId"`
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// PeriodParams bound a report.
type PeriodParams struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// Range converts the bounds, already validated by binding, to a DateRange.
func (p PeriodParams) Range() (domain.DateRange, error) {
	var r domain.DateRange
	var err error
	if p.From != "" {
		if r.From, err = domain.ParseDate(p.From); err != nil {
			return r, err
		}
	}
	if p.To != "" {
		if r.To, err = domain.ParseDate(p.To); err != nil {
			return r, err
		}
	}
	return r, nil
}

// ToInvoiceFilter maps the query to the service filter.
func (p InvoiceListParams) ToInvoiceFilter() domain.InvoiceFilter {
	return domain.InvoiceFilter{
		Status:     p.Status,
		PropertyID: p.PropertyID,
		TenantID:   p.TenantID,
		Limit:      p.Limit,
		PageToken:  p.PageToken,
	}
}

// ToPaymentFilter maps the query to the service filter.
func (p PaymentListParams) ToPaymentFilter() (domain.PaymentFilter, error) {
	period, err := PeriodParams{From: p.From, To: p.To}.Range()
	if err != nil {
		return domain.PaymentFilter{}, err
	}
	return domain.PaymentFilter{
		Method:    p.Method,
		TenantID:  p.TenantID,
		Period:    period,
		Limit:     p.Limit,
		PageToken: p.PageToken,
	}, nil
}

// ToExpenseFilter maps the query to the service filter.
func (p ExpenseListParams) ToExpenseFilter() (domain.ExpenseFilter, error) {
	period, err := PeriodParams{From: p.From, To: p.To}.Range()
	if err != nil {
		return domain.ExpenseFilter{}, err
	}
	return domain.ExpenseFilter{Category: p.Category, PropertyID: p.PropertyID, Period: period}, nil
}

// ReportResponse wraps any report with its type.
type ReportResponse struct {
	Type   domain.ReportType `json:"type"`
	Report any               `json:"report"`
}
