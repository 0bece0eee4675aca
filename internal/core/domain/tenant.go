package domain

import (
	"time"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

type LeaseStatus string

const (
	LeaseCurrent  LeaseStatus = "current"
	LeaseExpiring LeaseStatus = "expiring"
	LeaseOverdue  LeaseStatus = "overdue"
)

// Tenant is a lease holder occupying one unit of a property.
type Tenant struct {
	ID            string          `json:"id" validate:"required"`
	Name          string          `json:"name" validate:"required"`
	Email         string          `json:"email" validate:"required,email"`
	Phone         string          `json:"phone"`
	PropertyID    string          `json:"propertyId" validate:"required"`
	UnitLabel     string          `json:"unitLabel" validate:"required"`
	LeaseStart    time.Time       `json:"leaseStart" validate:"required"`
	LeaseEnd      time.Time       `json:"leaseEnd" validate:"required"`
	MonthlyRent   decimal.Decimal `json:"monthlyRent"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	LeaseStatus   LeaseStatus     `json:"leaseStatus" validate:"oneof=current expiring overdue"`
}

func (t Tenant) Validate() error {
	if t.LeaseEnd.Before(t.LeaseStart) {
		return apperrors.NewValidationError("leaseEnd", "must not be before leaseStart")
	}
	if t.MonthlyRent.IsNegative() || t.DepositAmount.IsNegative() {
		return apperrors.NewValidationError("monthlyRent", "amounts must not be negative")
	}
	return nil
}
