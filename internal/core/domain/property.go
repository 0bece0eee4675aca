package domain

import (
	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

type PropertyType string

const (
	PropertyApartment  PropertyType = "apartment"
	PropertyHouse      PropertyType = "house"
	PropertyCondo      PropertyType = "condo"
	PropertyCommercial PropertyType = "commercial"
)

type OccupancyStatus string

const (
	OccupancyOccupied OccupancyStatus = "occupied"
	OccupancyVacant   OccupancyStatus = "vacant"
	OccupancyPartial  OccupancyStatus = "partial"
)

// Property is a rentable building or unit group.
type Property struct {
	ID                string          `json:"id" validate:"required"`
	Name              string          `json:"name" validate:"required"`
	Address           string          `json:"address" validate:"required"`
	UnitCount         int             `json:"unitCount" validate:"gte=1"`
	OccupiedUnitCount int             `json:"occupiedUnitCount" validate:"gte=0"`
	BaseRent          decimal.Decimal `json:"baseRent"`
	Type              PropertyType    `json:"type" validate:"oneof=apartment house condo commercial"`
	OccupancyStatus   OccupancyStatus `json:"occupancyStatus" validate:"oneof=occupied vacant partial"`
	ImageURL          string          `json:"imageUrl,omitempty"`
}

// Validate checks the invariants tags cannot express.
func (p Property) Validate() error {
	if p.OccupiedUnitCount > p.UnitCount {
		return apperrors.NewValidationError("occupiedUnitCount", "must not exceed unitCount")
	}
	if p.BaseRent.IsNegative() {
		return apperrors.NewValidationError("baseRent", "must not be negative")
	}
	return nil
}

// VacantUnits is the number of unoccupied units.
func (p Property) VacantUnits() int {
	return p.UnitCount - p.OccupiedUnitCount
}
