package dto

import (
	"motordesk/internal/core/apperror"
	"motordesk/internal/core/calendar"
	"motordesk/internal/core/types"
	"motordesk/internal/domain/records"
)

// VehicleRef is the optional vehicle link on a new expense.
type VehicleRef struct {
	Model   string `json:"model"`
	Plate   string `json:"plate"`
	Chassis string `json:"chassis"`
}

// CreateExpenseRequest captures a new expense.
// Amount accepts a JSON number or a Brazilian-formatted string ("1.234,56").
type CreateExpenseRequest struct {
	Date        string      `json:"date" binding:"required"`
	Amount      any         `json:"amount" binding:"required"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Notes       string      `json:"notes"`
	VehicleID   string      `json:"vehicleId"`
	Vehicle     *VehicleRef `json:"vehicle"`
}

// Record converts the request into a canonical expense record.
func (r CreateExpenseRequest) Record() (records.ExpenseRecord, error) {
	date := calendar.FromAny(r.Date)
	if date.IsZero() {
		return records.ExpenseRecord{}, apperror.NewValidation("invalid expense date").WithDetail("date", r.Date)
	}

	e := records.ExpenseRecord{
		Date:        date,
		Amount:      types.ParseAmount(r.Amount),
		Category:    r.Category,
		Description: r.Description,
		Notes:       r.Notes,
		VehicleID:   r.VehicleID,
	}
	if r.Vehicle != nil {
		e.Vehicle = &records.VehicleSummary{
			Model:   r.Vehicle.Model,
			Plate:   r.Vehicle.Plate,
			Chassis: r.Vehicle.Chassis,
		}
	}
	return e, nil
}
