package dto

import (
	"motordesk/internal/core/apperror"
	"motordesk/internal/core/calendar"
	"motordesk/internal/core/types"
	"motordesk/internal/domain/schedule"
)

// ScheduleRequest asks for an installment schedule.
// Amounts accept JSON numbers or Brazilian-formatted strings.
type ScheduleRequest struct {
	SaleDate    string `json:"saleDate" binding:"required"`
	Count       int    `json:"count"`
	Amount      any    `json:"amount"`
	Method      string `json:"method"`
	DueDay      int    `json:"dueDay" binding:"required"`
	DownPayment any    `json:"downPayment"`
}

// Params converts the request into generator parameters.
func (r ScheduleRequest) Params() (schedule.Params, error) {
	saleDate := calendar.FromAny(r.SaleDate)
	if saleDate.IsZero() {
		return schedule.Params{}, apperror.NewValidation("invalid sale date").WithDetail("saleDate", r.SaleDate)
	}
	if r.Count < 0 {
		return schedule.Params{}, apperror.NewValidation("installment count must not be negative").WithDetail("count", r.Count)
	}
	if r.DueDay < 1 || r.DueDay > 31 {
		return schedule.Params{}, apperror.NewValidation("due day must be between 1 and 31").WithDetail("dueDay", r.DueDay)
	}

	return schedule.Params{
		SaleDate:    saleDate,
		Count:       r.Count,
		Amount:      types.ParseAmount(r.Amount),
		Method:      r.Method,
		DueDay:      r.DueDay,
		DownPayment: types.ParseAmount(r.DownPayment),
	}, nil
}
