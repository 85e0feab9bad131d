package dto

import (
	"motordesk/internal/core/apperror"
	"motordesk/internal/core/calendar"
	"motordesk/internal/domain/reports"
)

// DashboardQuery bounds a report request.
// Dates are YYYY-MM-DD; seller "all" or empty means every seller.
type DashboardQuery struct {
	From   string `form:"from"`
	To     string `form:"to"`
	Seller string `form:"seller"`
}

// Filter converts the query into a report filter, validating dates.
func (q DashboardQuery) Filter() (reports.Filter, error) {
	f := reports.Filter{Seller: q.Seller}

	if q.From != "" {
		d := calendar.Parse(q.From)
		if d.IsZero() {
			return reports.Filter{}, apperror.NewValidation("invalid from date").WithDetail("from", q.From)
		}
		f.From = d
	}
	if q.To != "" {
		d := calendar.Parse(q.To)
		if d.IsZero() {
			return reports.Filter{}, apperror.NewValidation("invalid to date").WithDetail("to", q.To)
		}
		f.To = d
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return reports.Filter{}, apperror.NewValidation("to date precedes from date")
	}
	return f, nil
}
