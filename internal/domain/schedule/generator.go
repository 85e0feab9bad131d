// Package schedule derives installment payment schedules from a sale date.
//
// Due dates are computed purely on calendar triples. The sale date must
// never pass through an instant-in-time value: an off-by-one-day shift here
// silently invalidates every legal document generated from the schedule.
package schedule

import (
	"motordesk/internal/core/calendar"
	"motordesk/internal/core/types"
	"motordesk/internal/domain/records"
)

// DownPaymentMethod labels the down-payment line of a schedule.
const DownPaymentMethod = "ENTRADA"

// Params describes one schedule request.
type Params struct {
	SaleDate    calendar.Date
	Count       int
	Amount      types.Money
	Method      string
	DueDay      int
	DownPayment types.Money
}

// Generate produces the ordered payment schedule for p.
//
// When the down payment is positive it occupies sequence 1, due on the sale
// date itself. Installment i falls i calendar months after the sale date,
// on the requested due day clamped into the target month (due day 31 in a
// 30-day month becomes 30, never an invalid date and never a rollover into
// the following month). Sequence numbers continue monotonically and the
// generation order is the display and serialization order.
//
// Generate is pure and total: any count <= 0 simply yields no installment
// lines, and no input can make it fail.
func Generate(p Params) []records.InstallmentLine {
	count := max(p.Count, 0)
	lines := make([]records.InstallmentLine, 0, count+1)
	seq := 1

	if p.DownPayment.IsPositive() {
		lines = append(lines, records.InstallmentLine{
			Sequence:    seq,
			DueDate:     p.SaleDate,
			Amount:      p.DownPayment,
			Method:      DownPaymentMethod,
			DownPayment: true,
		})
		seq++
	}

	for i := 1; i <= count; i++ {
		ref := calendar.AddMonths(p.SaleDate, i)
		due := calendar.Date{
			Year:  ref.Year,
			Month: ref.Month,
			Day:   calendar.ClampDay(ref.Year, ref.Month, p.DueDay),
		}
		lines = append(lines, records.InstallmentLine{
			Sequence: seq,
			DueDate:  due,
			Amount:   p.Amount,
			Method:   p.Method,
		})
		seq++
	}

	return lines
}
