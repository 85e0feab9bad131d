// Package calendar provides a timezone-free calendar date value.
//
// Source systems store local wall-clock dates. Converting those through an
// instant-in-time representation can shift the date by a day either side of
// midnight, so Date carries only the (year, month, day) triple and all
// comparisons are defined on the triple alone.
package calendar

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day or timezone component.
// The zero value is the "no date" sentinel.
type Date struct {
	Year  int
	Month int
	Day   int
}

// New creates a Date from a (year, month, day) triple.
func New(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// IsZero reports whether d is the "no date" sentinel.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String returns the canonical YYYY-MM-DD form, or "" for the sentinel.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Compare returns -1, 0 or +1 ordering d against other.
func (d Date) Compare(other Date) int {
	a := d.Year*10000 + d.Month*100 + d.Day
	b := other.Year*10000 + other.Month*100 + other.Day
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Equal reports whether the triples are identical.
func (d Date) Equal(other Date) bool { return d == other }

// MarshalJSON encodes the date as a YYYY-MM-DD string ("" for the sentinel).
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a YYYY-MM-DD string; anything else yields the sentinel.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*d = Parse(s)
	return nil
}

// Parse accepts a strict YYYY-MM-DD string (longer strings are cut to their
// first ten characters, which also accepts RFC3339 timestamps verbatim).
// Anything else yields the sentinel.
func Parse(s string) Date {
	if len(s) > 10 {
		s = s[:10]
	}
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return Date{}
		}
	}
	y := atoi(s[0:4])
	m := atoi(s[5:7])
	day := atoi(s[8:10])
	if m < 1 || m > 12 || day < 1 || day > DaysInMonth(y, m) {
		return Date{}
	}
	return Date{Year: y, Month: m, Day: day}
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

// generalLayouts are tried, in order, for inputs that are not canonical.
// DD/MM/YYYY is the Brazilian display form the source data uses.
var generalLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// FromAny resolves heterogeneous date representations into a Date.
//
// Resolution order: native time values are read through their own local
// year/month/day fields (never a UTC round-trip), then strict YYYY-MM-DD,
// then the general layouts. Unparseable input yields the sentinel, never a
// default date.
func FromAny(v any) Date {
	switch t := v.(type) {
	case nil:
		return Date{}
	case Date:
		return t
	case time.Time:
		return FromTime(t)
	case *time.Time:
		if t == nil {
			return Date{}
		}
		return FromTime(*t)
	case string:
		if d := Parse(t); !d.IsZero() {
			return d
		}
		for _, layout := range generalLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return FromTime(parsed)
			}
		}
		return Date{}
	default:
		return Date{}
	}
}

// FromTime extracts the local calendar fields of t.
func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, day := t.Date()
	return Date{Year: y, Month: int(m), Day: day}
}

// DaysInMonth returns the number of days in the given month, honouring
// leap years.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeap(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// AddMonths advances the (year, month) pair of d by n months with standard
// carry arithmetic and clamps the day to the target month's length.
// It never produces an invalid date and never rolls into the following month.
func AddMonths(d Date, n int) Date {
	months := d.Year*12 + (d.Month - 1) + n
	year := months / 12
	month := months%12 + 1
	return Date{Year: year, Month: month, Day: ClampDay(year, month, d.Day)}
}

// ClampDay bounds day into [1, DaysInMonth(year, month)].
func ClampDay(year, month, day int) int {
	if day < 1 {
		return 1
	}
	if max := DaysInMonth(year, month); day > max {
		return max
	}
	return day
}
