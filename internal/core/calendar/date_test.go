package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Date
	}{
		{"canonical", "2024-03-15", Date{2024, 3, 15}},
		{"rfc3339 prefix", "2024-03-15T10:30:00Z", Date{2024, 3, 15}},
		{"leap day", "2024-02-29", Date{2024, 2, 29}},
		{"invalid leap day", "2023-02-29", Date{}},
		{"month out of range", "2024-13-01", Date{}},
		{"day out of range", "2024-04-31", Date{}},
		{"wrong separator", "2024/03/15", Date{}},
		{"garbage", "not a date", Date{}},
		{"empty", "", Date{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestFromAny(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input any
		want  Date
	}{
		{"nil", nil, Date{}},
		{"date passthrough", Date{2024, 1, 2}, Date{2024, 1, 2}},
		{"canonical string", "2024-03-15", Date{2024, 3, 15}},
		{"brazilian display form", "15/03/2024", Date{2024, 3, 15}},
		{"short brazilian form", "5/3/2024", Date{2024, 3, 5}},
		{"space-separated timestamp", "2024-03-15 22:10:05", Date{2024, 3, 15}},
		{"number is not a date", 20240315, Date{}},
		{"unparseable string", "amanhã", Date{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromAny(tt.input))
		})
	}

	t.Run("time uses local fields, not UTC", func(t *testing.T) {
		// 23:30 in São Paulo is already the next day in UTC.
		late := time.Date(2024, 3, 15, 23, 30, 0, 0, loc)
		assert.Equal(t, Date{2024, 3, 15}, FromAny(late))
	})

	t.Run("nil time pointer", func(t *testing.T) {
		var tp *time.Time
		assert.Equal(t, Date{}, FromAny(tp))
	})
}

func TestCompare(t *testing.T) {
	a := Date{2024, 3, 15}
	b := Date{2024, 3, 16}

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(Date{2024, 3, 15}))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, Date{2023, 12, 31}.Compare(Date{2024, 1, 1}))
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		d    Date
		n    int
		want Date
	}{
		{"simple", Date{2024, 1, 15}, 1, Date{2024, 2, 15}},
		{"year carry", Date{2024, 11, 10}, 3, Date{2025, 2, 10}},
		{"clamp to leap february", Date{2024, 1, 31}, 1, Date{2024, 2, 29}},
		{"clamp to plain february", Date{2023, 1, 31}, 1, Date{2023, 2, 28}},
		{"clamp to thirty days", Date{2024, 3, 31}, 1, Date{2024, 4, 30}},
		{"many months", Date{2024, 1, 31}, 13, Date{2025, 2, 28}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.d, tt.n))
		})
	}
}

func TestClampDay(t *testing.T) {
	assert.Equal(t, 29, ClampDay(2024, 2, 31))
	assert.Equal(t, 28, ClampDay(2023, 2, 31))
	assert.Equal(t, 15, ClampDay(2024, 2, 15))
	assert.Equal(t, 1, ClampDay(2024, 2, 0))
}

func TestJSONRoundTrip(t *testing.T) {
	d := Date{2024, 3, 15}
	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15"`, string(data))

	var got Date
	require.NoError(t, got.UnmarshalJSON(data))
	assert.Equal(t, d, got)

	var sentinel Date
	require.NoError(t, sentinel.UnmarshalJSON([]byte(`""`)))
	assert.True(t, sentinel.IsZero())
}
