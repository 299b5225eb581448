package repository

import (
	"testing"
	"time"
)

func TestSanitizeValueTemporal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		column string
		value  time.Time
		isDate bool
		want   string
	}{
		{
			name:   "date column drops time component",
			column: "Event_Date",
			value:  time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			isDate: true,
			want:   "2026-03-14",
		},
		{
			name:   "datetime keeps time component",
			column: "Booking_Date",
			value:  time.Date(2026, 3, 14, 19, 30, 5, 0, time.UTC),
			want:   "2026-03-14 19:30:05",
		},
		{
			name:   "datetime at exactly midnight keeps time component",
			column: "Booking_Date",
			value:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			want:   "2026-01-01 00:00:00",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := sanitizeValue(test.column, test.value, test.isDate)
			s, ok := got.(string)
			if !ok {
				t.Fatalf("got %T, want string", got)
			}
			if s != test.want {
				t.Errorf("got %q, want %q", s, test.want)
			}
		})
	}
}

func TestSanitizeValueMoneyCoercion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		column string
		value  any
		want   any
	}{
		{
			name:   "decimal bytes under revenue suffix",
			column: "Total_Revenue",
			value:  []byte("1249.50"),
			want:   1249.50,
		},
		{
			name:   "decimal bytes under percentage suffix",
			column: "Spending_Percentage",
			value:  []byte("12.5"),
			want:   12.5,
		},
		{
			name:   "integer under price suffix",
			column: "Final_Price",
			value:  int64(300),
			want:   300.0,
		},
		{
			name:   "suffix match is case insensitive",
			column: "TOTAL_SPENT",
			value:  []byte("42"),
			want:   42.0,
		},
		{
			name:   "non-money bytes stay string",
			column: "Venue_Name",
			value:  []byte("Wankhede Stadium"),
			want:   "Wankhede Stadium",
		},
		{
			name:   "non-money integer stays integer",
			column: "No_of_Seats",
			value:  int64(500),
			want:   int64(500),
		},
		{
			name:   "unparsable money bytes pass through",
			column: "Final_Price",
			value:  []byte("n/a"),
			want:   "n/a",
		},
		{
			name:   "nil passes through",
			column: "Total_Revenue",
			value:  nil,
			want:   nil,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := sanitizeValue(test.column, test.value, false)
			if got != test.want {
				t.Errorf("sanitizeValue(%q, %v) = %v (%T), want %v (%T)",
					test.column, test.value, got, got, test.want, test.want)
			}
		})
	}
}

// Reapplying the transform over already-sanitized output must change
// nothing: strings stay strings, coerced floats stay the same value.
func TestSanitizeValueIdempotent(t *testing.T) {
	t.Parallel()
	cells := []struct {
		column string
		value  any
		isDate bool
	}{
		{column: "Event_Date", value: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), isDate: true},
		{column: "Booking_Date", value: time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)},
		{column: "Total_Revenue", value: []byte("99.90")},
		{column: "Venue_Name", value: []byte("Gymkhana")},
		{column: "Tickets_Sold", value: int64(7)},
	}
	for _, cell := range cells {
		once := sanitizeValue(cell.column, cell.value, cell.isDate)
		twice := sanitizeValue(cell.column, once, cell.isDate)
		if once != twice {
			t.Errorf("%s: second pass changed %v (%T) to %v (%T)",
				cell.column, once, once, twice, twice)
		}
	}
}

func TestHasMoneySuffix(t *testing.T) {
	t.Parallel()
	tests := []struct {
		column string
		want   bool
	}{
		{"Final_Price", true},
		{"Total_Revenue", true},
		{"Total_Spent", true},
		{"Spending_Percentage", true},
		{"price", true},
		{"Priceless_Item", false},
		{"Event_Name", false},
		{"", false},
	}
	for _, test := range tests {
		if got := hasMoneySuffix(test.column); got != test.want {
			t.Errorf("hasMoneySuffix(%q) = %v, want %v", test.column, got, test.want)
		}
	}
}
