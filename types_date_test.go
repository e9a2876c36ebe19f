package moneykeeper

import (
	"testing"
	"time"
)

func TestNewDate(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		err   bool
	}{
		{"regular day", 2024, time.July, 15, false},
		{"first day of range", 2000, time.January, 1, false},
		{"last day of range", 2100, time.December, 31, false},
		{"year too small", 1999, time.December, 31, true},
		{"year too large", 2101, time.January, 1, true},
		{"month zero", 2024, 0, 10, true},
		{"month thirteen", 2024, 13, 10, true},
		{"day zero", 2024, time.March, 0, true},
		{"day beyond month", 2024, time.April, 31, true},
		{"leap day on leap year", 2024, time.February, 29, false},
		{"leap day on common year", 2023, time.February, 29, true},
		{"leap day on century", 2100, time.February, 29, true},
		{"leap day on 400-year", 2000, time.February, 29, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDate(tt.year, tt.month, tt.day)
			if (err != nil) != tt.err {
				t.Errorf("NewDate(%d, %d, %d) error = %v, wantErr %v", tt.year, tt.month, tt.day, err, tt.err)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		err      bool
	}{
		{"2024-02-29", "2024-02-29", false},
		{"2023-02-29", "", true},
		{"2025-01-02", "2025-01-02", false},
		{"1999-01-01", "", true},
		{"2025-1-2", "", true},
		{"02-01-2025", "", true},
		{"not a date", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if !tt.err && got.String() != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDateRoundTrip(t *testing.T) {
	for _, s := range []string{"2000-01-01", "2024-02-29", "2077-11-30", "2100-12-31"} {
		d := MustParseDate(s)
		if d.String() != s {
			t.Errorf("round trip %q = %q", s, d.String())
		}
	}
}

func TestDateOrdering(t *testing.T) {
	a := MustParseDate("2024-05-10")
	b := MustParseDate("2024-05-11")
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before() inconsistent for %v and %v", a, b)
	}
	if !b.After(a) {
		t.Errorf("After() inconsistent for %v and %v", a, b)
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare() inconsistent for %v and %v", a, b)
	}
}

func TestDateIsZero(t *testing.T) {
	var zero Date
	if !zero.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if Today().IsZero() {
		t.Error("Today() should never be zero")
	}
	if !Today().valid() {
		t.Error("Today() should be a valid date")
	}
}
