package moneykeeper

import (
	"fmt"
	"time"
)

// DateFormat is the format used to represent dates as strings, ISO-8601.
const DateFormat = "2006-01-02"

// Supported year range. Dates outside of it are rejected.
const (
	minYear = 2000
	maxYear = 2100
)

// Date represents a validated calendar date with day-level granularity.
//
// A Date obtained from NewDate, ParseDate or Today is always valid. The zero
// value is not a valid date and is rejected wherever a date is required.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a Date for the given year, month, and day, or ErrInvalidDate
// when the components do not form a real calendar date in [2000, 2100].
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{year, month, day}
	if !d.valid() {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return d, nil
}

// Today returns the current date from the system clock.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date{y, m, d}
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func daysInMonth(year int, month time.Month) int {
	days := [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if month == time.February && isLeapYear(year) {
		return 29
	}
	return days[month-1]
}

func (d Date) valid() bool {
	return d.y >= minYear && d.y <= maxYear &&
		d.m >= time.January && d.m <= time.December &&
		d.d >= 1 && d.d <= daysInMonth(d.y, d.m)
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// String formats the date as "YYYY-MM-DD".
func (d Date) String() string { return d.time().Format(DateFormat) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare orders dates by (year, month, day). It returns -1 when d is before
// x, 0 when equal, and +1 when after.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// ParseDate parses a Date from a "YYYY-MM-DD" string, the exact format
// produced by String. It returns ErrInvalidDate on malformed or out-of-range
// input.
func ParseDate(str string) (Date, error) {
	on, err := time.Parse(DateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q want format %q", ErrInvalidDate, str, DateFormat)
	}
	return NewDate(on.Date())
}

// MustParseDate is like ParseDate but panics on error. It is meant for
// constants and tests.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
