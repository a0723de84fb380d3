// Package stay parses DD/MM/YYYY stay dates and derives night counts from a
// fixed month-length table. February always counts 28 days; leap years and
// calendar arithmetic are out of scope for the desk's bookkeeping.
package stay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// daysInMonth is the fixed non-leap month table behind every night count.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ErrInvalidDateRange rejects stays whose check-out does not fall strictly
// after check-in. It surfaces at the console boundary rather than being
// reported as an outcome.
var ErrInvalidDateRange = errors.New("check-out date must fall after check-in date")

// Date is a plain day/month/year triple parsed from DD/MM/YYYY text.
type Date struct {
	Day   int
	Month int
	Year  int
}

// ParseDate splits DD/MM/YYYY text into a Date. Only the shape is checked:
// three integer parts with the month inside 1..12. Day values are taken as
// given.
func ParseDate(value string) (Date, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("date %q must be in DD/MM/YYYY format", value)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("date %q has a non-numeric day: %w", value, err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("date %q has a non-numeric month: %w", value, err)
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("date %q has a non-numeric year: %w", value, err)
	}

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("date %q has month %d outside 1..12", value, month)
	}

	return Date{Day: day, Month: month, Year: year}, nil
}

// Before reports whether d falls strictly before other, comparing year, then
// month, then day.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}

	if d.Month != other.Month {
		return d.Month < other.Month
	}

	return d.Day < other.Day
}

// Nights counts nights between check-in and check-out from the month table:
// the remainder of the check-in month, every month strictly in between, and
// the check-out day of month. Equal or reversed dates return
// ErrInvalidDateRange.
func Nights(checkIn, checkOut string) (int, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return 0, err
	}

	out, err := ParseDate(checkOut)
	if err != nil {
		return 0, err
	}

	if !in.Before(out) {
		return 0, ErrInvalidDateRange
	}

	nights := daysInMonth[in.Month-1] - in.Day
	for m := in.Month; m <= out.Month-2; m++ {
		nights += daysInMonth[m]
	}
	nights += out.Day

	return nights, nil
}
