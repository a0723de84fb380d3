package stay_test

import (
	"errors"
	"testing"

	"frontdesk/shared/stay"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected stay.Date
		wantErr  bool
	}{
		{
			name:     "zero padded date",
			input:    "05/03/2025",
			expected: stay.Date{Day: 5, Month: 3, Year: 2025},
		},
		{
			name:     "unpadded day and month",
			input:    "5/3/2025",
			expected: stay.Date{Day: 5, Month: 3, Year: 2025},
		},
		{
			name:     "december",
			input:    "31/12/2024",
			expected: stay.Date{Day: 31, Month: 12, Year: 2024},
		},
		{
			name:    "missing part",
			input:   "05/2025",
			wantErr: true,
		},
		{
			name:    "too many parts",
			input:   "05/03/2025/01",
			wantErr: true,
		},
		{
			name:    "non-numeric day",
			input:   "five/03/2025",
			wantErr: true,
		},
		{
			name:    "non-numeric month",
			input:   "05/March/2025",
			wantErr: true,
		},
		{
			name:    "non-numeric year",
			input:   "05/03/twenty",
			wantErr: true,
		},
		{
			name:    "month zero",
			input:   "05/00/2025",
			wantErr: true,
		},
		{
			name:    "month thirteen",
			input:   "05/13/2025",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := stay.ParseDate(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("expected an error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestDate_Before(t *testing.T) {
	tests := []struct {
		name     string
		d        stay.Date
		other    stay.Date
		expected bool
	}{
		{
			name:     "earlier year wins over later month and day",
			d:        stay.Date{Day: 31, Month: 12, Year: 2024},
			other:    stay.Date{Day: 1, Month: 1, Year: 2025},
			expected: true,
		},
		{
			name:     "earlier month within same year",
			d:        stay.Date{Day: 20, Month: 2, Year: 2025},
			other:    stay.Date{Day: 1, Month: 3, Year: 2025},
			expected: true,
		},
		{
			name:     "earlier day within same month",
			d:        stay.Date{Day: 10, Month: 5, Year: 2025},
			other:    stay.Date{Day: 11, Month: 5, Year: 2025},
			expected: true,
		},
		{
			name:     "equal dates are not before",
			d:        stay.Date{Day: 10, Month: 5, Year: 2025},
			other:    stay.Date{Day: 10, Month: 5, Year: 2025},
			expected: false,
		},
		{
			name:     "later date is not before",
			d:        stay.Date{Day: 2, Month: 6, Year: 2025},
			other:    stay.Date{Day: 1, Month: 6, Year: 2025},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Before(tt.other); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		expected int
	}{
		{
			// Same-month stays take the month remainder plus the check-out
			// day, so two calendar nights count as 33.
			name:     "same month january first to third",
			checkIn:  "01/01/2025",
			checkOut: "03/01/2025",
			expected: 33,
		},
		{
			name:     "cross month with full february between",
			checkIn:  "15/01/2025",
			checkOut: "10/03/2025",
			expected: 54,
		},
		{
			name:     "adjacent months",
			checkIn:  "28/02/2025",
			checkOut: "01/03/2025",
			expected: 1,
		},
		{
			name:     "year boundary ignores the year difference",
			checkIn:  "31/12/2024",
			checkOut: "01/01/2025",
			expected: 1,
		},
		{
			name:     "check-in month remainder only",
			checkIn:  "30/06/2025",
			checkOut: "02/07/2025",
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := stay.Nights(tt.checkIn, tt.checkOut)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %d nights, got %d", tt.expected, got)
			}
		})
	}
}

func TestNights_InvalidRange(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{
			name:     "equal dates",
			checkIn:  "10/05/2025",
			checkOut: "10/05/2025",
		},
		{
			name:     "check-out before check-in",
			checkIn:  "11/05/2025",
			checkOut: "10/05/2025",
		},
		{
			name:     "check-out in earlier year",
			checkIn:  "01/01/2025",
			checkOut: "31/12/2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nights, err := stay.Nights(tt.checkIn, tt.checkOut)

			if !errors.Is(err, stay.ErrInvalidDateRange) {
				t.Errorf("expected ErrInvalidDateRange, got %v", err)
			}
			if nights != 0 {
				t.Errorf("expected zero nights, got %d", nights)
			}
		})
	}
}

func TestNights_ParseFailure(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{
			name:     "malformed check-in",
			checkIn:  "2025-01-01",
			checkOut: "03/01/2025",
		},
		{
			name:     "malformed check-out",
			checkIn:  "01/01/2025",
			checkOut: "not-a-date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stay.Nights(tt.checkIn, tt.checkOut)

			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if errors.Is(err, stay.ErrInvalidDateRange) {
				t.Errorf("expected a parse error, got %v", err)
			}
		})
	}
}
