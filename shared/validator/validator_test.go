package validator_test

import (
	"strings"
	"testing"

	"frontdesk/shared/validator"
)

// Test structs for validation
type ValidTestStruct struct {
	GuestName string `validate:"required,max=100"`
	Category  string `validate:"required,oneof=Single Double Deluxe Suite"`
	Policy    string `validate:"required,policy"`
	CheckIn   string `validate:"required,staydate"`
	Guests    int    `validate:"gt=0"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *ValidTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &ValidTestStruct{
				GuestName: "John Doe",
				Category:  "Single",
				Policy:    "Regular",
				CheckIn:   "01/01/2025",
				Guests:    1,
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &ValidTestStruct{
				Category: "Single",
				Policy:   "Regular",
				CheckIn:  "01/01/2025",
				Guests:   1,
			},
			expectError: true,
		},
		{
			name: "invalid category",
			data: &ValidTestStruct{
				GuestName: "John Doe",
				Category:  "Penthouse",
				Policy:    "Regular",
				CheckIn:   "01/01/2025",
				Guests:    1,
			},
			expectError: true,
		},
		{
			name: "unknown policy",
			data: &ValidTestStruct{
				GuestName: "John Doe",
				Category:  "Single",
				Policy:    "Luxury",
				CheckIn:   "01/01/2025",
				Guests:    1,
			},
			expectError: true,
		},
		{
			name: "lowercase policy accepted",
			data: &ValidTestStruct{
				GuestName: "John Doe",
				Category:  "Single",
				Policy:    "corporate",
				CheckIn:   "01/01/2025",
				Guests:    1,
			},
			expectError: false,
		},
		{
			name: "malformed stay date",
			data: &ValidTestStruct{
				GuestName: "John Doe",
				Category:  "Single",
				Policy:    "Regular",
				CheckIn:   "2025-01-01",
				Guests:    1,
			},
			expectError: true,
		},
		{
			name: "month out of range",
			data: &ValidTestStruct{
				GuestName: "John Doe",
				Category:  "Single",
				Policy:    "Regular",
				CheckIn:   "01/13/2025",
				Guests:    1,
			},
			expectError: true,
		},
		{
			name: "zero guests",
			data: &ValidTestStruct{
				GuestName: "John Doe",
				Category:  "Single",
				Policy:    "Regular",
				CheckIn:   "01/01/2025",
				Guests:    0,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "positive room number",
			field:       101,
			tag:         "gt=0",
			expectError: false,
		},
		{
			name:        "zero room number",
			field:       0,
			tag:         "gt=0",
			expectError: true,
		},
		{
			name:        "negative reservation id",
			field:       -3,
			tag:         "gt=0",
			expectError: true,
		},
		{
			name:        "valid stay date",
			field:       "15/06/2025",
			tag:         "staydate",
			expectError: false,
		},
		{
			name:        "invalid stay date",
			field:       "31-06-2025",
			tag:         "staydate",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

// Test custom validation messages
func TestValidationMessages(t *testing.T) {
	data := &ValidTestStruct{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	// Check that error message contains field name and is descriptive
	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}

// Test that the validator package initializes correctly
func TestValidatorInitialization(t *testing.T) {
	// Test that we can validate basic structs without panic
	// This indirectly tests that the init() function worked correctly
	data := &ValidTestStruct{
		GuestName: "Test",
		Category:  "Suite",
		Policy:    "Premium",
		CheckIn:   "01/02/2025",
		Guests:    4,
	}

	err := validator.ValidateStruct(data)
	if err != nil {
		t.Errorf("expected no validation error for valid struct, got: %v", err)
	}
}
