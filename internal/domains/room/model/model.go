package model

import (
	"fmt"
	"strings"

	"frontdesk/shared/billing"
	"frontdesk/shared/model"
)

const EntityName = "room"

type Category string

const (
	CategorySingle Category = "Single"
	CategoryDouble Category = "Double"
	CategoryDeluxe Category = "Deluxe"
	CategorySuite  Category = "Suite"
)

// MaxGuests returns the canonical capacity for the category.
func (c Category) MaxGuests() int {
	switch c {
	case CategorySingle:
		return 1
	case CategoryDouble:
		return 2
	case CategoryDeluxe:
		return 4
	case CategorySuite:
		return 6
	default:
		return 0
	}
}

func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "single":
		return CategorySingle, nil
	case "double":
		return CategoryDouble, nil
	case "deluxe":
		return CategoryDeluxe, nil
	case "suite":
		return CategorySuite, nil
	default:
		return "", fmt.Errorf("unknown room category %q", name)
	}
}

func CategoryNames() []string {
	return []string{
		string(CategorySingle),
		string(CategoryDouble),
		string(CategoryDeluxe),
		string(CategorySuite),
	}
}

type Room struct {
	Number    int
	Category  Category
	Rate      float64
	Available bool
	Policy    billing.Policy
	MaxGuests int
	model.Metadata
}

// Bill prices a stay under the room's billing policy. Nights must be
// positive; the policy itself never checks.
func (r Room) Bill(nights int) (float64, error) {
	if nights <= 0 {
		return 0, billing.ErrNonPositiveNights
	}

	return r.Policy.Compute(r.Rate, nights), nil
}
