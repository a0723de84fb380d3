// Package billing holds the rate policies a room can carry. Policies are
// stateless values; a room owns exactly one and may swap it at any time.
package billing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNonPositiveNights rejects bill computation for a non-positive stay
// length. Callers raise it before delegating to a policy; policies themselves
// never validate nights.
var ErrNonPositiveNights = errors.New("nights must be greater than zero")

// Policy prices a stay from the room base rate and the night count.
type Policy interface {
	Compute(baseRate float64, nights int) float64
	Name() string
}

// Regular charges the base rate per night with no adjustment.
type Regular struct{}

func (Regular) Compute(baseRate float64, nights int) float64 {
	return baseRate * float64(nights)
}

func (Regular) Name() string { return "Regular" }

// Premium adds a ten percent surcharge on top of the base amount.
type Premium struct{}

func (Premium) Compute(baseRate float64, nights int) float64 {
	return baseRate * float64(nights) * 1.10
}

func (Premium) Name() string { return "Premium" }

// Corporate applies a fifteen percent negotiated discount.
type Corporate struct{}

func (Corporate) Compute(baseRate float64, nights int) float64 {
	return baseRate * float64(nights) * 0.85
}

func (Corporate) Name() string { return "Corporate" }

// Parse maps a display name to its policy, case-insensitively.
func Parse(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "regular":
		return Regular{}, nil
	case "premium":
		return Premium{}, nil
	case "corporate":
		return Corporate{}, nil
	}

	return nil, fmt.Errorf("unknown billing policy %q", name)
}

// Names lists the closed set of policies in display order.
func Names() []string {
	return []string{Regular{}.Name(), Premium{}.Name(), Corporate{}.Name()}
}
