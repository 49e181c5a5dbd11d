// Package units holds the pure arithmetic between an item's base unit
// and its optional secondary packaging unit. It carries no state and
// has no error conditions: a missing or non-positive conversion rate
// behaves as 1:1.
package units

import (
	"fmt"
	"math"
)

// NormalizeRate maps absent or broken rates to 1 so callers never
// divide by zero.
func NormalizeRate(rate float64) float64 {
	if rate <= 0 {
		return 1
	}
	return rate
}

// ToBase converts a quantity expressed in the secondary unit to base
// units. rate is base units per one secondary unit.
func ToBase(qty, rate float64) float64 {
	return qty * NormalizeRate(rate)
}

// FromBase converts a base-unit quantity to secondary units.
func FromBase(baseQty, rate float64) float64 {
	return baseQty / NormalizeRate(rate)
}

// Breakdown decomposes a base quantity into whole secondary units plus
// a base-unit remainder, floor division.
func Breakdown(baseQty, rate float64) (secondary float64, remainder float64) {
	rate = NormalizeRate(rate)
	secondary = math.Floor(baseQty / rate)
	remainder = baseQty - secondary*rate
	return secondary, remainder
}

// FormatBreakdown renders a base quantity the way the stock views show
// it, e.g. "2 Box 5 pcs". Items without a secondary unit render as
// "25 pcs".
func FormatBreakdown(baseQty, rate float64, baseUnit, secondaryUnit string) string {
	if secondaryUnit == "" || NormalizeRate(rate) == 1 {
		return fmt.Sprintf("%g %s", baseQty, baseUnit)
	}
	secondary, remainder := Breakdown(baseQty, rate)
	if secondary == 0 {
		return fmt.Sprintf("%g %s", remainder, baseUnit)
	}
	if remainder == 0 {
		return fmt.Sprintf("%g %s", secondary, secondaryUnit)
	}
	return fmt.Sprintf("%g %s %g %s", secondary, secondaryUnit, remainder, baseUnit)
}
