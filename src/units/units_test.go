package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRate(t *testing.T) {
	assert.Equal(t, 1.0, NormalizeRate(0))
	assert.Equal(t, 1.0, NormalizeRate(-5))
	assert.Equal(t, 12.0, NormalizeRate(12))
	assert.Equal(t, 0.5, NormalizeRate(0.5))
}

func TestToBaseAndBack(t *testing.T) {
	assert.Equal(t, 20.0, ToBase(2, 10))
	assert.Equal(t, 2.0, FromBase(20, 10))
	assert.Equal(t, 7.0, ToBase(7, 0))
	assert.Equal(t, 7.0, FromBase(7, 0))

	// Fractional rates round-trip.
	assert.InDelta(t, 3.0, FromBase(ToBase(3, 2.5), 2.5), 1e-9)
}

func TestBreakdown(t *testing.T) {
	tests := []struct {
		name      string
		baseQty   float64
		rate      float64
		secondary float64
		remainder float64
	}{
		{"exact boxes", 30, 10, 3, 0},
		{"boxes with remainder", 25, 10, 2, 5},
		{"less than one box", 7, 10, 0, 7},
		{"rate of one", 25, 1, 25, 0},
		{"broken rate behaves as one", 25, 0, 25, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secondary, remainder := Breakdown(tt.baseQty, tt.rate)
			assert.Equal(t, tt.secondary, secondary)
			assert.Equal(t, tt.remainder, remainder)
		})
	}
}

func TestFormatBreakdown(t *testing.T) {
	tests := []struct {
		name string
		want string
		got  string
	}{
		{"mixed", "2 Box 5 pcs", FormatBreakdown(25, 10, "pcs", "Box")},
		{"whole boxes", "3 Box", FormatBreakdown(30, 10, "pcs", "Box")},
		{"below one box", "7 pcs", FormatBreakdown(7, 10, "pcs", "Box")},
		{"no secondary unit", "25 pcs", FormatBreakdown(25, 10, "pcs", "")},
		{"rate of one", "25 pcs", FormatBreakdown(25, 1, "pcs", "Box")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
