package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithPrecision(t *testing.T) {
	testCases := []struct {
		name      string
		amount    string
		precision int
		expected  string
	}{
		{"rounds half up", "12.345", 2, "12.35"},
		{"trims to whole units", "12.3456", 0, "12"},
		{"whole amount unchanged", "1300", 2, "1300"},
		{"negative amount", "-95.455", 2, "-95.46"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatWithPrecision(decimal.RequireFromString(tc.amount), tc.precision)
			assert.Equal(t, tc.expected, got)
		})
	}
}
