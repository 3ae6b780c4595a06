package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		ok     bool
		format Format
		want   string
	}{
		{"currency", "1234.56", true, FormatCurrency, "1.234,56 €"},
		{"currency rounds", "1234.5", true, FormatCurrency, "1.234,50 €"},
		{"percent", "12.5", true, FormatPercent, "12,5 %"},
		{"number", "1234.56", true, FormatNumber, "1.234,56"},
		{"negative currency", "-42", true, FormatCurrency, "-42,00 €"},
		{"undefined", "0", false, FormatCurrency, "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatValue(dec(tt.value), tt.ok, tt.format)
			assert.Equal(t, tt.want, got)
		})
	}
}
