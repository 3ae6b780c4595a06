package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateArithmetic(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"1+2", "3"},
		{"2+3*4", "14"},
		{"(2+3)*4", "20"},
		{"10-4-3", "3"},
		{"100/4", "25"},
		{"100/8", "12.5"},
		{"-5+10", "5"},
		{"2*-3", "-6"},
		{"1.5*2", "3"},
		{" ( 1 + 2 ) * 3 ", "9"},
		{"+7", "7"},
		{"--4", "4"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := evaluate(tt.expr)
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tt.want)), "evaluate(%q) = %s, want %s", tt.expr, got, tt.want)
		})
	}
}

func TestEvaluateFaults(t *testing.T) {
	for _, expr := range []string{
		"",
		"   ",
		"1+",
		"1++",
		"(1+2",
		"1+2)",
		"1..2",
		"1 2",
		"*3",
		"1/0",
		"1/(2-2)",
	} {
		t.Run(expr, func(t *testing.T) {
			_, err := evaluate(expr)
			assert.Error(t, err, "expected %q to fail", expr)
		})
	}
}
