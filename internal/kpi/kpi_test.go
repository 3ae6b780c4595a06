package kpi

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilanz-dev/bilanz/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func yearly(year int, v string) map[int]decimal.Decimal {
	return map[int]decimal.Decimal{year: dec(v)}
}

// testData builds a small report: one asset node "a" (100 in 2024), a
// nested liability node "deep" (40 in 2024) and a raw account "b" (50 in
// 2024) that is not part of the tree.
func testData() *model.FinancialData {
	return &model.FinancialData{
		Assets: &model.FinancialReportItem{
			ID: "aktiva_root",
			Children: []*model.FinancialReportItem{
				{ID: "a", YearlyAmounts: yearly(2024, "100")},
			},
		},
		Liabilities: &model.FinancialReportItem{
			ID: "passiva_root",
			Children: []*model.FinancialReportItem{
				{
					ID: "ek",
					Children: []*model.FinancialReportItem{
						{ID: "deep", YearlyAmounts: yearly(2024, "40")},
					},
				},
			},
		},
		ProfitAndLoss: &model.FinancialReportItem{ID: "guv_root"},
		Accounts: map[string]*model.AccountBalance{
			"b":    {Number: "b", YearlyBalances: yearly(2024, "50")},
			"4400": {Number: "4400", YearlyBalances: yearly(2024, "-500")},
		},
	}
}

func TestEvaluatePlaceholders(t *testing.T) {
	data := testData()

	v, ok := Evaluate(data, "{{a}}+{{b}}", 2024)
	require.True(t, ok)
	assert.True(t, v.Equal(dec("150")))
}

func TestEvaluateNestedTreeNode(t *testing.T) {
	data := testData()

	v, ok := Evaluate(data, "{{deep}}*2", 2024)
	require.True(t, ok)
	assert.True(t, v.Equal(dec("80")))
}

func TestEvaluateTreeWinsOverAccountMap(t *testing.T) {
	data := testData()
	// Same id in tree and account map: the tree match wins.
	data.Accounts["a"] = &model.AccountBalance{Number: "a", YearlyBalances: yearly(2024, "999")}

	v, ok := Evaluate(data, "{{a}}", 2024)
	require.True(t, ok)
	assert.True(t, v.Equal(dec("100")))
}

func TestEvaluateAbsentYearReadsZero(t *testing.T) {
	data := testData()

	v, ok := Evaluate(data, "{{a}}+1", 2019)
	require.True(t, ok)
	assert.True(t, v.Equal(dec("1")))
}

func TestEvaluateUnknownIdentifierResolvesToZero(t *testing.T) {
	data := testData()

	v, ok := Evaluate(data, "{{unknown}}+1", 2024)
	require.True(t, ok)
	assert.True(t, v.Equal(dec("1")))
}

func TestEvaluateNegativeBalanceSubstitution(t *testing.T) {
	data := testData()

	v, ok := Evaluate(data, "{{4400}}*2", 2024)
	require.True(t, ok)
	assert.True(t, v.Equal(dec("-1000")))
}

func TestEvaluateUndefined(t *testing.T) {
	data := testData()

	tests := []string{
		"{{foo bar}}+1", // malformed placeholder survives substitution
		"{{a}}+x",       // stray letter fails the whitelist
		"abc",
		"{{a}}/{{unknown}}", // division by the zero-resolved identifier
		"{{a}}+",
	}
	for _, formula := range tests {
		t.Run(formula, func(t *testing.T) {
			_, ok := Evaluate(data, formula, 2024)
			assert.False(t, ok, "expected %q to be undefined", formula)
		})
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	data := testData()

	first, ok1 := Evaluate(data, "{{a}}/{{b}}*100", 2024)
	second, ok2 := Evaluate(data, "{{a}}/{{b}}*100", 2024)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.True(t, first.Equal(second))
	assert.True(t, first.Equal(dec("200")))
}
