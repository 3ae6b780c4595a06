// Package kpi evaluates user-defined key metrics against a generated
// report: {{identifier}} placeholders resolve to taxonomy-node amounts or
// raw account balances for a year, and the resulting arithmetic expression
// is computed with a small built-in evaluator.
package kpi

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/bilanz-dev/bilanz/internal/model"
)

var (
	placeholderRe = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)
	whitelistRe   = regexp.MustCompile(`^[0-9.+\-*/()\s]+$`)
)

// Evaluate resolves a formula's placeholders for a year and computes the
// expression. ok is false when a placeholder stays unresolved to a
// non-numeric remainder, the substituted string fails the character
// whitelist, or evaluation faults — never a partial result.
func Evaluate(data *model.FinancialData, formula string, year int) (decimal.Decimal, bool) {
	substituted := placeholderRe.ReplaceAllStringFunc(formula, func(m string) string {
		id := placeholderRe.FindStringSubmatch(m)[1]
		return resolve(data, id, year).String()
	})

	if !whitelistRe.MatchString(substituted) {
		return decimal.Zero, false
	}
	v, err := evaluate(substituted)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

// resolve looks an identifier up for a year: report tree first (assets,
// liabilities, then P&L, depth-first), then the raw account map, else zero.
func resolve(data *model.FinancialData, id string, year int) decimal.Decimal {
	for _, root := range []*model.FinancialReportItem{data.Assets, data.Liabilities, data.ProfitAndLoss} {
		if root == nil {
			continue
		}
		if v, found := findInTree(root, id, year); found {
			return v
		}
	}
	if acc, ok := data.Accounts[id]; ok {
		return acc.YearlyBalances[year]
	}
	return decimal.Zero
}

// findInTree searches an item and its children depth-first for a node id,
// returning its amount for the year. Missing years read as zero.
func findInTree(item *model.FinancialReportItem, id string, year int) (decimal.Decimal, bool) {
	if item.ID == id {
		return item.AmountFor(year), true
	}
	for _, child := range item.Children {
		if v, found := findInTree(child, id, year); found {
			return v, true
		}
	}
	return decimal.Zero, false
}
