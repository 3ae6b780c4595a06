// Package report builds the multi-year financial statement: classified
// accounts rolled up through the taxonomy tree, the year's result injected
// as a synthetic equity line, and the balance-sheet equilibrium check.
package report

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/bilanz-dev/bilanz/internal/classify"
	"github.com/bilanz-dev/bilanz/internal/mapping"
	"github.com/bilanz-dev/bilanz/internal/model"
	"github.com/bilanz-dev/bilanz/internal/taxonomy"
)

// negligible is the cutoff below which an account is treated as
// floating-point residue and left out of the report tree.
var negligible = decimal.RequireFromString("0.01")

// balanceTolerance absorbs rounding noise in the equilibrium check.
var balanceTolerance = decimal.RequireFromString("0.05")

// NetResultAccount is the account number of the synthetic leaf carrying the
// computed profit. It is not a real ledger account.
const NetResultAccount = "JÜ"

// Generate produces the full report for an account map and an override
// table. It never fails: unclassifiable accounts land in the unassigned
// list and every field-level anomaly degrades to a zero value. The account
// map is treated as a fresh snapshot; attached accounts are clones.
func Generate(accounts map[string]*model.AccountBalance, journal []model.Booking, overrides mapping.Mapping) *model.FinancialData {
	years := yearAxis(accounts)

	// Name overrides apply to the caller's records before classification so
	// every downstream surface shows the override.
	for number, ov := range overrides {
		if ov.Name == "" {
			continue
		}
		if acc, ok := accounts[number]; ok {
			acc.Name = ov.Name
		}
	}

	items := make(map[string]*model.FinancialReportItem)
	for _, def := range taxonomy.Definitions() {
		items[def.ID] = &model.FinancialReportItem{
			ID:            def.ID,
			Label:         def.Label,
			Amount:        decimal.Zero,
			YearlyAmounts: make(map[int]decimal.Decimal),
		}
	}

	var unassigned []*model.AccountBalance
	profit := decimal.Zero
	yearlyProfit := make(map[int]decimal.Decimal)

	for _, acc := range sortedAccounts(accounts) {
		if !interesting(acc) {
			continue
		}

		nodeID, ok := classify.Classify(acc.Number, overrides)
		if !ok {
			unassigned = append(unassigned, acc)
			continue
		}
		item, found := items[nodeID]
		def, defFound := taxonomy.ByID(nodeID)
		if !found || !defFound {
			// A mapped id pointing nowhere is a configuration
			// inconsistency; surface the account instead of dropping it.
			unassigned = append(unassigned, acc)
			continue
		}

		display := acc.Clone()
		if def.Type == taxonomy.TypeLiability || def.Type == taxonomy.TypeRevenue {
			display.Negate()
		}

		item.Accounts = append(item.Accounts, display)
		item.Amount = item.Amount.Add(display.Balance)
		for year, v := range display.YearlyBalances {
			item.YearlyAmounts[year] = item.YearlyAmounts[year].Add(v)
		}

		// Profit comes straight from the sign-normalized leaf
		// contributions; reading back tree totals here would make the
		// result depend on traversal order.
		switch def.Type {
		case taxonomy.TypeRevenue:
			profit = profit.Add(display.Balance)
			for year, v := range display.YearlyBalances {
				yearlyProfit[year] = yearlyProfit[year].Add(v)
			}
		case taxonomy.TypeExpense:
			profit = profit.Sub(display.Balance)
			for year, v := range display.YearlyBalances {
				yearlyProfit[year] = yearlyProfit[year].Sub(v)
			}
		}
	}

	injectNetResult(items, profit, yearlyProfit)
	link(items)

	assets := items[taxonomy.AssetsRootID]
	liabilities := items[taxonomy.LiabilitiesRootID]
	pl := items[taxonomy.ProfitAndLossRootID]
	for _, root := range []*model.FinancialReportItem{assets, liabilities, pl} {
		computeTotals(root, years)
	}

	diff := assets.Amount.Sub(liabilities.Amount)

	return &model.FinancialData{
		Assets:        assets,
		Liabilities:   liabilities,
		ProfitAndLoss: pl,
		Check: model.BalanceCheck{
			Diff:     diff,
			Balanced: diff.Abs().LessThan(balanceTolerance),
		},
		Unassigned:   unassigned,
		Accounts:     accounts,
		Journal:      journal,
		Profit:       profit,
		YearlyProfit: yearlyProfit,
		Years:        years,
	}
}

// yearAxis returns the union of all fiscal years, most recent first.
func yearAxis(accounts map[string]*model.AccountBalance) []int {
	seen := make(map[int]bool)
	for _, acc := range accounts {
		for year := range acc.YearlyBalances {
			seen[year] = true
		}
	}
	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// sortedAccounts orders the map numerically so generation is deterministic.
func sortedAccounts(accounts map[string]*model.AccountBalance) []*model.AccountBalance {
	list := make([]*model.AccountBalance, 0, len(accounts))
	for _, acc := range accounts {
		list = append(list, acc)
	}
	sort.Slice(list, func(i, j int) bool {
		a, aerr := strconv.Atoi(list[i].Number)
		b, berr := strconv.Atoi(list[j].Number)
		if aerr == nil && berr == nil {
			return a < b
		}
		if (aerr == nil) != (berr == nil) {
			return aerr == nil // numeric accounts before symbolic ones
		}
		return list[i].Number < list[j].Number
	})
	return list
}

// interesting reports whether an account has activity above the noise
// cutoff, in total or in any single year.
func interesting(acc *model.AccountBalance) bool {
	if acc.Balance.Abs().GreaterThanOrEqual(negligible) {
		return true
	}
	for _, v := range acc.YearlyBalances {
		if v.Abs().GreaterThanOrEqual(negligible) {
			return true
		}
	}
	return false
}

// injectNetResult writes the computed profit into the designated equity
// line as both its amounts and a synthetic single-account leaf, so it shows
// up in display and KPI lookups like any real account.
func injectNetResult(items map[string]*model.FinancialReportItem, profit decimal.Decimal, yearlyProfit map[int]decimal.Decimal) {
	item, ok := items[taxonomy.NetResultID]
	if !ok {
		return
	}
	name := "Jahresüberschuss"
	if profit.IsNegative() {
		name = "Jahresfehlbetrag"
	}

	leaf := &model.AccountBalance{
		Number:         NetResultAccount,
		Name:           name,
		Balance:        profit,
		YearlyBalances: make(map[int]decimal.Decimal, len(yearlyProfit)),
	}
	item.Amount = profit
	item.YearlyAmounts = make(map[int]decimal.Decimal, len(yearlyProfit))
	for year, v := range yearlyProfit {
		leaf.YearlyBalances[year] = v
		item.YearlyAmounts[year] = v
	}
	item.Accounts = []*model.AccountBalance{leaf}
}

// link attaches every non-root item under its parent, in taxonomy display
// order, and folds its running total upward. The fold is provisional; the
// computeTotals pass afterwards is authoritative.
func link(items map[string]*model.FinancialReportItem) {
	for _, def := range taxonomy.Definitions() {
		if def.Parent == "" {
			continue
		}
		item := items[def.ID]
		parent, ok := items[def.Parent]
		if !ok {
			continue
		}
		parent.Children = append(parent.Children, item)
		parent.Amount = parent.Amount.Add(item.Amount)
	}
	for _, item := range items {
		sortChildren(item)
	}
}

func sortChildren(item *model.FinancialReportItem) {
	sort.SliceStable(item.Children, func(i, j int) bool {
		a, _ := taxonomy.ByID(item.Children[i].ID)
		b, _ := taxonomy.ByID(item.Children[j].ID)
		return a.Order < b.Order
	})
}

// computeTotals recomputes every node bottom-up: a node with children gets
// the sum of its children plus its own leaf accounts, per year and in
// aggregate. This pass alone establishes the tree invariant, regardless of
// the order the tree was built in.
func computeTotals(item *model.FinancialReportItem, years []int) {
	if len(item.Children) == 0 {
		return
	}
	for _, child := range item.Children {
		computeTotals(child, years)
	}

	total := decimal.Zero
	for _, child := range item.Children {
		total = total.Add(child.Amount)
	}
	for _, acc := range item.Accounts {
		total = total.Add(acc.Balance)
	}
	item.Amount = total

	yearly := make(map[int]decimal.Decimal, len(years))
	for _, year := range years {
		sum := decimal.Zero
		for _, child := range item.Children {
			sum = sum.Add(child.YearlyAmounts[year])
		}
		for _, acc := range item.Accounts {
			sum = sum.Add(acc.YearlyBalances[year])
		}
		if !sum.IsZero() {
			yearly[year] = sum
		}
	}
	item.YearlyAmounts = yearly
}
