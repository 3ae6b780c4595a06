package kpi

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.German)

// FormatValue renders an evaluated KPI in German number conventions.
// Undefined results render as a dash. Percent values are expected to carry
// the ×100 scaling already (a ratio formula ends in *100 by the author's
// intent), so only the sign is appended.
func FormatValue(v decimal.Decimal, ok bool, format Format) string {
	if !ok {
		return "-"
	}
	f := v.InexactFloat64()
	switch format {
	case FormatCurrency:
		return printer.Sprintf("%v €", number.Decimal(f, number.Scale(2)))
	case FormatPercent:
		return printer.Sprintf("%v %%", number.Decimal(f, number.Scale(1)))
	default:
		return printer.Sprintf("%v", number.Decimal(f, number.Scale(2)))
	}
}
