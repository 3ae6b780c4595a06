package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bilanz-dev/bilanz/internal/kpi"
	"github.com/bilanz-dev/bilanz/internal/model"
	"github.com/bilanz-dev/bilanz/internal/report"
)

func newReportCommand() *cobra.Command {
	var mappingPath string
	var details bool

	cmd := &cobra.Command{
		Use:   "report <file>...",
		Short: "Generate the balance sheet and profit-and-loss statement",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.OutOrStdout(), args, mappingPath, details)
		},
	}

	cmd.Flags().StringVar(&mappingPath, "mapping", "", "account override mapping (YAML)")
	cmd.Flags().BoolVar(&details, "details", false, "list the accounts attached to each line")

	return cmd
}

func runReport(w io.Writer, files []string, mappingPath string, details bool) error {
	res, err := ingestFiles(files)
	if err != nil {
		return err
	}
	overrides, err := loadMapping(mappingPath)
	if err != nil {
		return err
	}

	data := report.Generate(res.Accounts, res.Bookings, overrides)

	printTree(w, "AKTIVA", data.Assets, data.Years, details)
	printTree(w, "PASSIVA", data.Liabilities, data.Years, details)
	printTree(w, "GEWINN- UND VERLUSTRECHNUNG", data.ProfitAndLoss, data.Years, details)

	fmt.Fprintf(w, "\nJahresergebnis: %s\n", kpi.FormatValue(data.Profit, true, kpi.FormatCurrency))

	if len(data.Unassigned) > 0 {
		logrus.WithField("count", len(data.Unassigned)).Warn("nicht zugeordnete Konten")
		printUnassigned(w, data.Unassigned)
	}

	if data.Check.Balanced {
		fmt.Fprintf(w, "\n%s\n", color.GreenString("Bilanz ausgeglichen"))
	} else {
		fmt.Fprintf(w, "\n%s\n", color.RedString("Bilanzdifferenz: %s",
			kpi.FormatValue(data.Check.Diff, true, kpi.FormatCurrency)))
	}
	return nil
}

// printTree renders one statement root as an indented table with a column
// per fiscal year.
func printTree(w io.Writer, title string, root *model.FinancialReportItem, years []int, details bool) {
	fmt.Fprintf(w, "\n%s\n", title)

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\t")
	for _, year := range years {
		fmt.Fprintf(tw, "%d\t", year)
	}
	fmt.Fprintln(tw)

	for _, child := range root.Children {
		printItem(tw, child, years, 0, details)
	}
	fmt.Fprintf(tw, "Summe\t")
	for _, year := range years {
		fmt.Fprintf(tw, "%s\t", kpi.FormatValue(root.AmountFor(year), true, kpi.FormatNumber))
	}
	fmt.Fprintln(tw)
	tw.Flush()
}

func printItem(tw io.Writer, item *model.FinancialReportItem, years []int, depth int, details bool) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(tw, "%s%s\t", indent, item.Label)
	for _, year := range years {
		fmt.Fprintf(tw, "%s\t", kpi.FormatValue(item.AmountFor(year), true, kpi.FormatNumber))
	}
	fmt.Fprintln(tw)

	if details {
		for _, acc := range item.Accounts {
			fmt.Fprintf(tw, "%s  %s %s\t", indent, acc.Number, acc.Name)
			for _, year := range years {
				fmt.Fprintf(tw, "%s\t", kpi.FormatValue(acc.YearlyBalances[year], true, kpi.FormatNumber))
			}
			fmt.Fprintln(tw)
		}
	}
	for _, child := range item.Children {
		printItem(tw, child, years, depth+1, details)
	}
}

func printUnassigned(w io.Writer, unassigned []*model.AccountBalance) {
	fmt.Fprintf(w, "\nNicht zugeordnete Konten (%d):\n", len(unassigned))
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Nr.\tName\tSaldo")
	for _, acc := range unassigned {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", acc.Number, acc.Name,
			kpi.FormatValue(acc.Balance, true, kpi.FormatCurrency))
	}
	tw.Flush()
}
