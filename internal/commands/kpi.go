package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bilanz-dev/bilanz/internal/kpi"
	"github.com/bilanz-dev/bilanz/internal/report"
)

func newKPICommand() *cobra.Command {
	var defsPath string
	var mappingPath string

	cmd := &cobra.Command{
		Use:   "kpi <file>...",
		Short: "Evaluate KPI definitions against the generated report",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKPI(cmd.OutOrStdout(), args, defsPath, mappingPath)
		},
	}

	cmd.Flags().StringVar(&defsPath, "defs", "", "KPI definitions (JSON, required)")
	_ = cmd.MarkFlagRequired("defs")
	cmd.Flags().StringVar(&mappingPath, "mapping", "", "account override mapping (YAML)")

	return cmd
}

func runKPI(w io.Writer, files []string, defsPath, mappingPath string) error {
	defs, err := kpi.LoadDefinitions(defsPath)
	if err != nil {
		return err
	}
	res, err := ingestFiles(files)
	if err != nil {
		return err
	}
	overrides, err := loadMapping(mappingPath)
	if err != nil {
		return err
	}

	data := report.Generate(res.Accounts, res.Bookings, overrides)

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "Kennzahl\t")
	for _, year := range data.Years {
		fmt.Fprintf(tw, "%d\t", year)
	}
	fmt.Fprintln(tw)

	for _, def := range defs {
		fmt.Fprintf(tw, "%s\t", def.Label)
		for _, year := range data.Years {
			v, ok := kpi.Evaluate(data, def.Formula, year)
			fmt.Fprintf(tw, "%s\t", kpi.FormatValue(v, ok, def.Format))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
