package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bilanz-dev/bilanz/internal/ledger"
)

func newJournalCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "journal <file>...",
		Short: "Print the merged booking journal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJournal(cmd.OutOrStdout(), args, out)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write the journal as CSV to a file instead")

	return cmd
}

func runJournal(w io.Writer, files []string, out string) error {
	res, err := ingestFiles(files)
	if err != nil {
		return err
	}

	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer f.Close()
		if err := ledger.WriteBookings(f, res.Bookings); err != nil {
			return fmt.Errorf("writing journal: %w", err)
		}
		fmt.Fprintf(w, "Journal mit %d Buchungen nach %s geschrieben\n", len(res.Bookings), out)
		return nil
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Nr.\tDatum\tKonto\tGegenkonto\tText\tSoll\tHaben")
	for i, b := range res.Bookings {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, b.Date, b.Account, b.ContraAccount, b.Text,
			b.Debit.StringFixed(2), b.Credit.StringFixed(2))
	}
	return tw.Flush()
}
