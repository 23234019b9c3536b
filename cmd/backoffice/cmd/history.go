package cmd

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/ledger"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/screen"
)

func newHistoryCmd(a *app) *cobra.Command {
	var f periodFlags

	load := func(ctx context.Context) (*screen.Screen[screen.Ledger[models.HistoryEntry]], int64, error) {
		sel, err := f.period()
		if err != nil {
			return nil, 0, err
		}
		sel = ledger.Selection(sel, a.now())
		return ledgerScreen(ctx, a, &f, func(ctx context.Context, pid int64) ([]models.HistoryEntry, error) {
			return a.client.RentIncomeHistory(ctx, pid, sel)
		})
	}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the six month rent income history",
		Long: `Show, for each unit of the selected month's rent roll, collected
income and differences of the six months ending at that month.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, _, err := load(cmd.Context())
			if err != nil {
				return err
			}
			return a.printHistory(merged(sc, ledger.MergeHistory))
		},
	}
	f.bind(cmd, false)

	var unit int64
	var difference float64
	set := &cobra.Command{
		Use:   "set",
		Short: "Set the difference of the current month for a unit",
		Long: `Set the difference of one history cell. Only the current month
can be edited; the cell is selected with --year/--month and defaults to it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, pid, err := load(cmd.Context())
			if err != nil {
				return err
			}
			cell := sc.Period()
			editor := &screen.HistoryEditor{
				Submit: func(ctx context.Context, u *models.HistoryUpdate) (*models.HistoryEntry, error) {
					return a.client.UpdateRentIncomeHistory(ctx, pid, u)
				},
				Now: a.now,
			}

			data, _ := sc.Data()
			rows, applied, err := editor.SetDifference(cmd.Context(), data.Rows, unit, cell.Year, cell.Month, difference)
			if err != nil {
				sc.Fail(err)
				return fmt.Errorf("failed to update history: %w", err)
			}
			if !applied {
				fmt.Fprintf(a.out, "%s is not editable; only the current month can be changed\n", cell)
				return nil
			}
			sc.Update(func(l screen.Ledger[models.HistoryEntry]) screen.Ledger[models.HistoryEntry] {
				l.Rows = rows
				return l
			})
			return a.printHistory(merged(sc, ledger.MergeHistory))
		},
	}
	f.bind(set, false)
	set.Flags().Int64Var(&unit, "unit", 0, "rent roll ID of the unit (required)")
	set.Flags().Float64Var(&difference, "difference", 0, "difference amount")
	_ = set.MarkFlagRequired("unit")
	cmd.AddCommand(set)

	return cmd
}

func (a *app) printHistory(rows []ledger.HistoryRow) error {
	return a.print(rows, func(tw *tabwriter.Writer) {
		header := []string{unitHeader, "過去差額"}
		if len(rows) > 0 {
			for _, m := range rows[0].Months {
				header = append(header, fmt.Sprintf("%d/%02d", m.Year, m.Month))
			}
		}
		header = append(header, "累計差額")
		fmt.Fprintln(tw, strings.Join(header, "\t"))

		for _, r := range rows {
			cols := []string{unitColumns(r.Unit), yen(r.PastDifferenceTotal)}
			for _, m := range r.Months {
				cols = append(cols, fmt.Sprintf("%s (%s)", yen(m.IncomeAmount.Float()), yen(m.DifferenceAmount.Float())))
			}
			cols = append(cols, yen(r.CumulativeDifference))
			fmt.Fprintln(tw, strings.Join(cols, "\t"))
		}
	})
}
