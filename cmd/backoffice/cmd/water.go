package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/ledger"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

func newWaterCmd(a *app) *cobra.Command {
	var f periodFlags
	cmd := &cobra.Command{
		Use:   "water",
		Short: "Show the water meter ledger of a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, _, err := ledgerScreen(cmd.Context(), a, &f, a.client.ListWaterFees)
			if err != nil {
				return err
			}
			rows := merged(sc, ledger.MergeWaterFees)
			return a.print(rows, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, unitHeader+"\t前回指針\t今回指針\t使用量\t水道料金\t件数")
				for _, r := range rows {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n", unitColumns(r.Unit),
						yen(r.PreviousReading), yen(r.CurrentReading), yen(r.Usage), yen(r.WaterBill), r.Matches)
				}
			})
		},
	}
	f.bind(cmd, false)

	var unit int64
	var previous, current float64
	var date string
	add := &cobra.Command{
		Use:   "add",
		Short: "Record a meter reading",
		Long: `Record a meter reading. Without --previous the unit's last
recorded reading is carried forward.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			req := &models.CreateWaterFeeRequest{
				RentRollID:     models.RefID(unit),
				CurrentReading: models.Amount(current),
				CreatedAt:      date,
			}
			if cmd.Flags().Changed("previous") {
				prev := models.Amount(previous)
				req.PreviousReading = &prev
			}

			reading, err := a.client.CreateWaterFee(cmd.Context(), pid, req)
			if err != nil {
				return fmt.Errorf("failed to create water fee: %w", err)
			}
			return a.print(reading, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Recorded reading %d\tusage %s\tbill %s\n", reading.ID, yen(reading.Usage()), yen(reading.Bill()))
			})
		},
	}
	add.Flags().Int64Var(&unit, "unit", 0, "rent roll ID of the unit (required)")
	add.Flags().Float64Var(&previous, "previous", 0, "previous reading (default last recorded)")
	add.Flags().Float64Var(&current, "current", 0, "current reading")
	add.Flags().StringVar(&date, "date", "", "reading date (default today)")
	cmd.AddCommand(add)

	return cmd
}
