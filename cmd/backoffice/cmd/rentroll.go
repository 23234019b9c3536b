package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

func newRentRollCmd(a *app) *cobra.Command {
	var f periodFlags
	cmd := &cobra.Command{
		Use:   "rentroll",
		Short: "Show the rent roll",
		Long: `Show the rent roll. Without --year/--month every unit of the
property is listed.

Example:
  backoffice --property 1 rentroll --year 2025 --month 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			p, err := f.period()
			if err != nil {
				return err
			}

			entries, err := a.client.ListRentRoll(cmd.Context(), pid, p)
			if err != nil {
				return fmt.Errorf("failed to list rent roll: %w", err)
			}
			return a.print(entries, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ID\t階\t部屋\t用途\t契約者\t契約日\t賃料\t共益費\t合計\t登録日")
				for _, e := range entries {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
						e.ID, e.Floor, e.RoomNumber, e.RoomUsage, e.Contractor, e.ContractDate,
						yen(e.Rent.Float()), yen(e.MaintenanceFee.Float()), yen(e.TotalRent.Float()), e.CreatedAt)
				}
			})
		},
	}
	f.bind(cmd, true)

	var req models.CreateRentRollRequest
	var rentalArea, rent, fee, tax, totalRent, parking float64
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a unit to the rent roll",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			req.RentalArea = models.Amount(rentalArea)
			req.Rent = models.Amount(rent)
			req.MaintenanceFee = models.Amount(fee)
			req.Tax = models.Amount(tax)
			req.TotalRent = models.Amount(totalRent)
			if totalRent == 0 {
				req.TotalRent = models.Amount(rent + fee + tax)
			}
			req.ParkingFee = models.Amount(parking)

			entry, err := a.client.CreateRentRoll(cmd.Context(), pid, &req)
			if err != nil {
				return fmt.Errorf("failed to create rent roll entry: %w", err)
			}
			return a.print(entry, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Created unit %d\t%s %s\t%s\n", entry.ID, entry.Floor, entry.RoomNumber, entry.CreatedAt)
			})
		},
	}
	add.Flags().StringVar(&req.Floor, "floor", "", "floor")
	add.Flags().StringVar(&req.RoomNumber, "room", "", "room number (required)")
	add.Flags().StringVar(&req.RoomUsage, "usage", "", "room usage")
	add.Flags().StringVar(&req.Contractor, "contractor", "", "contractor name")
	add.Flags().StringVar(&req.ContractDate, "contract-date", "", "contract date (yyyy/MM/dd)")
	add.Flags().StringVar(&req.CreatedAt, "date", "", "rent roll date (default today)")
	add.Flags().Float64Var(&rentalArea, "area", 0, "rental area")
	add.Flags().Float64Var(&rent, "rent", 0, "monthly rent")
	add.Flags().Float64Var(&fee, "maintenance-fee", 0, "maintenance fee")
	add.Flags().Float64Var(&tax, "tax", 0, "tax")
	add.Flags().Float64Var(&totalRent, "total-rent", 0, "total rent (default rent + fee + tax)")
	add.Flags().Float64Var(&parking, "parking-fee", 0, "parking fee")
	cmd.AddCommand(add)

	return cmd
}
