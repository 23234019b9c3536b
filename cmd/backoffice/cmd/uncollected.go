package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/ledger"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

func newUncollectedCmd(a *app) *cobra.Command {
	var f periodFlags
	cmd := &cobra.Command{
		Use:   "uncollected",
		Short: "List uncollected and advance payments of a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := f.period()
			if err != nil {
				return err
			}
			sel = ledger.Selection(sel, a.now())
			sc, _, err := ledgerScreen(cmd.Context(), a, &f, func(ctx context.Context, pid int64) ([]models.UncollectedAdvancePayment, error) {
				return a.client.ListUncollected(ctx, pid, sel)
			})
			if err != nil {
				return err
			}
			rows := merged(sc, ledger.EnrichUncollected)
			return a.print(rows, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ID\t階\t部屋\t契約者\t内容\t保証会社\t前月差額\t敷金充当\t入居後入金\t回収不能\t備考")
				for _, r := range rows {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
						r.ID, r.Floor, r.RoomNumber, r.Contractor, r.Details, r.GuaranteeCompany,
						yen(r.PreDifference.Float()), yen(r.DepositAdjustment.Float()),
						yen(r.PostMoveInPayment.Float()), yen(r.Uncollectible.Float()), r.Notes)
				}
			})
		},
	}
	f.bind(cmd, false)

	var req models.CreateUncollectedRequest
	var unit int64
	var pre, deposit, post, uncollectible float64
	add := &cobra.Command{
		Use:   "add",
		Short: "Record an uncollected or advance payment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			if req.Year == 0 && req.Month == 0 {
				cur := models.CurrentMonth(a.now())
				req.Year, req.Month = cur.Year, cur.Month
			}
			req.RentRollID = models.RefID(unit)
			req.PreDifference = models.Amount(pre)
			req.DepositAdjustment = models.Amount(deposit)
			req.PostMoveInPayment = models.Amount(post)
			req.Uncollectible = models.Amount(uncollectible)

			payment, err := a.client.CreateUncollected(cmd.Context(), pid, &req)
			if err != nil {
				return fmt.Errorf("failed to create uncollected payment: %w", err)
			}
			return a.print(payment, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Recorded payment %d\t%d/%02d\t%s\n", payment.ID, payment.Year, payment.Month, payment.Details)
			})
		},
	}
	add.Flags().Int64Var(&unit, "unit", 0, "rent roll ID of the unit (required)")
	add.Flags().IntVar(&req.Year, "year", 0, "year (default current)")
	add.Flags().IntVar(&req.Month, "month", 0, "month (default current)")
	add.Flags().StringVar(&req.Details, "details", "", "details")
	add.Flags().StringVar(&req.GuaranteeCompany, "guarantee-company", "", "guarantee company")
	add.Flags().StringVar(&req.Notes, "notes", "", "notes")
	add.Flags().StringVar(&req.ContactInfo, "contact", "", "contact information")
	add.Flags().Float64Var(&pre, "pre-difference", 0, "difference before move-in")
	add.Flags().Float64Var(&deposit, "deposit-adjustment", 0, "deposit adjustment")
	add.Flags().Float64Var(&post, "post-move-in", 0, "payment after move-in")
	add.Flags().Float64Var(&uncollectible, "uncollectible", 0, "uncollectible amount")
	cmd.AddCommand(add)

	return cmd
}
