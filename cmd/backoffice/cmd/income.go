package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/ledger"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

func newIncomeCmd(a *app) *cobra.Command {
	var f periodFlags
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Show collected rent against the rent roll of a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := f.period()
			if err != nil {
				return err
			}
			sel = ledger.Selection(sel, a.now())
			sc, _, err := ledgerScreen(cmd.Context(), a, &f, func(ctx context.Context, pid int64) ([]models.MonthlyRentIncome, error) {
				return a.client.ListMonthlyRentIncome(ctx, pid, sel)
			})
			if err != nil {
				return err
			}
			rows := merged(sc, ledger.MergeRentIncome)
			return a.print(rows, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, unitHeader+"\t入金日\t入金額\t代位弁済日\t代位弁済額\t弁済者\t入金合計\t賃料\t共益費\t差額\t件数")
				for _, r := range rows {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n", unitColumns(r.Unit),
						r.ContractorPaymentDate, yen(r.ContractorPaymentAmount),
						r.SubstitutePaymentDate, yen(r.SubstitutePaymentAmount), r.SubstitutePayer,
						yen(r.TotalIncome), yen(r.RentFee), yen(r.UtilityFee), yen(r.Difference), r.Matches)
				}
			})
		},
	}
	f.bind(cmd, false)

	var req models.CreateMonthlyRentIncomeRequest
	var unit int64
	var contractorAmount, substituteAmount float64
	add := &cobra.Command{
		Use:   "add",
		Short: "Record collected rent",
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
			req.ContractorPaymentAmount = models.Amount(contractorAmount)
			req.SubstitutePaymentAmount = models.Amount(substituteAmount)

			income, err := a.client.CreateMonthlyRentIncome(cmd.Context(), pid, &req)
			if err != nil {
				return fmt.Errorf("failed to create monthly rent income: %w", err)
			}
			return a.print(income, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Recorded %d/%02d\tunit %d\t%s\n", income.Year, income.Month, income.RentRollID, yen(income.TotalIncome()))
			})
		},
	}
	add.Flags().Int64Var(&unit, "unit", 0, "rent roll ID of the unit (required)")
	add.Flags().IntVar(&req.Year, "year", 0, "year (default current)")
	add.Flags().IntVar(&req.Month, "month", 0, "month (default current)")
	add.Flags().StringVar(&req.ContractorPaymentDate, "paid-on", "", "contractor payment date")
	add.Flags().Float64Var(&contractorAmount, "amount", 0, "contractor payment amount")
	add.Flags().StringVar(&req.SubstitutePaymentDate, "substitute-paid-on", "", "substitute payment date")
	add.Flags().Float64Var(&substituteAmount, "substitute-amount", 0, "substitute payment amount")
	add.Flags().StringVar(&req.SubstitutePayer, "substitute-payer", "", "substitute payer")
	cmd.AddCommand(add)

	return cmd
}
