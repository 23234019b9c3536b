package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

func newTransactionsCmd(a *app) *cobra.Command {
	var f periodFlags
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Show the income/expense ledger",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			p, err := f.period()
			if err != nil {
				return err
			}

			entries, err := a.client.ListIncomeExpenses(cmd.Context(), pid, p)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}
			return a.print(entries, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ID\t日付\t区分\t取引先\tコード\t科目\t金額\t消費税\t合計\t摘要")
				for _, e := range entries {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
						e.ID, e.CreatedAt, e.Type, e.Partner, e.Code, e.Subject,
						yen(e.Amount.Float()), yen(e.Tax.Float()), yen(e.Total.Float()), e.Details)
				}
			})
		},
	}
	f.bind(cmd, true)

	var req models.CreateIncomeExpenseRequest
	var amount, tax, total float64
	add := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Long: `Record a transaction. Codes: 100 rent, 140 other income,
200 management fee, 210 utilities, 220 repairs, 240 tenant recruiting,
270 other expenses. --total defaults to amount + tax.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			req.Type = models.EntryType(strings.ToUpper(string(req.Type)))
			if req.CreatedAt == "" {
				req.CreatedAt = a.now().Format("2006-01-02")
			}
			req.Amount = models.Amount(amount)
			req.Tax = models.Amount(tax)
			if cmd.Flags().Changed("total") {
				t := models.Amount(total)
				req.Total = &t
			}

			entry, err := a.client.CreateIncomeExpense(cmd.Context(), pid, &req)
			if err != nil {
				return fmt.Errorf("failed to create transaction: %w", err)
			}
			return a.print(entry, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Recorded transaction %d\t%s\t%s\t%s\n", entry.ID, entry.CreatedAt, entry.Code, yen(entry.Total.Float()))
			})
		},
	}
	add.Flags().StringVar(&req.CreatedAt, "date", "", "transaction date (default today)")
	add.Flags().StringVar((*string)(&req.Type), "type", "", "INCOME or EXPENSE (required)")
	add.Flags().StringVar(&req.Code, "code", "", "transaction code (required)")
	add.Flags().StringVar(&req.Partner, "partner", "", "partner")
	add.Flags().StringVar(&req.Subject, "subject", "", "subject")
	add.Flags().StringVar(&req.Details, "details", "", "details")
	add.Flags().Float64Var(&amount, "amount", 0, "amount")
	add.Flags().Float64Var(&tax, "tax", 0, "tax")
	add.Flags().Float64Var(&total, "total", 0, "total (default amount + tax)")

	var dates periodFlags
	datesCmd := &cobra.Command{
		Use:   "dates",
		Short: "List the years, months of --year, or days of --year/--month with transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			p, err := dates.period()
			if err != nil {
				return err
			}

			var values []int
			switch {
			case p.Month != 0:
				values, err = a.client.IncomeExpenseDays(cmd.Context(), pid, p.Year, p.Month)
			case p.Year != 0:
				values, err = a.client.IncomeExpenseMonths(cmd.Context(), pid, p.Year)
			default:
				values, err = a.client.IncomeExpenseYears(cmd.Context(), pid)
			}
			if err != nil {
				return fmt.Errorf("failed to list dates: %w", err)
			}
			return a.printInts(values)
		},
	}
	dates.bind(datesCmd, false)

	var sum periodFlags
	var field string
	sumCmd := &cobra.Command{
		Use:   "sum CODE",
		Short: "Sum one column of the transactions with a code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			p, err := sum.period()
			if err != nil {
				return err
			}
			sf := models.SumField(field)
			if !sf.Valid() {
				return fmt.Errorf("invalid field %q: want amount, tax or total", field)
			}

			total, err := a.client.SumByCode(cmd.Context(), pid, args[0], sf, p)
			if err != nil {
				return fmt.Errorf("failed to sum transactions: %w", err)
			}
			return a.print(total, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", args[0], field, yen(total))
			})
		},
	}
	sum.bind(sumCmd, true)
	sumCmd.Flags().StringVar(&field, "field", string(models.SumFieldTotal), "amount, tax or total")

	cmd.AddCommand(add, datesCmd, sumCmd)
	return cmd
}

func (a *app) printInts(values []int) error {
	return a.print(values, func(tw *tabwriter.Writer) {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = strconv.Itoa(v)
		}
		fmt.Fprintln(tw, strings.Join(parts, " "))
	})
}
