package cmd

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/ledger"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

func newUtilitiesCmd(a *app) *cobra.Command {
	var f periodFlags
	cmd := &cobra.Command{
		Use:   "utilities",
		Short: "Show the utility expense ledger of a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, _, err := ledgerScreen(cmd.Context(), a, &f, a.client.ListUtilityExpenses)
			if err != nil {
				return err
			}
			return a.printUtilities(merged(sc, ledger.MergeUtilities))
		},
	}
	f.bind(cmd, false)

	var unit int64
	var electricity, water, gas, other1, other2 float64
	var date string
	bindAmounts := func(c *cobra.Command) {
		c.Flags().Int64Var(&unit, "unit", 0, "rent roll ID of the unit (required)")
		c.Flags().Float64Var(&electricity, "electricity", 0, "electricity")
		c.Flags().Float64Var(&water, "water", 0, "water")
		c.Flags().Float64Var(&gas, "gas", 0, "gas")
		c.Flags().Float64Var(&other1, "other1", 0, "other 1")
		c.Flags().Float64Var(&other2, "other2", 0, "other 2")
		c.Flags().StringVar(&date, "date", "", "expense date (default today)")
	}
	request := func() *models.UtilityExpenseRequest {
		return &models.UtilityExpenseRequest{
			RentRollID:  models.RefID(unit),
			Electricity: models.Amount(electricity),
			Water:       models.Amount(water),
			Gas:         models.Amount(gas),
			Other1:      models.Amount(other1),
			Other2:      models.Amount(other2),
			CreatedAt:   date,
		}
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Record a utility expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			created, err := a.client.CreateUtilityExpense(cmd.Context(), pid, request())
			if err != nil {
				return fmt.Errorf("failed to create utility expense: %w", err)
			}
			return a.print(created, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Created utility expense %d\t%s\t%s\n", created.ID, created.RentRoll.RoomNumber, yen(created.Total()))
			})
		},
	}
	bindAmounts(add)

	update := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a utility expense and show the refreshed ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid utility expense ID: %s", args[0])
			}
			sc, pid, err := ledgerScreen(cmd.Context(), a, &f, a.client.ListUtilityExpenses)
			if err != nil {
				return err
			}
			if err := editLedger(cmd.Context(), sc, id, func(ctx context.Context) (*models.UtilityExpense, error) {
				return a.client.UpdateUtilityExpense(ctx, pid, id, request())
			}, func(u *models.UtilityExpense) int64 { return u.ID }); err != nil {
				return fmt.Errorf("failed to update utility expense: %w", err)
			}
			return a.printUtilities(merged(sc, ledger.MergeUtilities))
		},
	}
	f.bind(update, false)
	bindAmounts(update)

	cmd.AddCommand(add, update, &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a utility expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.deleteByID(cmd.Context(), args[0], "utility expense", a.client.DeleteUtilityExpense)
		},
	})
	return cmd
}

func (a *app) printUtilities(rows []ledger.UtilityRow) error {
	return a.print(rows, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, unitHeader+"\t電気\t水道\tガス\tその他1\tその他2\t合計\t件数")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n", unitColumns(r.Unit),
				yen(r.Electricity), yen(r.Water), yen(r.Gas), yen(r.Other1), yen(r.Other2), yen(r.Total), r.Matches)
		}
	})
}
