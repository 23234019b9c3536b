package cmd

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/ledger"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/screen"
)

func newDepositsCmd(a *app) *cobra.Command {
	var f periodFlags
	cmd := &cobra.Command{
		Use:   "deposits",
		Short: "Show the deposit ledger of a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, _, err := ledgerScreen(cmd.Context(), a, &f, a.client.ListDeposits)
			if err != nil {
				return err
			}
			return a.printDeposits(merged(sc, ledger.MergeDeposits))
		},
	}
	f.bind(cmd, false)

	var unit int64
	var deposit, suubiki, guarantee, reikin float64
	bindAmounts := func(c *cobra.Command) {
		c.Flags().Int64Var(&unit, "unit", 0, "rent roll ID of the unit (required)")
		c.Flags().Float64Var(&deposit, "deposit", 0, "deposit (敷金)")
		c.Flags().Float64Var(&suubiki, "suubiki", 0, "non-refundable part (敷引)")
		c.Flags().Float64Var(&guarantee, "guarantee", 0, "guarantee money (保証金)")
		c.Flags().Float64Var(&reikin, "reikin", 0, "key money (礼金)")
	}
	request := func() *models.DepositRequest {
		return &models.DepositRequest{
			RentRollID:     models.RefID(unit),
			Deposit:        models.Amount(deposit),
			Suubiki:        models.Amount(suubiki),
			GuaranteeMoney: models.Amount(guarantee),
			Reikin:         models.Amount(reikin),
		}
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Record a deposit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := a.property()
			if err != nil {
				return err
			}
			created, err := a.client.CreateDeposit(cmd.Context(), pid, request())
			if err != nil {
				return fmt.Errorf("failed to create deposit: %w", err)
			}
			return a.print(created, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Created deposit %d\t%s\t%s\n", created.ID, created.RentRoll.RoomNumber, yen(created.Total()))
			})
		},
	}
	bindAmounts(add)

	update := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a deposit and show the refreshed ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid deposit ID: %s", args[0])
			}
			sc, pid, err := ledgerScreen(cmd.Context(), a, &f, a.client.ListDeposits)
			if err != nil {
				return err
			}
			if err := editLedger(cmd.Context(), sc, id, func(ctx context.Context) (*models.Deposit, error) {
				return a.client.UpdateDeposit(ctx, pid, id, request())
			}, func(d *models.Deposit) int64 { return d.ID }); err != nil {
				return fmt.Errorf("failed to update deposit: %w", err)
			}
			return a.printDeposits(merged(sc, ledger.MergeDeposits))
		},
	}
	f.bind(update, false)
	bindAmounts(update)

	cmd.AddCommand(add, update, &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a deposit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.deleteByID(cmd.Context(), args[0], "deposit", a.client.DeleteDeposit)
		},
	})
	return cmd
}

func (a *app) printDeposits(rows []ledger.DepositRow) error {
	return a.print(rows, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, unitHeader+"\t敷金\t敷引\t保証金\t礼金\t合計\t件数")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n", unitColumns(r.Unit),
				yen(r.Deposit), yen(r.Suubiki), yen(r.GuaranteeMoney), yen(r.Reikin), yen(r.Total), r.Matches)
		}
	})
}

// editLedger submits an edit and replaces the matching ledger row in the
// screen with the server's response.
func editLedger[L any](ctx context.Context, sc *screen.Screen[screen.Ledger[L]], id int64, submit func(context.Context) (*L, error), idOf func(*L) int64) error {
	updated, err := submit(ctx)
	if err != nil {
		sc.Fail(err)
		return err
	}
	sc.Update(func(l screen.Ledger[L]) screen.Ledger[L] {
		l.Rows, _ = screen.ReplaceByID(l.Rows, id, *updated, idOf)
		return l
	})
	return nil
}

func (a *app) deleteByID(ctx context.Context, arg, what string, del func(ctx context.Context, propertyID, id int64) error) error {
	pid, err := a.property()
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s ID: %s", what, arg)
	}
	if err := del(ctx, pid, id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", what, err)
	}
	fmt.Fprintf(a.out, "Deleted %s %d\n", what, id)
	return nil
}
