package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/ledger"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/report"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/screen"
)

var yen = report.Yen

// print writes v as JSON when --json is set, otherwise calls table with an
// aligned writer.
func (a *app) print(v any, table func(tw *tabwriter.Writer)) error {
	if a.jsonOut {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}

// periodFlags binds --year, --month and optionally --day.
type periodFlags struct {
	year, month, day int
}

func (f *periodFlags) bind(cmd *cobra.Command, withDay bool) {
	cmd.Flags().IntVar(&f.year, "year", 0, "year")
	cmd.Flags().IntVar(&f.month, "month", 0, "month (requires --year)")
	if withDay {
		cmd.Flags().IntVar(&f.day, "day", 0, "day (requires --month)")
	}
}

func (f *periodFlags) period() (models.Period, error) {
	p := models.Period{Year: f.year, Month: f.month, Day: f.day}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// ledgerScreen loads the rent roll of the selected month together with a
// ledger. The selection defaults to the current month.
func ledgerScreen[L any](ctx context.Context, a *app, f *periodFlags, rows func(ctx context.Context, propertyID int64) ([]L, error)) (*screen.Screen[screen.Ledger[L]], int64, error) {
	pid, err := a.property()
	if err != nil {
		return nil, 0, err
	}
	p, err := f.period()
	if err != nil {
		return nil, 0, err
	}

	sc := screen.New(func(ctx context.Context, p models.Period) (screen.Ledger[L], error) {
		return screen.LoadLedger(ctx,
			func(ctx context.Context) ([]models.RentRollEntry, error) {
				return a.client.ListRentRoll(ctx, pid, p)
			},
			func(ctx context.Context) ([]L, error) {
				return rows(ctx, pid)
			},
		)
	}, ledger.Selection(p, a.now()))

	if err := sc.Load(ctx); err != nil {
		return nil, 0, fmt.Errorf("failed to load ledger: %w", err)
	}
	return sc, pid, nil
}

// merged applies merge to the screen's current data.
func merged[L, R any](sc *screen.Screen[screen.Ledger[L]], merge func([]models.RentRollEntry, []L, models.Period) []R) []R {
	data, _ := sc.Data()
	return merge(data.RentRoll, data.Rows, sc.Period())
}

func unitColumns(u ledger.Unit) string {
	return fmt.Sprintf("%d\t%s\t%s\t%s", u.RentRollID, u.Floor, u.RoomNumber, u.Contractor)
}

const unitHeader = "ID\t階\t部屋\t契約者"
