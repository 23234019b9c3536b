package screen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// Ledger is the raw data of a merged ledger screen: the rent roll and the
// ledger rows, both unfiltered.
type Ledger[L any] struct {
	RentRoll []models.RentRollEntry
	Rows     []L
}

// LoadLedger fetches the rent roll and the ledger concurrently. A failure
// of either fails the load.
func LoadLedger[L any](ctx context.Context,
	rentRoll func(context.Context) ([]models.RentRollEntry, error),
	rows func(context.Context) ([]L, error),
) (Ledger[L], error) {
	var out Ledger[L]
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.RentRoll, err = rentRoll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.Rows, err = rows(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Ledger[L]{}, err
	}
	return out, nil
}
