package screen

import (
	"context"
	"time"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// ReplaceByID returns a copy of rows with the element whose id equals id
// replaced by updated, and whether such an element existed. Other elements
// are left untouched.
func ReplaceByID[E any](rows []E, id int64, updated E, idOf func(*E) int64) ([]E, bool) {
	out := make([]E, len(rows))
	copy(out, rows)
	for i := range out {
		if idOf(&out[i]) == id {
			out[i] = updated
			return out, true
		}
	}
	return out, false
}

// HistoryEditor applies edits to the rent income history. Only cells of
// the current calendar month are editable; other edits are no-ops.
type HistoryEditor struct {
	Submit func(ctx context.Context, u *models.HistoryUpdate) (*models.HistoryEntry, error)
	Now    func() time.Time
}

// Editable reports whether the year/month cell may be edited now.
func (h *HistoryEditor) Editable(year, month int) bool {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	return models.CurrentMonth(now()) == models.Period{Year: year, Month: month}
}

// SetDifference sets the difference of one cell. It returns the entries
// with the unit's entry replaced by the server's response, and whether the
// edit was applied. Edits outside the current month return entries
// unchanged without contacting the server.
func (h *HistoryEditor) SetDifference(ctx context.Context, entries []models.HistoryEntry, rentRollID int64, year, month int, difference float64) ([]models.HistoryEntry, bool, error) {
	if !h.Editable(year, month) {
		return entries, false, nil
	}

	u := &models.HistoryUpdate{
		RentRollID:       rentRollID,
		Year:             year,
		Month:            month,
		DifferenceAmount: difference,
	}
	for i := range entries {
		if entries[i].RentRollID != rentRollID {
			continue
		}
		if cell := entries[i].Month(year, month); cell != nil {
			income := cell.IncomeAmount.Float()
			u.IncomeAmount = &income
		}
		break
	}

	updated, err := h.Submit(ctx, u)
	if err != nil {
		return entries, false, err
	}

	out, found := ReplaceByID(entries, rentRollID, *updated, func(e *models.HistoryEntry) int64 { return e.RentRollID })
	if !found {
		out = append(out, *updated)
	}
	return out, true, nil
}
