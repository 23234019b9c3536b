// Package ledger joins per-unit ledgers onto the rent roll of one period.
package ledger

import (
	"time"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// Unregistered is shown in place of unit fields when a payment references a
// unit that is not on the selected rent roll.
const Unregistered = "未登録"

// Unit carries the descriptive rent-roll fields every merged row shows.
type Unit struct {
	RentRollID   int64  `json:"rentRollId"`
	Floor        string `json:"floor"`
	RoomNumber   string `json:"roomNumber"`
	Contractor   string `json:"contractor"`
	ContractDate string `json:"contractDate"`
}

func unitOf(e *models.RentRollEntry) Unit {
	return Unit{
		RentRollID:   e.ID,
		Floor:        e.Floor,
		RoomNumber:   e.RoomNumber,
		Contractor:   e.Contractor,
		ContractDate: e.ContractDate,
	}
}

// Selection returns p, defaulting to the calendar month containing now
// when p has no month.
func Selection(p models.Period, now time.Time) models.Period {
	if p.Year == 0 || p.Month == 0 {
		return models.CurrentMonth(now)
	}
	return models.Period{Year: p.Year, Month: p.Month}
}

// FilterPeriod keeps the rent-roll entries whose createdAt falls in the
// year and month of p.
func FilterPeriod(entries []models.RentRollEntry, p models.Period) []models.RentRollEntry {
	out := make([]models.RentRollEntry, 0, len(entries))
	for _, e := range entries {
		if e.InPeriod(p.Year, p.Month) {
			out = append(out, e)
		}
	}
	return out
}

// Merge produces one row per rent-roll entry in p, in rent-roll order. For
// each entry the first ledger row whose key equals the entry's ID is passed
// to build together with the number of ledger rows that referenced the
// unit; unmatched entries get a nil row. Ledger rows pointing at units
// outside the filtered rent roll are dropped.
func Merge[L, R any](entries []models.RentRollEntry, p models.Period, rows []L, key func(*L) int64, build func(*models.RentRollEntry, *L, int) R) []R {
	filtered := FilterPeriod(entries, p)

	first := make(map[int64]int, len(rows))
	counts := make(map[int64]int, len(rows))
	for i := range rows {
		k := key(&rows[i])
		if _, ok := first[k]; !ok {
			first[k] = i
		}
		counts[k]++
	}

	out := make([]R, 0, len(filtered))
	for i := range filtered {
		e := &filtered[i]
		var match *L
		if idx, ok := first[e.ID]; ok {
			match = &rows[idx]
		}
		out = append(out, build(e, match, counts[e.ID]))
	}
	return out
}
