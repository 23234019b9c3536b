package models

// HistoryWindow is the number of months shown by the rent income history,
// the selected month included.
const HistoryWindow = 6

// HistoryMonth is one cell of the rent income history window.
type HistoryMonth struct {
	Year             int    `json:"year"`
	Month            int    `json:"month"`
	IncomeAmount     Amount `json:"incomeAmount"`
	DifferenceAmount Amount `json:"differenceAmount"`
}

// HistoryEntry is the six month rent income history of one unit.
type HistoryEntry struct {
	RentRollID           int64          `json:"rentRollId"`
	PastDifferenceTotal  Amount         `json:"pastDifferenceTotal"`
	Months               []HistoryMonth `json:"months"`
	CumulativeDifference Amount         `json:"cumulativeDifference"`
}

// Month returns the cell for year/month, or nil when it is outside the window.
func (h *HistoryEntry) Month(year, month int) *HistoryMonth {
	for i := range h.Months {
		if h.Months[i].Year == year && h.Months[i].Month == month {
			return &h.Months[i]
		}
	}
	return nil
}

// Recalculate refreshes CumulativeDifference from the past total and the window.
func (h *HistoryEntry) Recalculate() {
	total := h.PastDifferenceTotal
	for _, m := range h.Months {
		total += m.DifferenceAmount
	}
	h.CumulativeDifference = total
}

// HistoryUpdate upserts one cell of the history. It is only accepted for the
// current calendar month. A nil IncomeAmount keeps the cell's income.
type HistoryUpdate struct {
	RentRollID       int64    `json:"rentRollId"`
	Year             int      `json:"year"`
	Month            int      `json:"month"`
	IncomeAmount     *float64 `json:"incomeAmount,omitempty"`
	DifferenceAmount float64  `json:"differenceAmount"`
}

// Validate checks required fields.
func (u *HistoryUpdate) Validate() error {
	if u.RentRollID <= 0 {
		return missingField("rentRollId")
	}
	if u.Year <= 0 {
		return missingField("year")
	}
	if u.Month < 1 || u.Month > 12 {
		return invalidField("month", u.Month)
	}
	return nil
}

// WindowMonths returns the HistoryWindow (year, month) pairs ending at
// year/month, oldest first.
func WindowMonths(year, month int) []Period {
	out := make([]Period, HistoryWindow)
	y, m := year, month
	for i := HistoryWindow - 1; i >= 0; i-- {
		out[i] = Period{Year: y, Month: m}
		m--
		if m == 0 {
			m = 12
			y--
		}
	}
	return out
}
