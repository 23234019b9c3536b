package ledger

import "github.com/shunichi-ikebuchi/property-backoffice/pkg/models"

// DepositRow is one line of the deposit screen.
type DepositRow struct {
	Unit
	DepositID      int64   `json:"depositId,omitempty"`
	Deposit        float64 `json:"deposit"`
	Suubiki        float64 `json:"suubiki"`
	GuaranteeMoney float64 `json:"guaranteeMoney"`
	Reikin         float64 `json:"reikin"`
	Total          float64 `json:"total"`
	Matches        int     `json:"matches"`
}

// MergeDeposits joins deposits onto the rent roll of p.
func MergeDeposits(entries []models.RentRollEntry, deposits []models.Deposit, p models.Period) []DepositRow {
	return Merge(entries, p, deposits,
		func(d *models.Deposit) int64 { return d.RentRoll.ID },
		func(e *models.RentRollEntry, d *models.Deposit, n int) DepositRow {
			row := DepositRow{Unit: unitOf(e), Matches: n}
			if d != nil {
				row.DepositID = d.ID
				row.Deposit = d.Deposit.Float()
				row.Suubiki = d.Suubiki.Float()
				row.GuaranteeMoney = d.GuaranteeMoney.Float()
				row.Reikin = d.Reikin.Float()
				row.Total = d.Total()
			}
			return row
		})
}

// UtilityRow is one line of the utility expense screen.
type UtilityRow struct {
	Unit
	UtilityID   int64   `json:"utilityId,omitempty"`
	Electricity float64 `json:"electricity"`
	Water       float64 `json:"water"`
	Gas         float64 `json:"gas"`
	Other1      float64 `json:"other1"`
	Other2      float64 `json:"other2"`
	Total       float64 `json:"total"`
	Matches     int     `json:"matches"`
}

// MergeUtilities joins utility expenses onto the rent roll of p.
func MergeUtilities(entries []models.RentRollEntry, expenses []models.UtilityExpense, p models.Period) []UtilityRow {
	return Merge(entries, p, expenses,
		func(u *models.UtilityExpense) int64 { return u.RentRoll.ID },
		func(e *models.RentRollEntry, u *models.UtilityExpense, n int) UtilityRow {
			row := UtilityRow{Unit: unitOf(e), Matches: n}
			if u != nil {
				row.UtilityID = u.ID
				row.Electricity = u.Electricity.Float()
				row.Water = u.Water.Float()
				row.Gas = u.Gas.Float()
				row.Other1 = u.Other1.Float()
				row.Other2 = u.Other2.Float()
				row.Total = u.Total()
			}
			return row
		})
}

// WaterRow is one line of the water meter screen.
type WaterRow struct {
	Unit
	PreviousReading float64 `json:"previousReading"`
	CurrentReading  float64 `json:"currentReading"`
	Usage           float64 `json:"usage"`
	WaterBill       float64 `json:"waterBill"`
	Matches         int     `json:"matches"`
}

// MergeWaterFees joins meter readings onto the rent roll of p.
func MergeWaterFees(entries []models.RentRollEntry, readings []models.WaterFeeReading, p models.Period) []WaterRow {
	return Merge(entries, p, readings,
		func(w *models.WaterFeeReading) int64 { return w.RentRollID },
		func(e *models.RentRollEntry, w *models.WaterFeeReading, n int) WaterRow {
			row := WaterRow{Unit: unitOf(e), Matches: n}
			if w != nil {
				row.PreviousReading = w.PreviousReading.Float()
				row.CurrentReading = w.CurrentReading.Float()
				row.Usage = w.Usage()
				row.WaterBill = w.Bill()
			}
			return row
		})
}

// RentIncomeRow is one line of the monthly rent income screen.
type RentIncomeRow struct {
	Unit
	IncomeID                int64   `json:"incomeId,omitempty"`
	ContractorPaymentDate   string  `json:"contractorPaymentDate"`
	ContractorPaymentAmount float64 `json:"contractorPaymentAmount"`
	SubstitutePaymentDate   string  `json:"substitutePaymentDate"`
	SubstitutePaymentAmount float64 `json:"substitutePaymentAmount"`
	SubstitutePayer         string  `json:"substitutePayer"`
	TotalIncome             float64 `json:"totalIncome"`
	RentFee                 float64 `json:"rentFee"`
	UtilityFee              float64 `json:"utilityFee"`
	Difference              float64 `json:"difference"`
	Matches                 int     `json:"matches"`
}

// MergeRentIncome joins collections onto the rent roll of p. The amount due
// is rent plus the maintenance fee; Difference is what is still owed.
func MergeRentIncome(entries []models.RentRollEntry, incomes []models.MonthlyRentIncome, p models.Period) []RentIncomeRow {
	return Merge(entries, p, incomes,
		func(m *models.MonthlyRentIncome) int64 { return m.RentRollID },
		func(e *models.RentRollEntry, m *models.MonthlyRentIncome, n int) RentIncomeRow {
			row := RentIncomeRow{
				Unit:       unitOf(e),
				RentFee:    e.Rent.Float(),
				UtilityFee: e.MaintenanceFee.Float(),
				Matches:    n,
			}
			if m != nil {
				row.IncomeID = m.ID
				row.ContractorPaymentDate = m.ContractorPaymentDate
				row.ContractorPaymentAmount = m.ContractorPaymentAmount.Float()
				row.SubstitutePaymentDate = m.SubstitutePaymentDate
				row.SubstitutePaymentAmount = m.SubstitutePaymentAmount.Float()
				row.SubstitutePayer = m.SubstitutePayer
				row.TotalIncome = m.TotalIncome()
			}
			row.Difference = row.RentFee + row.UtilityFee - row.TotalIncome
			return row
		})
}

// HistoryRow is one line of the rent income history screen.
type HistoryRow struct {
	Unit
	PastDifferenceTotal  float64               `json:"pastDifferenceTotal"`
	Months               []models.HistoryMonth `json:"months"`
	CumulativeDifference float64               `json:"cumulativeDifference"`
	Matches              int                   `json:"matches"`
}

// MergeHistory joins history windows onto the rent roll of p. Unmatched
// units get an empty window for the six months ending at p.
func MergeHistory(entries []models.RentRollEntry, history []models.HistoryEntry, p models.Period) []HistoryRow {
	return Merge(entries, p, history,
		func(h *models.HistoryEntry) int64 { return h.RentRollID },
		func(e *models.RentRollEntry, h *models.HistoryEntry, n int) HistoryRow {
			row := HistoryRow{Unit: unitOf(e), Matches: n}
			if h == nil {
				for _, m := range models.WindowMonths(p.Year, p.Month) {
					row.Months = append(row.Months, models.HistoryMonth{Year: m.Year, Month: m.Month})
				}
				return row
			}
			row.PastDifferenceTotal = h.PastDifferenceTotal.Float()
			row.Months = append([]models.HistoryMonth(nil), h.Months...)
			row.CumulativeDifference = h.CumulativeDifference.Float()
			return row
		})
}

// UncollectedRow is one line of the uncollected/advance payment screen.
type UncollectedRow struct {
	models.UncollectedAdvancePayment
	Floor      string `json:"floor"`
	RoomNumber string `json:"roomNumber"`
	Contractor string `json:"contractor"`
	Registered bool   `json:"registered"`
}

// EnrichUncollected lists every payment, in order, with the unit fields of
// the rent roll of p or Unregistered when the unit is not on it.
func EnrichUncollected(entries []models.RentRollEntry, payments []models.UncollectedAdvancePayment, p models.Period) []UncollectedRow {
	units := make(map[int64]*models.RentRollEntry)
	filtered := FilterPeriod(entries, p)
	for i := range filtered {
		if _, ok := units[filtered[i].ID]; !ok {
			units[filtered[i].ID] = &filtered[i]
		}
	}

	out := make([]UncollectedRow, 0, len(payments))
	for _, pay := range payments {
		row := UncollectedRow{UncollectedAdvancePayment: pay}
		if e, ok := units[pay.RentRollID]; ok {
			row.Floor, row.RoomNumber, row.Contractor = e.Floor, e.RoomNumber, e.Contractor
			row.Registered = true
		} else {
			row.Floor, row.RoomNumber, row.Contractor = Unregistered, Unregistered, Unregistered
		}
		out = append(out, row)
	}
	return out
}
