package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

var march = models.Period{Year: 2025, Month: 3}

func rentRoll() []models.RentRollEntry {
	return []models.RentRollEntry{
		{ID: 1, RoomNumber: "101", Contractor: "A", Rent: 100000, MaintenanceFee: 5000, CreatedAt: "2025/03/01"},
		{ID: 2, RoomNumber: "102", Contractor: "B", Rent: 80000, MaintenanceFee: 4000, CreatedAt: "2025/03/01"},
		{ID: 3, RoomNumber: "101", Contractor: "A", Rent: 100000, CreatedAt: "2025/02/01"},
	}
}

func TestFilterPeriod(t *testing.T) {
	got := FilterPeriod(rentRoll(), march)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)

	assert.Empty(t, FilterPeriod(rentRoll(), models.Period{Year: 2024, Month: 3}))
}

func TestSelectionDefaultsToCurrentMonth(t *testing.T) {
	now := time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, models.Period{Year: 2025, Month: 7}, Selection(models.Period{}, now))
	assert.Equal(t, march, Selection(models.Period{Year: 2025, Month: 3, Day: 9}, now))
}

func TestMergeDeposits(t *testing.T) {
	deposits := []models.Deposit{
		{ID: 10, RentRoll: models.RentRollEntry{ID: 1}, Deposit: 200000, Reikin: 100000},
		{ID: 11, RentRoll: models.RentRollEntry{ID: 1}, Deposit: 1},
		{ID: 12, RentRoll: models.RentRollEntry{ID: 3}, Deposit: 50000},
		{ID: 13, RentRoll: models.RentRollEntry{ID: 99}, Deposit: 50000},
	}

	rows := MergeDeposits(rentRoll(), deposits, march)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(10), rows[0].DepositID)
	assert.Equal(t, 300000.0, rows[0].Total)
	assert.Equal(t, 2, rows[0].Matches)

	assert.Equal(t, "102", rows[1].RoomNumber)
	assert.Zero(t, rows[1].DepositID)
	assert.Zero(t, rows[1].Total)
	assert.Zero(t, rows[1].Matches)
}

func TestMergeRowCountIndependentOfLedgerSize(t *testing.T) {
	for _, n := range []int{0, 1, 5, 50} {
		expenses := make([]models.UtilityExpense, n)
		for i := range expenses {
			expenses[i] = models.UtilityExpense{ID: int64(i + 1), RentRoll: models.RentRollEntry{ID: int64(i%4 + 1)}}
		}
		assert.Len(t, MergeUtilities(rentRoll(), expenses, march), 2, "ledger size %d", n)
	}
}

func TestMergeUtilities(t *testing.T) {
	rows := MergeUtilities(rentRoll(), []models.UtilityExpense{
		{ID: 5, RentRoll: models.RentRollEntry{ID: 2}, Electricity: 10000, Water: 5000, Gas: 3000},
	}, march)
	require.Len(t, rows, 2)
	assert.Zero(t, rows[0].Total)
	assert.Equal(t, 18000.0, rows[1].Total)
	assert.Equal(t, int64(5), rows[1].UtilityID)
}

func TestMergeWaterFees(t *testing.T) {
	rows := MergeWaterFees(rentRoll(), []models.WaterFeeReading{
		{ID: 1, RentRollID: 1, PreviousReading: 0, CurrentReading: 15},
	}, march)
	require.Len(t, rows, 2)
	assert.Equal(t, 15.0, rows[0].Usage)
	assert.Equal(t, 18000.0, rows[0].WaterBill)
	assert.Zero(t, rows[1].WaterBill)
}

func TestMergeRentIncome(t *testing.T) {
	rows := MergeRentIncome(rentRoll(), []models.MonthlyRentIncome{
		{ID: 7, RentRollID: 1, Year: 2025, Month: 3, ContractorPaymentAmount: 90000, SubstitutePaymentAmount: 10000},
	}, march)
	require.Len(t, rows, 2)

	assert.Equal(t, 100000.0, rows[0].TotalIncome)
	assert.Equal(t, 5000.0, rows[0].UtilityFee)
	assert.Equal(t, 5000.0, rows[0].Difference)

	// Nothing collected: the whole amount is outstanding.
	assert.Equal(t, 84000.0, rows[1].Difference)
}

func TestMergeHistory(t *testing.T) {
	history := []models.HistoryEntry{{
		RentRollID:           2,
		PastDifferenceTotal:  -1000,
		Months:               []models.HistoryMonth{{Year: 2025, Month: 3, DifferenceAmount: 500}},
		CumulativeDifference: -500,
	}}
	rows := MergeHistory(rentRoll(), history, march)
	require.Len(t, rows, 2)

	require.Len(t, rows[0].Months, models.HistoryWindow)
	assert.Equal(t, 10, rows[0].Months[0].Month)
	assert.Zero(t, rows[0].CumulativeDifference)

	assert.Equal(t, -500.0, rows[1].CumulativeDifference)
}

func TestEnrichUncollected(t *testing.T) {
	payments := []models.UncollectedAdvancePayment{
		{ID: 1, RentRollID: 2, Details: "rent"},
		{ID: 2, RentRollID: 3, Details: "last month's unit"},
		{ID: 3, RentRollID: 99, Details: "removed unit"},
	}
	rows := EnrichUncollected(rentRoll(), payments, march)
	require.Len(t, rows, 3)

	assert.True(t, rows[0].Registered)
	assert.Equal(t, "102", rows[0].RoomNumber)
	assert.Equal(t, Unregistered, rows[1].RoomNumber)
	assert.Equal(t, Unregistered, rows[2].Contractor)
	assert.Equal(t, "removed unit", rows[2].Details)
}
