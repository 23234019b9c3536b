package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Amount
	}{
		{"number", `1200`, 1200},
		{"fraction", `12.5`, 12.5},
		{"numeric string", `"3000"`, 3000},
		{"string with commas", `"1,016,157"`, 1016157},
		{"blank string", `""`, 0},
		{"spaces", `"  "`, 0},
		{"null", `null`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.input), &a))
			assert.Equal(t, tt.want, a)
		})
	}

	var a Amount
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &a))
}

func TestRefIDUnmarshal(t *testing.T) {
	var req DepositRequest
	require.NoError(t, json.Unmarshal([]byte(`{"rentRollId":"7","deposit":"100000"}`), &req))
	assert.Equal(t, RefID(7), req.RentRollID)
	assert.Equal(t, Amount(100000), req.Deposit)

	var id RefID
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &id))
}

func TestWaterFeeReading(t *testing.T) {
	w := WaterFeeReading{PreviousReading: 0, CurrentReading: 15}
	assert.Equal(t, 15.0, w.Usage())
	assert.Equal(t, 18000.0, w.Bill())
}

func TestUtilityExpenseTotal(t *testing.T) {
	u := UtilityExpense{Electricity: 10000, Water: 5000, Gas: 3000}
	assert.Equal(t, 18000.0, u.Total())
}

func TestDepositTotal(t *testing.T) {
	d := Deposit{Deposit: 100000, Suubiki: 20000, GuaranteeMoney: 5000, Reikin: 50000}
	assert.Equal(t, 175000.0, d.Total())
}

func TestParseDate(t *testing.T) {
	y, m, d, ok := ParseDate("2024/03/09")
	require.True(t, ok)
	assert.Equal(t, []int{2024, 3, 9}, []int{y, m, d})

	y, m, d, ok = ParseDate("2024-12-31T10:00:00Z")
	require.True(t, ok)
	assert.Equal(t, []int{2024, 12, 31}, []int{y, m, d})

	for _, bad := range []string{"", "2024/13/01", "2024/03", "yyyy/mm/dd"} {
		_, _, _, ok := ParseDate(bad)
		assert.False(t, ok, bad)
	}

	assert.Equal(t, "2024-03-09", NormalizeDate("2024/3/9", "-"))
	assert.Equal(t, "garbage", NormalizeDate("garbage", "/"))
}

func TestPeriod(t *testing.T) {
	assert.True(t, Period{}.Matches("anything"))
	assert.True(t, Period{Year: 2024}.Matches("2024/05/01"))
	assert.False(t, Period{Year: 2024, Month: 4}.Matches("2024/05/01"))
	assert.True(t, Period{Year: 2024, Month: 5, Day: 1}.Matches("2024-05-01"))
	assert.False(t, Period{Year: 2024}.Matches("not a date"))

	assert.Error(t, Period{Month: 3}.Validate())
	assert.Error(t, Period{Year: 2024, Day: 3}.Validate())
	assert.Error(t, Period{Year: 2024, Month: 13}.Validate())
	assert.NoError(t, Period{Year: 2024, Month: 3, Day: 3}.Validate())

	assert.Equal(t, "2024-03", Period{Year: 2024, Month: 3}.String())
	assert.Equal(t, "all", Period{}.String())
	assert.Equal(t, "month=3&year=2024", Period{Year: 2024, Month: 3}.Query().Encode())

	now := time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Period{Year: 2025, Month: 2}, CurrentMonth(now))
}

func TestWindowMonths(t *testing.T) {
	got := WindowMonths(2025, 2)
	require.Len(t, got, HistoryWindow)
	assert.Equal(t, Period{Year: 2024, Month: 9}, got[0])
	assert.Equal(t, Period{Year: 2025, Month: 2}, got[5])
}

func TestHistoryEntryRecalculate(t *testing.T) {
	h := HistoryEntry{
		PastDifferenceTotal: 1000,
		Months: []HistoryMonth{
			{Year: 2025, Month: 1, DifferenceAmount: 200},
			{Year: 2025, Month: 2, DifferenceAmount: -50},
		},
	}
	h.Recalculate()
	assert.Equal(t, Amount(1150), h.CumulativeDifference)
	require.NotNil(t, h.Month(2025, 2))
	assert.Nil(t, h.Month(2024, 2))
}

func TestValidate(t *testing.T) {
	t.Run("income expense", func(t *testing.T) {
		req := CreateIncomeExpenseRequest{CreatedAt: "2024-05-01", Type: EntryTypeIncome, Code: "100", Amount: 1000, Tax: 100}
		require.NoError(t, req.Validate())
		assert.Equal(t, Amount(1100), req.ResolvedTotal())

		req.Type = "TRANSFER"
		err := req.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))

		req.Type = EntryTypeExpense
		req.Code = ""
		assert.Error(t, req.Validate())
	})

	t.Run("input manual", func(t *testing.T) {
		req := CreateInputManualRequest{SheetName: "レントロール", WorkProgress: WorkProgressCompleted}
		require.NoError(t, req.Validate())
		req.SheetName = "unknown"
		assert.Error(t, req.Validate())
	})

	t.Run("water fee", func(t *testing.T) {
		neg := Amount(-1)
		req := CreateWaterFeeRequest{RentRollID: 1, CurrentReading: 10, PreviousReading: &neg}
		assert.Error(t, req.Validate())
		req.PreviousReading = nil
		assert.NoError(t, req.Validate())
	})

	t.Run("property", func(t *testing.T) {
		req := CreatePropertyRequest{Name: "  "}
		assert.Error(t, req.Validate())
	})
}

func TestWorkProgressLabel(t *testing.T) {
	assert.Equal(t, "●", WorkProgressCompleted.Label())
	assert.Equal(t, "確認中", WorkProgressInProgress.Label())
}
