package store

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "test.db"), filepath.Join(dir, "uploads"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	s.SetClock(func() time.Time { return time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC) })
	return s
}

func seedProperty(t *testing.T, s *Store) int64 {
	t.Helper()
	p, err := s.CreateProperty(context.Background(), &models.CreatePropertyRequest{Name: "Test Building"})
	require.NoError(t, err)
	return p.ID
}

func seedUnit(t *testing.T, s *Store, propertyID int64, room, createdAt string) *models.RentRollEntry {
	t.Helper()
	e, err := s.CreateRentRoll(context.Background(), propertyID, &models.CreateRentRollRequest{
		Floor:          "1F",
		RoomNumber:     room,
		Contractor:     "Tenant " + room,
		Rent:           100000,
		MaintenanceFee: 5000,
		CreatedAt:      createdAt,
	})
	require.NoError(t, err)
	return e
}

func TestProperties(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := seedProperty(t, s)

	p, err := s.GetProperty(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Test Building", p.Name)

	_, err = s.GetProperty(ctx, id+100)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := s.ListProperties(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRentRoll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	pid := seedProperty(t, s)

	seedUnit(t, s, pid, "101", "2025-03-01")
	seedUnit(t, s, pid, "102", "2025/02/01")
	stamped := seedUnit(t, s, pid, "103", "")

	assert.Equal(t, "2025/03/15", stamped.CreatedAt)

	march, err := s.ListRentRolls(ctx, pid, models.Period{Year: 2025, Month: 3})
	require.NoError(t, err)
	require.Len(t, march, 2)
	assert.Equal(t, "2025/03/01", march[0].CreatedAt)

	all, err := s.ListRentRolls(ctx, pid, models.Period{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = s.CreateRentRoll(ctx, pid+100, &models.CreateRentRollRequest{RoomNumber: "999"})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestDeposits(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	pid := seedProperty(t, s)
	unit := seedUnit(t, s, pid, "101", "2025/03/01")

	d, err := s.CreateDeposit(ctx, pid, &models.DepositRequest{RentRollID: models.RefID(unit.ID), Deposit: 200000})
	require.NoError(t, err)
	assert.Equal(t, unit.ID, d.RentRoll.ID)
	assert.Equal(t, "101", d.RentRoll.RoomNumber)

	updated, err := s.UpdateDeposit(ctx, pid, d.ID, &models.DepositRequest{RentRollID: models.RefID(unit.ID), Deposit: 150000, Reikin: 100000})
	require.NoError(t, err)
	assert.Equal(t, models.Amount(150000), updated.Deposit)
	assert.Equal(t, 250000.0, updated.Total())

	_, err = s.UpdateDeposit(ctx, pid, d.ID+1, &models.DepositRequest{RentRollID: models.RefID(unit.ID)})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.CreateDeposit(ctx, pid, &models.DepositRequest{RentRollID: 999})
	assert.ErrorIs(t, err, ErrInvalidReference)

	require.NoError(t, s.DeleteDeposit(ctx, pid, d.ID))
	assert.ErrorIs(t, s.DeleteDeposit(ctx, pid, d.ID), ErrNotFound)

	list, err := s.ListDeposits(ctx, pid)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUtilityExpenses(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	pid := seedProperty(t, s)
	unit := seedUnit(t, s, pid, "101", "2025/03/01")

	u, err := s.CreateUtilityExpense(ctx, pid, &models.UtilityExpenseRequest{
		RentRollID: models.RefID(unit.ID), Electricity: 10000, Water: 5000, Gas: 3000,
	})
	require.NoError(t, err)
	assert.Equal(t, 18000.0, u.Total())
	assert.Equal(t, "2025/03/15", u.CreatedAt)

	u2, err := s.UpdateUtilityExpense(ctx, pid, u.ID, &models.UtilityExpenseRequest{
		RentRollID: models.RefID(unit.ID), Electricity: 12000,
	})
	require.NoError(t, err)
	assert.Equal(t, 12000.0, u2.Total())
	assert.Equal(t, "2025/03/15", u2.CreatedAt)

	other := seedProperty(t, s)
	_, err = s.CreateUtilityExpense(ctx, other, &models.UtilityExpenseRequest{RentRollID: models.RefID(unit.ID)})
	assert.ErrorIs(t, err, ErrInvalidReference)

	require.NoError(t, s.DeleteUtilityExpense(ctx, pid, u.ID))
	_, err = s.GetUtilityExpense(ctx, pid, u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWaterFeeCarriesPreviousReading(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	pid := seedProperty(t, s)
	unit := seedUnit(t, s, pid, "101", "2025/03/01")

	first, err := s.CreateWaterFee(ctx, pid, &models.CreateWaterFeeRequest{
		RentRollID: models.RefID(unit.ID), CurrentReading: 15, CreatedAt: "2025/02/28",
	})
	require.NoError(t, err)
	assert.Equal(t, models.Amount(0), first.PreviousReading)
	assert.Equal(t, 18000.0, first.Bill())

	second, err := s.CreateWaterFee(ctx, pid, &models.CreateWaterFeeRequest{
		RentRollID: models.RefID(unit.ID), CurrentReading: 27,
	})
	require.NoError(t, err)
	assert.Equal(t, models.Amount(15), second.PreviousReading)
	assert.Equal(t, 12.0, second.Usage())

	explicit := models.Amount(20)
	third, err := s.CreateWaterFee(ctx, pid, &models.CreateWaterFeeRequest{
		RentRollID: models.RefID(unit.ID), PreviousReading: &explicit, CurrentReading: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, third.Usage())

	list, err := s.ListWaterFees(ctx, pid)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestIncomeExpenseSums(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	pid := seedProperty(t, s)

	entries := []models.CreateIncomeExpenseRequest{
		{CreatedAt: "2025-03-01", Type: models.EntryTypeIncome, Code: "100", Amount: 100000, Tax: 10000},
		{CreatedAt: "2025/03/20", Type: models.EntryTypeIncome, Code: "100", Amount: 50000, Tax: 5000},
		{CreatedAt: "2025-04-01", Type: models.EntryTypeIncome, Code: "100", Amount: 70000},
		{CreatedAt: "2024-12-31", Type: models.EntryTypeExpense, Code: "200", Amount: 8000, Tax: 800},
	}
	for i := range entries {
		_, err := s.CreateIncomeExpense(ctx, pid, &entries[i])
		require.NoError(t, err)
	}

	sum, err := s.SumByCode(ctx, pid, "100", models.SumFieldTotal, models.Period{Year: 2025, Month: 3})
	require.NoError(t, err)
	assert.Equal(t, 165000.0, sum)

	sum, err = s.SumByCode(ctx, pid, "100", models.SumFieldAmount, models.Period{})
	require.NoError(t, err)
	assert.Equal(t, 220000.0, sum)

	sum, err = s.SumByCode(ctx, pid, "100", models.SumFieldTotal, models.Period{Year: 2025, Month: 3, Day: 20})
	require.NoError(t, err)
	assert.Equal(t, 55000.0, sum)

	sum, err = s.SumByCode(ctx, pid, "999", models.SumFieldTax, models.Period{})
	require.NoError(t, err)
	assert.Zero(t, sum)

	_, err = s.SumByCode(ctx, pid, "100", "amount; DROP TABLE income_expenses", models.Period{})
	assert.Error(t, err)

	years, err := s.IncomeExpenseYears(ctx, pid)
	require.NoError(t, err)
	assert.Equal(t, []int{2024, 2025}, years)

	months, err := s.IncomeExpenseMonths(ctx, pid, 2025)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, months)

	days, err := s.IncomeExpenseDays(ctx, pid, 2025, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 20}, days)

	list, err := s.ListIncomeExpenses(ctx, pid, models.Period{Year: 2025})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2025-03-20", list[1].CreatedAt)
	assert.Equal(t, models.EntryTypeIncome, list[1].Type)
}

func TestInputManual(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	pid := seedProperty(t, s)

	for i, name := range []string{"表紙", "レントロール"} {
		_, err := s.CreateInputManual(ctx, pid, &models.CreateInputManualRequest{
			Order: 2 - i, SheetName: name, WorkProgress: models.WorkProgressInProgress,
		})
		require.NoError(t, err)
	}
	_, err := s.CreateInputManual(ctx, pid, &models.CreateInputManualRequest{
		Order: 1, SheetName: "表紙", WorkProgress: models.WorkProgressCompleted, CreatedAt: "2024-11-30",
	})
	require.NoError(t, err)

	list, err := s.ListInputManuals(ctx, pid, models.Period{Year: 2025, Month: 3})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "レントロール", list[0].SheetName)

	years, err := s.InputManualYears(ctx, pid)
	require.NoError(t, err)
	assert.Equal(t, []int{2024, 2025}, years)

	months, err := s.InputManualMonths(ctx, pid, 2024)
	require.NoError(t, err)
	assert.Equal(t, []int{11}, months)
}

func TestRentIncomeHistory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	pid := seedProperty(t, s)
	unit := seedUnit(t, s, pid, "101", "2025/03/01")

	_, err := s.CreateMonthlyRentIncome(ctx, pid, &models.CreateMonthlyRentIncomeRequest{
		RentRollID: models.RefID(unit.ID), Year: 2025, Month: 2,
		ContractorPaymentAmount: 80000, SubstitutePaymentAmount: 25000,
	})
	require.NoError(t, err)

	// Before the window.
	_, err = s.UpsertRentIncomeHistory(ctx, pid, &models.HistoryUpdate{
		RentRollID: unit.ID, Year: 2024, Month: 6, IncomeAmount: amount(105000), DifferenceAmount: -3000,
	})
	require.NoError(t, err)

	entry, err := s.UpsertRentIncomeHistory(ctx, pid, &models.HistoryUpdate{
		RentRollID: unit.ID, Year: 2025, Month: 3, IncomeAmount: amount(100000), DifferenceAmount: 5000,
	})
	require.NoError(t, err)

	require.Len(t, entry.Months, models.HistoryWindow)
	assert.Equal(t, models.Amount(-3000), entry.PastDifferenceTotal)
	assert.Equal(t, models.Amount(105000), entry.Month(2025, 2).IncomeAmount)
	assert.Equal(t, models.Amount(5000), entry.Month(2025, 3).DifferenceAmount)
	assert.Equal(t, models.Amount(2000), entry.CumulativeDifference)

	entries, err := s.RentIncomeHistory(ctx, pid, 2025, 3)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, *entry, entries[0])

	_, err = s.UpsertRentIncomeHistory(ctx, pid, &models.HistoryUpdate{RentRollID: 999, Year: 2025, Month: 3})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func amount(v float64) *float64 { return &v }

func TestRentIncomeHistoryKeepsIncomeWhenOmitted(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	pid := seedProperty(t, s)
	unit := seedUnit(t, s, pid, "101", "2025/03/01")

	_, err := s.CreateMonthlyRentIncome(ctx, pid, &models.CreateMonthlyRentIncomeRequest{
		RentRollID: models.RefID(unit.ID), Year: 2025, Month: 3, ContractorPaymentAmount: 80000,
	})
	require.NoError(t, err)

	// No stored cell yet: the collected payments become the income.
	entry, err := s.UpsertRentIncomeHistory(ctx, pid, &models.HistoryUpdate{
		RentRollID: unit.ID, Year: 2025, Month: 3, DifferenceAmount: 2500,
	})
	require.NoError(t, err)
	assert.Equal(t, models.Amount(80000), entry.Month(2025, 3).IncomeAmount)
	assert.Equal(t, models.Amount(2500), entry.Month(2025, 3).DifferenceAmount)

	entry, err = s.UpsertRentIncomeHistory(ctx, pid, &models.HistoryUpdate{
		RentRollID: unit.ID, Year: 2025, Month: 3, IncomeAmount: amount(70000), DifferenceAmount: 2500,
	})
	require.NoError(t, err)
	assert.Equal(t, models.Amount(70000), entry.Month(2025, 3).IncomeAmount)

	// A stored cell keeps its income.
	entry, err = s.UpsertRentIncomeHistory(ctx, pid, &models.HistoryUpdate{
		RentRollID: unit.ID, Year: 2025, Month: 3, DifferenceAmount: -1000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.Amount(70000), entry.Month(2025, 3).IncomeAmount)
	assert.Equal(t, models.Amount(-1000), entry.Month(2025, 3).DifferenceAmount)
}

func TestUncollectedPayments(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	pid := seedProperty(t, s)

	_, err := s.CreateUncollectedPayment(ctx, pid, &models.CreateUncollectedRequest{
		RentRollID: 42, Details: "March rent", PreDifference: -10000, Year: 2025, Month: 3,
	})
	require.NoError(t, err)

	list, err := s.ListUncollectedPayments(ctx, pid, models.Period{Year: 2025, Month: 3})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(42), list[0].RentRollID)

	list, err = s.ListUncollectedPayments(ctx, pid, models.Period{Year: 2025, Month: 4})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDocuments(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	pid := seedProperty(t, s)

	doc, err := s.CreateDocument(ctx, pid, "report.pdf", "application/pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, int64(8), doc.Size)

	meta, f, err := s.OpenDocument(ctx, pid, doc.ID)
	require.NoError(t, err)
	content, err := io.ReadAll(f)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(content))
	assert.Equal(t, "report.pdf", meta.FileName)

	empty, err := s.CreateDocument(ctx, pid, "placeholder.txt", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", empty.ContentType)

	docs, err := s.ListDocuments(ctx, pid)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, empty.ID, docs[0].ID)

	require.NoError(t, s.DeleteDocument(ctx, pid, doc.ID))
	_, _, err = s.OpenDocument(ctx, pid, doc.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestOpenCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "nested", "backoffice.db")
	s, err := Open(dbPath, filepath.Join(dir, "nested", "documents"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.Equal(t, dbPath, s.Path())
	assert.DirExists(t, filepath.Join(dir, "nested", "documents"))
	assert.FileExists(t, dbPath)
}
