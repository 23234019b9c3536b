package integration

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shunichi-ikebuchi/property-backoffice/internal/api"
	"github.com/shunichi-ikebuchi/property-backoffice/internal/settings"
	"github.com/shunichi-ikebuchi/property-backoffice/internal/store"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/archive"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/client"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/ledger"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/pathutil"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/report"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/screen"
)

var march2025 = time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)

// newBackend wires a store and a settings store into the HTTP router.
func newBackend(t *testing.T, dir string) *api.Config {
	t.Helper()

	st, err := store.Open(filepath.Join(dir, "backoffice.db"), filepath.Join(dir, "documents"))
	require.NoError(t, err, "Failed to initialize store")
	t.Cleanup(func() { _ = st.Close() })
	st.SetClock(func() time.Time { return march2025 })

	rs, err := settings.New(filepath.Join(dir, "settings.db"), report.DefaultSettings())
	require.NoError(t, err, "Failed to initialize settings")
	t.Cleanup(func() { _ = rs.Close() })

	return &api.Config{Store: st, Settings: rs, Quiet: true}
}

func setupTestClient(t *testing.T) *client.Client {
	t.Helper()
	ts := httptest.NewServer(api.NewRouter(*newBackend(t, t.TempDir())))
	t.Cleanup(ts.Close)
	return client.NewClient(client.ClientConfig{APIURL: ts.URL + "/api", Timeout: 10 * time.Second})
}

func TestMonthEndScenario(t *testing.T) {
	ctx := context.Background()
	c := setupTestClient(t)
	b := NewTestDataBuilder(2025, 3)
	march := models.Period{Year: 2025, Month: 3}

	property, err := c.CreateProperty(ctx, &models.CreatePropertyRequest{Name: "Maple Court"})
	require.NoError(t, err)
	pid := property.ID

	var units []*models.RentRollEntry
	for _, room := range []string{"101", "102", "201"} {
		u, err := c.CreateRentRoll(ctx, pid, b.Unit(room, 80000))
		require.NoError(t, err)
		units = append(units, u)
	}

	t.Run("Deposits merge onto the rent roll", func(t *testing.T) {
		_, err := c.CreateDeposit(ctx, pid, &models.DepositRequest{RentRollID: models.RefID(units[0].ID), Deposit: 160000, Reikin: 80000})
		require.NoError(t, err)

		sc := screen.New(func(ctx context.Context, p models.Period) (screen.Ledger[models.Deposit], error) {
			return screen.LoadLedger(ctx,
				func(ctx context.Context) ([]models.RentRollEntry, error) { return c.ListRentRoll(ctx, pid, models.Period{}) },
				func(ctx context.Context) ([]models.Deposit, error) { return c.ListDeposits(ctx, pid) })
		}, march)
		require.NoError(t, sc.Load(ctx))

		data, ok := sc.Data()
		require.True(t, ok)
		rows := ledger.MergeDeposits(data.RentRoll, data.Rows, sc.Period())
		require.Len(t, rows, 3)
		assert.Equal(t, 240000.0, rows[0].Total)
		assert.Zero(t, rows[1].Matches)
	})

	t.Run("Water readings carry forward", func(t *testing.T) {
		prev := models.Amount(100)
		_, err := c.CreateWaterFee(ctx, pid, &models.CreateWaterFeeRequest{RentRollID: models.RefID(units[1].ID), PreviousReading: &prev, CurrentReading: 112, CreatedAt: b.Date(2)})
		require.NoError(t, err)
		second, err := c.CreateWaterFee(ctx, pid, &models.CreateWaterFeeRequest{RentRollID: models.RefID(units[1].ID), CurrentReading: 120, CreatedAt: b.Date(28)})
		require.NoError(t, err)

		assert.Equal(t, models.Amount(112), second.PreviousReading)
		assert.Equal(t, 8.0, second.Usage())
		assert.Equal(t, 8.0*models.WaterRatePerUnit, second.Bill())
	})

	t.Run("Rent collection and history", func(t *testing.T) {
		_, err := c.CreateMonthlyRentIncome(ctx, pid, b.RentIncome(units[0].ID, 85000, 0))
		require.NoError(t, err)
		_, err = c.CreateMonthlyRentIncome(ctx, pid, b.RentIncome(units[1].ID, 60000, 20000))
		require.NoError(t, err)

		rentRoll, err := c.ListRentRoll(ctx, pid, march)
		require.NoError(t, err)
		incomes, err := c.ListMonthlyRentIncome(ctx, pid, march)
		require.NoError(t, err)

		rows := ledger.MergeRentIncome(rentRoll, incomes, march)
		require.Len(t, rows, 3)
		assert.Zero(t, rows[0].Difference)
		assert.Equal(t, 5000.0, rows[1].Difference)
		assert.Equal(t, 85000.0, rows[2].Difference)

		editor := &screen.HistoryEditor{
			Submit: func(ctx context.Context, u *models.HistoryUpdate) (*models.HistoryEntry, error) {
				return c.UpdateRentIncomeHistory(ctx, pid, u)
			},
			Now: func() time.Time { return march2025 },
		}
		history, err := c.RentIncomeHistory(ctx, pid, march)
		require.NoError(t, err)

		history, applied, err := editor.SetDifference(ctx, history, units[1].ID, 2025, 3, 5000)
		require.NoError(t, err)
		require.True(t, applied)

		fresh, err := c.RentIncomeHistory(ctx, pid, march)
		require.NoError(t, err)
		assert.ElementsMatch(t, history, fresh)
	})

	t.Run("Statement matches local aggregation", func(t *testing.T) {
		for _, req := range []*models.CreateIncomeExpenseRequest{
			b.Income(models.CodeHouseRent, 240000, 27),
			b.Income(models.CodeOtherIncome, 12000, 27),
			b.Expense(models.CodeManagement, 12000, 28),
			b.Expense(models.CodeUtility, 8000, 10),
			b.Expense(models.CodeRepair, 30000, 18),
		} {
			_, err := c.CreateIncomeExpense(ctx, pid, req)
			require.NoError(t, err)
		}

		remote, err := c.Report(ctx, pid, march)
		require.NoError(t, err)
		rs, err := c.ReportSettings(ctx, pid)
		require.NoError(t, err)
		local, err := report.Build(ctx, c, pid, rs, march)
		require.NoError(t, err)

		assert.Equal(t, remote, local)
		assert.Equal(t, 252000.0, remote.IncomeTotal)
		assert.Equal(t, 13200.0, remote.ManageTotal)
		assert.Equal(t, remote.IncomeTotal-remote.ExpenseTotal, remote.Difference)

		var paid float64
		for _, p := range remote.Distributions {
			paid += p.Payout
		}
		assert.LessOrEqual(t, paid, remote.NetIncome)

		repo := archive.NewFileSystemRepository(pathutil.New(pathutil.Config{DataDir: t.TempDir()}))
		path, err := repo.SaveSummary(property.Name, remote)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(path, "2025-03.txt"))

		var rendered bytes.Buffer
		require.NoError(t, report.Render(&rendered, remote))
		saved, err := repo.ReadReport(pid, march)
		require.NoError(t, err)
		assert.Contains(t, saved, rendered.String())
	})

	t.Run("Empty month reports zeros", func(t *testing.T) {
		summary, err := c.Report(ctx, pid, models.Period{Year: 2024, Month: 1})
		require.NoError(t, err)
		assert.Zero(t, summary.IncomeTotal)
		assert.Zero(t, summary.NetIncome)
	})
}
