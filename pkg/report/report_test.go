package report

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

type sumKey struct {
	code  string
	field models.SumField
}

type fakeSource struct {
	sums  map[sumKey]float64
	fail  string
	calls atomic.Int32
}

func (f *fakeSource) SumByCode(_ context.Context, _ int64, code string, field models.SumField, _ models.Period) (float64, error) {
	f.calls.Add(1)
	if code == f.fail {
		return 0, errors.New("backend unavailable")
	}
	return f.sums[sumKey{code, field}], nil
}

func TestBuild(t *testing.T) {
	src := &fakeSource{sums: map[sumKey]float64{
		{"100", models.SumFieldTotal}:  1_000_000,
		{"140", models.SumFieldTotal}:  50_000,
		{"200", models.SumFieldAmount}: 50_000,
		{"200", models.SumFieldTax}:    5_000,
		{"210", models.SumFieldAmount}: 20_000,
		{"210", models.SumFieldTax}:    2_000,
		{"210", models.SumFieldTotal}:  22_000,
		{"220", models.SumFieldTotal}:  33_000,
	}}

	settings := DefaultSettings()
	settings.Advances[0].Amount = 300_000
	settings.Advances[1].Amount = 100_000
	settings.FixedLines = map[string]Line{"270": {Amount: 10_000, Tax: 1_000, Total: 11_000}}

	s, err := Build(context.Background(), src, 1, settings, models.Period{Year: 2025, Month: 3})
	require.NoError(t, err)

	assert.Equal(t, 1_050_000.0, s.IncomeTotal)
	assert.Equal(t, 55_000.0, s.ManageTotal)
	require.Len(t, s.Expenses, 4)
	assert.Equal(t, 22_000.0, s.Expenses[0].Total)
	assert.True(t, s.Expenses[3].Fixed)
	assert.Equal(t, 11_000.0, s.Expenses[3].Total)
	assert.Equal(t, 55_000.0+22_000+33_000+11_000, s.ExpenseTotal)
	assert.Equal(t, s.IncomeTotal-s.ExpenseTotal, s.Difference)
	assert.Equal(t, 400_000.0, s.TotalAdvance)
	assert.Equal(t, s.Difference-400_000, s.NetIncome)
	assert.Len(t, s.Distributions, 3)

	// 4 fixed statement sums plus three per live category.
	assert.Equal(t, int32(4+3*3), src.calls.Load())
}

func TestBuildManageTotal(t *testing.T) {
	src := &fakeSource{sums: map[sumKey]float64{
		{"200", models.SumFieldAmount}: 12_345.5,
		{"200", models.SumFieldTax}:    1_234.5,
	}}
	s, err := Build(context.Background(), src, 1, nil, models.Period{})
	require.NoError(t, err)
	assert.Equal(t, 13_580.0, s.ManageTotal)
}

func TestBuildFailureReturnsNoSummary(t *testing.T) {
	src := &fakeSource{fail: "220"}
	s, err := Build(context.Background(), src, 1, DefaultSettings(), models.Period{Year: 2025})
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "220")
}

func TestBuildRejectsInvalidPeriod(t *testing.T) {
	_, err := Build(context.Background(), &fakeSource{}, 1, nil, models.Period{Month: 4})
	assert.Error(t, err)
}

func TestDistribute(t *testing.T) {
	tranches := []Tranche{
		{Name: "1", Percent: 50, Rounding: RoundUp, IncludeAdvance: true},
		{Name: "2", Percent: 25, Rounding: RoundDown, PriorAdjustment: -120_000},
		{Name: "3", Percent: 25, Rounding: RoundUp, PriorAdjustment: 1_000},
	}

	got := Distribute(406_894, 1_016_157, tranches)
	require.Len(t, got, 3)

	assert.Equal(t, 203_447.0, got[0].Base)
	assert.Equal(t, 1_219_604.0, got[0].Payout)

	// 101723.5 floored, then a shortfall.
	assert.Equal(t, 101_723.0, got[1].Base)
	assert.Equal(t, 0.0, got[1].Payout)
	assert.Equal(t, -18_277.0, got[1].CarryForward)

	assert.Equal(t, 101_724.0, got[2].Base)
	assert.Equal(t, 102_724.0, got[2].Payout)
	assert.Zero(t, got[2].CarryForward)
}

func TestRoundYenIgnoresFloatNoise(t *testing.T) {
	assert.Equal(t, 203_447.0, roundYen(203_447.00000000003, RoundUp))
	assert.Equal(t, 203_448.0, roundYen(203_447.2, RoundUp))
	assert.Equal(t, -2.0, roundYen(-1.5, RoundDown))
}

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	content := `
advances:
  - name: 元利金の返済額
    amount: 1016157
distributions:
  - name: owner
    percent: 100
    rounding: down
    account:
      bank: みずほ銀行
      accountNumber: "1234567"
fixedLines:
  "220":
    amount: 5000
    tax: 500
    total: 5500
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := LoadDefaults(path)
	require.NoError(t, err)
	assert.Len(t, s.Categories, 4)
	assert.Equal(t, 1_016_157.0, s.TotalAdvance())
	require.Len(t, s.Distributions, 1)
	assert.Equal(t, RoundDown, s.Distributions[0].Rounding)
	assert.Equal(t, "1234567", s.Distributions[0].Account.AccountNumber)
	assert.Equal(t, 5500.0, s.FixedLines["220"].Total)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("distributions:\n  - percent: 150\n    rounding: up\n"), 0o644))
	_, err = LoadDefaults(bad)
	assert.Error(t, err)
}

func TestSettingsValidate(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())

	s.FixedLines = map[string]Line{"999": {}}
	assert.Error(t, s.Validate())

	s = DefaultSettings()
	s.Categories = append(s.Categories, Category{Code: "210"})
	assert.Error(t, s.Validate())

	s = DefaultSettings()
	s.Distributions[0].Rounding = "nearest"
	assert.Error(t, s.Validate())

	for _, code := range []string{models.CodeHouseRent, models.CodeOtherIncome, models.CodeManagement} {
		s = DefaultSettings()
		s.Categories = append(s.Categories, Category{Code: code, Name: "dup"})
		assert.Error(t, s.Validate(), code)
	}

	s = DefaultSettings()
	s.Distributions[1].Percent = 30
	assert.Error(t, s.Validate())

	s.Distributions[1].Percent = 20
	assert.NoError(t, s.Validate())
}

func TestCloneIsIndependent(t *testing.T) {
	s := DefaultSettings()
	c := s.Clone()
	c.Advances[0].Amount = 1
	c.Categories[0].Name = "changed"
	assert.Zero(t, s.Advances[0].Amount)
	assert.Equal(t, "水道光熱通信費", s.Categories[0].Name)
}

func TestRender(t *testing.T) {
	s, err := Build(context.Background(), &fakeSource{sums: map[sumKey]float64{
		{"100", models.SumFieldTotal}: 1_234_567,
	}}, 1, nil, models.Period{Year: 2025, Month: 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, s))
	out := buf.String()
	assert.Contains(t, out, "2025-03")
	assert.Contains(t, out, "1,234,567")
	assert.Contains(t, out, "分配1")
}

func TestYen(t *testing.T) {
	assert.Equal(t, "0", Yen(0))
	assert.Equal(t, "999", Yen(999))
	assert.Equal(t, "1,000", Yen(1000))
	assert.Equal(t, "-18,277", Yen(-18277))
	assert.Equal(t, "1,234.5", Yen(1234.5))
}
