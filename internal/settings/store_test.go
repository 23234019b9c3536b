package settings

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/report"
)

func newTestStore(t *testing.T, defaults *report.Settings) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "settings.db"), defaults)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestReportSettingsDefaults(t *testing.T) {
	s := newTestStore(t, nil)

	got, err := s.ReportSettings(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.PropertyID)
	assert.Len(t, got.Categories, 4)

	// Mutating the returned copy must not leak into the defaults.
	got.Advances[0].Amount = 999
	again, err := s.ReportSettings(8)
	require.NoError(t, err)
	assert.Zero(t, again.Advances[0].Amount)
}

func TestPutReportSettings(t *testing.T) {
	s := newTestStore(t, nil)

	custom := report.DefaultSettings()
	custom.Advances[2].Amount = 30000
	custom.Distributions[1].PriorAdjustment = -5000
	require.NoError(t, s.PutReportSettings(3, custom))

	got, err := s.ReportSettings(3)
	require.NoError(t, err)
	assert.Equal(t, 30000.0, got.TotalAdvance())
	assert.Equal(t, -5000.0, got.Distributions[1].PriorAdjustment)

	other, err := s.ReportSettings(4)
	require.NoError(t, err)
	assert.Zero(t, other.TotalAdvance())

	invalid := report.DefaultSettings()
	invalid.Distributions[0].Percent = 120
	assert.Error(t, s.PutReportSettings(3, invalid))
}

func TestMemos(t *testing.T) {
	s := newTestStore(t, nil)
	s.SetClock(func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) })

	_, err := s.Memo(1, "rentAccount.bank")
	assert.True(t, errors.Is(err, ErrNotFound))

	memos, err := s.Memos(1)
	require.NoError(t, err)
	assert.Empty(t, memos)

	_, err = s.PutMemo(1, "rentAccount.bank", "みずほ銀行")
	require.NoError(t, err)
	m, err := s.PutMemo(1, "rentAccount.bank", "三井住友銀行")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01T12:00:00Z", m.UpdatedAt)

	_, err = s.PutMemo(1, "distributions.0.holder", "山田太郎")
	require.NoError(t, err)
	_, err = s.PutMemo(2, "rentAccount.bank", "other")
	require.NoError(t, err)

	memos, err = s.Memos(1)
	require.NoError(t, err)
	require.Len(t, memos, 2)
	assert.Equal(t, "distributions.0.holder", memos[0].Field)
	assert.Equal(t, "三井住友銀行", memos[1].Value)

	_, err = s.PutMemo(1, "", "x")
	assert.Error(t, err)
}
