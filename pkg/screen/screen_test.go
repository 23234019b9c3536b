package screen

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

type recordingLoader struct {
	mu      sync.Mutex
	periods []models.Period
	fail    error
}

func (r *recordingLoader) load(_ context.Context, p models.Period) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.periods = append(r.periods, p)
	if r.fail != nil {
		return nil, r.fail
	}
	return []string{p.String()}, nil
}

func TestSelectYearResetsAndLoadsOnce(t *testing.T) {
	rec := &recordingLoader{}
	s := New(rec.load, models.Period{Year: 2024, Month: 5, Day: 3})
	ctx := context.Background()

	require.NoError(t, s.SelectYear(ctx, 2025))
	assert.Equal(t, models.Period{Year: 2025}, s.Period())
	require.Len(t, rec.periods, 1)
	assert.Equal(t, models.Period{Year: 2025}, rec.periods[0])

	require.NoError(t, s.SelectMonth(ctx, 3))
	require.NoError(t, s.SelectDay(ctx, 9))
	require.NoError(t, s.SelectMonth(ctx, 4))
	assert.Equal(t, models.Period{Year: 2025, Month: 4}, s.Period())
	assert.Len(t, rec.periods, 4)

	data, ok := s.Data()
	require.True(t, ok)
	assert.Equal(t, []string{"2025-04"}, data)
}

func TestFailedLoadKeepsPreviousData(t *testing.T) {
	rec := &recordingLoader{}
	s := New(rec.load, models.Period{Year: 2025, Month: 3})
	ctx := context.Background()

	require.NoError(t, s.Load(ctx))
	assert.Empty(t, s.Err())

	rec.fail = errors.New("API error (status 500): server_error - Failed to list deposits")
	err := s.SelectMonth(ctx, 4)
	require.Error(t, err)

	data, ok := s.Data()
	require.True(t, ok)
	assert.Equal(t, []string{"2025-03"}, data)
	assert.Contains(t, s.Err(), "Failed to list deposits")

	rec.fail = nil
	require.NoError(t, s.Load(ctx))
	assert.Empty(t, s.Err())
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	load := func(ctx context.Context, p models.Period) (string, error) {
		if p.Month == 1 {
			close(started)
			<-release
		}
		return p.String(), nil
	}
	s := New(load, models.Period{Year: 2025, Month: 1})
	ctx := context.Background()

	slow := make(chan error, 1)
	go func() { slow <- s.Load(ctx) }()
	<-started

	require.NoError(t, s.SelectMonth(ctx, 2))
	close(release)
	assert.ErrorIs(t, <-slow, ErrStale)

	data, _ := s.Data()
	assert.Equal(t, "2025-02", data)
}

type row struct {
	ID    int64
	Value string
}

func TestReplaceByID(t *testing.T) {
	rows := []row{{1, "a"}, {2, "b"}, {3, "c"}}
	out, ok := ReplaceByID(rows, 2, row{2, "B"}, func(r *row) int64 { return r.ID })
	require.True(t, ok)
	assert.Equal(t, []row{{1, "a"}, {2, "B"}, {3, "c"}}, out)
	assert.Equal(t, "b", rows[1].Value)

	_, ok = ReplaceByID(rows, 9, row{9, "x"}, func(r *row) int64 { return r.ID })
	assert.False(t, ok)
}

func TestEditRoundTripThroughScreen(t *testing.T) {
	s := New(func(context.Context, models.Period) ([]models.Deposit, error) {
		return []models.Deposit{{ID: 1, Deposit: 100}, {ID: 2, Deposit: 200}}, nil
	}, models.Period{Year: 2025, Month: 3})
	require.NoError(t, s.Load(context.Background()))

	updated := models.Deposit{ID: 2, Deposit: 250}
	s.Update(func(rows []models.Deposit) []models.Deposit {
		out, _ := ReplaceByID(rows, updated.ID, updated, func(d *models.Deposit) int64 { return d.ID })
		return out
	})

	data, _ := s.Data()
	assert.Equal(t, models.Amount(100), data[0].Deposit)
	assert.Equal(t, models.Amount(250), data[1].Deposit)
}

func TestHistoryEditorOnlyEditsCurrentMonth(t *testing.T) {
	var submitted []*models.HistoryUpdate
	editor := &HistoryEditor{
		Now: func() time.Time { return time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC) },
		Submit: func(_ context.Context, u *models.HistoryUpdate) (*models.HistoryEntry, error) {
			submitted = append(submitted, u)
			return &models.HistoryEntry{
				RentRollID:           u.RentRollID,
				Months:               []models.HistoryMonth{{Year: u.Year, Month: u.Month, IncomeAmount: models.Amount(*u.IncomeAmount), DifferenceAmount: models.Amount(u.DifferenceAmount)}},
				CumulativeDifference: models.Amount(u.DifferenceAmount),
			}, nil
		},
	}
	entries := []models.HistoryEntry{
		{RentRollID: 1, Months: []models.HistoryMonth{{Year: 2025, Month: 2}, {Year: 2025, Month: 3, IncomeAmount: 90000}}},
		{RentRollID: 2},
	}
	ctx := context.Background()

	out, applied, err := editor.SetDifference(ctx, entries, 1, 2025, 2, 500)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, entries, out)
	assert.Empty(t, submitted)

	out, applied, err = editor.SetDifference(ctx, entries, 1, 2025, 3, 500)
	require.NoError(t, err)
	assert.True(t, applied)
	require.Len(t, submitted, 1)
	require.NotNil(t, submitted[0].IncomeAmount)
	assert.Equal(t, 90000.0, *submitted[0].IncomeAmount)
	assert.Equal(t, models.Amount(500), out[0].CumulativeDifference)
	assert.Equal(t, entries[1], out[1])
}

func TestLoadLedger(t *testing.T) {
	ctx := context.Background()
	got, err := LoadLedger(ctx,
		func(context.Context) ([]models.RentRollEntry, error) { return []models.RentRollEntry{{ID: 1}}, nil },
		func(context.Context) ([]models.Deposit, error) { return []models.Deposit{{ID: 9}}, nil },
	)
	require.NoError(t, err)
	assert.Len(t, got.RentRoll, 1)
	assert.Len(t, got.Rows, 1)

	_, err = LoadLedger(ctx,
		func(context.Context) ([]models.RentRollEntry, error) { return nil, errors.New("rent roll down") },
		func(context.Context) ([]models.Deposit, error) { return nil, nil },
	)
	assert.EqualError(t, err, "rent roll down")
}
