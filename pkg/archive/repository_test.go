package archive

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/pathutil"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/report"
)

func newTestRepository(t *testing.T) *FileSystemRepository {
	t.Helper()
	repo := NewFileSystemRepository(pathutil.New(pathutil.Config{DataDir: t.TempDir()}))
	repo.now = func() time.Time { return time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC) }
	return repo
}

func testSummary(p models.Period, net float64) *report.Summary {
	return &report.Summary{
		PropertyID:     4,
		Period:         p,
		HouseRentTotal: net,
		IncomeTotal:    net,
		Difference:     net,
		NetIncome:      net,
	}
}

func TestSaveAndReadSummary(t *testing.T) {
	repo := newTestRepository(t)
	march := models.Period{Year: 2025, Month: 3}

	assert.False(t, repo.ReportExists(4, march))
	content, err := repo.ReadReport(4, march)
	require.NoError(t, err)
	assert.Empty(t, content)

	path, err := repo.SaveSummary("Sakura Heights", testSummary(march, 250000))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "2025-03.txt"))
	assert.True(t, repo.ReportExists(4, march))

	content, err = repo.ReadReport(4, march)
	require.NoError(t, err)
	assert.Contains(t, content, "Sakura Heights")
	assert.Contains(t, content, "2025-04-01T00:00:00Z")
	assert.Contains(t, content, report.Yen(250000))

	// A rerun replaces the earlier archive.
	_, err = repo.SaveSummary("Sakura Heights", testSummary(march, 100))
	require.NoError(t, err)
	content, err = repo.ReadReport(4, march)
	require.NoError(t, err)
	assert.NotContains(t, content, report.Yen(250000))
}

func TestListReportsInYear(t *testing.T) {
	repo := newTestRepository(t)

	names, err := repo.ListReportsInYear(4, 2025)
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, p := range []models.Period{{Year: 2025, Month: 2}, {Year: 2025}, {Year: 2025, Month: 1, Day: 31}, {Year: 2024, Month: 12}} {
		_, err := repo.SaveSummary("Sakura Heights", testSummary(p, 1))
		require.NoError(t, err)
	}

	names, err = repo.ListReportsInYear(4, 2025)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025", "2025-01-31", "2025-02"}, names)
}
