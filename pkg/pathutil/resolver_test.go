package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

func TestNewDefaults(t *testing.T) {
	p := New(Config{DataDir: "/srv/data", UploadDir: "/mnt/docs"})

	assert.Equal(t, "/srv/data/backoffice.db", p.GetDatabasePath())
	assert.Equal(t, "/srv/data/settings.db", p.GetSettingsPath())
	assert.Equal(t, "/mnt/docs", p.GetUploadDir())
	assert.Equal(t, "/srv/data/archive", p.GetArchiveDir())
}

func TestGetArchivePath(t *testing.T) {
	p := New(Config{DataDir: "data"})

	tests := []struct {
		name   string
		period models.Period
		want   string
	}{
		{"month", models.Period{Year: 2025, Month: 3}, "data/archive/7/2025/2025-03.txt"},
		{"day", models.Period{Year: 2025, Month: 3, Day: 9}, "data/archive/7/2025/2025-03-09.txt"},
		{"year", models.Period{Year: 2025}, "data/archive/7/2025/2025.txt"},
		{"everything", models.Period{}, "data/archive/7/all.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.GetArchivePath(7, tt.period)
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}

	_, err := p.GetArchivePath(7, models.Period{Month: 3})
	assert.Error(t, err)
}

func TestEnsureParentDir(t *testing.T) {
	p := New(Config{DataDir: t.TempDir()})
	path, err := p.GetArchivePath(1, models.Period{Year: 2025, Month: 1})
	require.NoError(t, err)

	require.NoError(t, p.EnsureParentDir(path))
	assert.False(t, p.FileExists(path))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	assert.True(t, p.FileExists(path))
}
