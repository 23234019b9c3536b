// Package pathutil provides centralized path management for the backoffice
// data directory.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// PathResolver manages paths for the databases, uploaded documents and
// report archives.
type PathResolver struct {
	dataDir      string
	databasePath string
	settingsPath string
	uploadDir    string
	archiveDir   string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// DataDir is the root directory for all backoffice data (e.g., ./data)
	DataDir string
	// DatabasePath is the SQLite database holding the ledgers
	DatabasePath string
	// SettingsPath is the bbolt file holding report settings and memos
	SettingsPath string
	// UploadDir is the directory for past document content
	UploadDir string
	// ArchiveDir is the directory for rendered report archives
	ArchiveDir string
}

// New creates a new PathResolver with the given configuration.
// Empty paths default to locations under DataDir:
// backoffice.db, settings.db, documents/ and archive/.
func New(config Config) *PathResolver {
	orDefault := func(v string, elem ...string) string {
		if v != "" {
			return v
		}
		return filepath.Join(append([]string{config.DataDir}, elem...)...)
	}

	return &PathResolver{
		dataDir:      config.DataDir,
		databasePath: orDefault(config.DatabasePath, "backoffice.db"),
		settingsPath: orDefault(config.SettingsPath, "settings.db"),
		uploadDir:    orDefault(config.UploadDir, "documents"),
		archiveDir:   orDefault(config.ArchiveDir, "archive"),
	}
}

// GetDataDir returns the data root directory.
func (p *PathResolver) GetDataDir() string {
	return p.dataDir
}

// GetDatabasePath returns the ledger database file path.
func (p *PathResolver) GetDatabasePath() string {
	return p.databasePath
}

// GetSettingsPath returns the report settings database path.
func (p *PathResolver) GetSettingsPath() string {
	return p.settingsPath
}

// GetUploadDir returns the document upload directory.
func (p *PathResolver) GetUploadDir() string {
	return p.uploadDir
}

// GetArchiveDir returns the report archive directory.
func (p *PathResolver) GetArchiveDir() string {
	return p.archiveDir
}

// GetArchivePath returns the file a property's report for the period is
// archived to.
// Example: archive/3/2025/2025-03.txt
func (p *PathResolver) GetArchivePath(propertyID int64, period models.Period) (string, error) {
	if err := period.Validate(); err != nil {
		return "", fmt.Errorf("invalid archive period: %w", err)
	}

	dir := filepath.Join(p.archiveDir, strconv.FormatInt(propertyID, 10))
	var name string
	switch {
	case period.Day != 0:
		name = fmt.Sprintf("%04d-%02d-%02d.txt", period.Year, period.Month, period.Day)
	case period.Month != 0:
		name = fmt.Sprintf("%04d-%02d.txt", period.Year, period.Month)
	case period.Year != 0:
		name = fmt.Sprintf("%04d.txt", period.Year)
	default:
		return filepath.Join(dir, "all.txt"), nil
	}
	return filepath.Join(dir, strconv.Itoa(period.Year), name), nil
}

// EnsureDir creates a directory if it doesn't exist.
// It creates all parent directories as needed (like mkdir -p).
func (p *PathResolver) EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}
	return nil
}

// EnsureParentDir ensures the parent directory of a file exists.
func (p *PathResolver) EnsureParentDir(filePath string) error {
	return p.EnsureDir(filepath.Dir(filePath))
}

// FileExists checks if a file exists.
func (p *PathResolver) FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}
