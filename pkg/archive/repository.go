// Package archive stores rendered income/expense statements on disk, one
// file per property and period.
package archive

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/pathutil"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/report"
)

// Repository defines the interface for report archive operations.
type Repository interface {
	// SaveSummary renders the summary and writes it to the period's file
	SaveSummary(propertyName string, s *report.Summary) (string, error)

	// ReadReport reads an archived report
	ReadReport(propertyID int64, period models.Period) (string, error)

	// ReportExists checks if a report was archived for the period
	ReportExists(propertyID int64, period models.Period) bool

	// ListReportsInYear lists the archived report names of a year
	ListReportsInYear(propertyID int64, year int) ([]string, error)
}

// FileSystemRepository is a file system implementation of Repository.
type FileSystemRepository struct {
	pathResolver *pathutil.PathResolver
	now          func() time.Time
}

// NewFileSystemRepository creates a new FileSystemRepository.
func NewFileSystemRepository(pathResolver *pathutil.PathResolver) *FileSystemRepository {
	return &FileSystemRepository{
		pathResolver: pathResolver,
		now:          time.Now,
	}
}

// SaveSummary renders s and writes it to the period's archive file,
// replacing an earlier run. It returns the written path.
func (r *FileSystemRepository) SaveSummary(propertyName string, s *report.Summary) (string, error) {
	filePath, err := r.pathResolver.GetArchivePath(s.PropertyID, s.Period)
	if err != nil {
		return "", fmt.Errorf("failed to get archive path: %w", err)
	}

	if err := r.pathResolver.EnsureParentDir(filePath); err != nil {
		return "", fmt.Errorf("failed to ensure parent directory: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(r.generateFileHeader(propertyName, s))
	if err := report.Render(&buf, s); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	tmp := filePath + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp, filePath); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to replace archive: %w", err)
	}

	return filePath, nil
}

// ReadReport reads an archived report.
// Returns empty string if no report was archived.
func (r *FileSystemRepository) ReadReport(propertyID int64, period models.Period) (string, error) {
	filePath, err := r.pathResolver.GetArchivePath(propertyID, period)
	if err != nil {
		return "", fmt.Errorf("failed to get archive path: %w", err)
	}

	if !r.pathResolver.FileExists(filePath) {
		return "", nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

// ReportExists checks if a report was archived for the period.
func (r *FileSystemRepository) ReportExists(propertyID int64, period models.Period) bool {
	filePath, err := r.pathResolver.GetArchivePath(propertyID, period)
	if err != nil {
		return false
	}
	return r.pathResolver.FileExists(filePath)
}

// ListReportsInYear lists the reports archived under a year, e.g.
// ["2025", "2025-01", "2025-02-15"].
func (r *FileSystemRepository) ListReportsInYear(propertyID int64, year int) ([]string, error) {
	yearDir := filepath.Join(r.pathResolver.GetArchiveDir(), strconv.FormatInt(propertyID, 10), strconv.Itoa(year))
	if !r.pathResolver.FileExists(yearDir) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(yearDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read year directory: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".txt" {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".txt"))
	}
	sort.Strings(names)
	return names, nil
}

// generateFileHeader generates the comment lines heading an archive file.
func (r *FileSystemRepository) generateFileHeader(propertyName string, s *report.Summary) string {
	now := r.now().Format(time.RFC3339)
	return fmt.Sprintf("# %s 収支報告 %s\n# Generated at %s\n\n", propertyName, s.Period, now)
}
