package store

import (
	"context"
	"fmt"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// CreateInputManual adds a checklist line. An empty created_at is stamped
// with today's date.
func (s *Store) CreateInputManual(ctx context.Context, propertyID int64, req *models.CreateInputManualRequest) (*models.InputManualEntry, error) {
	e := models.InputManualEntry{
		Order:        req.Order,
		SheetName:    req.SheetName,
		WorkProgress: req.WorkProgress,
		WorkContent:  req.WorkContent,
		CreatedAt:    models.NormalizeDate(req.CreatedAt, "-"),
	}
	if req.CreatedAt == "" {
		e.CreatedAt = s.today("-")
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO input_manuals (property_id, sort_order, sheet_name, work_progress, work_content, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		propertyID, e.Order, e.SheetName, string(e.WorkProgress), e.WorkContent, e.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create input manual: %w", translate(err))
	}
	if e.ID, err = result.LastInsertId(); err != nil {
		return nil, fmt.Errorf("failed to get input manual ID: %w", err)
	}
	return &e, nil
}

// ListInputManuals retrieves the property's checklist for the period in
// binder order.
func (s *Store) ListInputManuals(ctx context.Context, propertyID int64, p models.Period) ([]models.InputManualEntry, error) {
	args := append([]any{propertyID}, periodArgs(p)...)
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sort_order, sheet_name, work_progress, work_content, created_at
		FROM input_manuals
		WHERE property_id = ?`+periodFilter+`
		ORDER BY sort_order, id`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list input manuals: %w", err)
	}
	defer rows.Close()

	entries := []models.InputManualEntry{}
	for rows.Next() {
		var e models.InputManualEntry
		var progress string
		if err := rows.Scan(&e.ID, &e.Order, &e.SheetName, &progress, &e.WorkContent, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan input manual: %w", err)
		}
		e.WorkProgress = models.WorkProgress(progress)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// InputManualYears lists the distinct years that have checklist lines.
func (s *Store) InputManualYears(ctx context.Context, propertyID int64) ([]int, error) {
	return s.distinctDatePart(ctx, "input_manuals", 1, propertyID, models.Period{})
}

// InputManualMonths lists the distinct months of year that have checklist lines.
func (s *Store) InputManualMonths(ctx context.Context, propertyID int64, year int) ([]int, error) {
	return s.distinctDatePart(ctx, "input_manuals", 6, propertyID, models.Period{Year: year})
}
