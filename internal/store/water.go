package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// CreateWaterFee records a meter reading. When the request has no previous
// reading, the latest current reading of the same unit is carried forward.
func (s *Store) CreateWaterFee(ctx context.Context, propertyID int64, req *models.CreateWaterFeeRequest) (*models.WaterFeeReading, error) {
	createdAt := models.NormalizeDate(req.CreatedAt, "/")
	if req.CreatedAt == "" {
		createdAt = s.today("/")
	}

	reading := models.WaterFeeReading{
		RentRollID:     int64(req.RentRollID),
		CurrentReading: req.CurrentReading,
		CreatedAt:      createdAt,
	}

	err := s.transaction(ctx, func(tx *sql.Tx) error {
		if err := requireRentRoll(ctx, tx, propertyID, reading.RentRollID); err != nil {
			return err
		}

		if req.PreviousReading != nil {
			reading.PreviousReading = *req.PreviousReading
		} else {
			err := tx.QueryRowContext(ctx, `
				SELECT current_reading FROM water_fees
				WHERE rent_roll_id = ? AND created_at <= ?
				ORDER BY created_at DESC, id DESC LIMIT 1`,
				reading.RentRollID, createdAt,
			).Scan(&reading.PreviousReading)
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("failed to look up previous reading: %w", err)
			}
		}

		result, err := tx.ExecContext(ctx, `
			INSERT INTO water_fees (property_id, rent_roll_id, previous_reading, current_reading, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			propertyID, reading.RentRollID, reading.PreviousReading, reading.CurrentReading, reading.CreatedAt,
		)
		if err != nil {
			return translate(err)
		}
		reading.ID, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create water fee: %w", err)
	}
	return &reading, nil
}

// ListWaterFees retrieves every meter reading of the property.
func (s *Store) ListWaterFees(ctx context.Context, propertyID int64) ([]models.WaterFeeReading, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, rent_roll_id, previous_reading, current_reading, created_at
		FROM water_fees WHERE property_id = ? ORDER BY created_at, id`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list water fees: %w", err)
	}
	defer rows.Close()

	readings := []models.WaterFeeReading{}
	for rows.Next() {
		var w models.WaterFeeReading
		if err := rows.Scan(&w.ID, &w.RentRollID, &w.PreviousReading, &w.CurrentReading, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan water fee: %w", err)
		}
		readings = append(readings, w)
	}
	return readings, rows.Err()
}
