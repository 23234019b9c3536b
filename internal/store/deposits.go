package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

const depositSelect = `SELECT d.id, d.deposit, d.suubiki, d.guarantee_money, d.reikin, ` + rentRollColumns + `
    FROM deposits d JOIN rent_rolls r ON r.id = d.rent_roll_id`

func scanDeposit(row scanner) (*models.Deposit, error) {
	var d models.Deposit
	dest := append([]any{&d.ID, &d.Deposit, &d.Suubiki, &d.GuaranteeMoney, &d.Reikin}, rentRollDest(&d.RentRoll)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateDeposit records the deposits of a rent-roll unit.
func (s *Store) CreateDeposit(ctx context.Context, propertyID int64, req *models.DepositRequest) (*models.Deposit, error) {
	var id int64
	err := s.transaction(ctx, func(tx *sql.Tx) error {
		if err := requireRentRoll(ctx, tx, propertyID, int64(req.RentRollID)); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, `
			INSERT INTO deposits (property_id, rent_roll_id, deposit, suubiki, guarantee_money, reikin)
			VALUES (?, ?, ?, ?, ?, ?)`,
			propertyID, int64(req.RentRollID), req.Deposit, req.Suubiki, req.GuaranteeMoney, req.Reikin,
		)
		if err != nil {
			return translate(err)
		}
		id, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create deposit: %w", err)
	}
	return s.GetDeposit(ctx, propertyID, id)
}

// GetDeposit retrieves a deposit of the property by ID.
func (s *Store) GetDeposit(ctx context.Context, propertyID, id int64) (*models.Deposit, error) {
	d, err := scanDeposit(s.db.QueryRowContext(ctx, depositSelect+` WHERE d.property_id = ? AND d.id = ?`, propertyID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get deposit: %w", err)
	}
	return d, nil
}

// ListDeposits retrieves every deposit of the property.
func (s *Store) ListDeposits(ctx context.Context, propertyID int64) ([]models.Deposit, error) {
	rows, err := s.db.QueryContext(ctx, depositSelect+` WHERE d.property_id = ? ORDER BY d.id`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	defer rows.Close()

	deposits := []models.Deposit{}
	for rows.Next() {
		d, err := scanDeposit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deposit: %w", err)
		}
		deposits = append(deposits, *d)
	}
	return deposits, rows.Err()
}

// UpdateDeposit replaces a deposit record.
func (s *Store) UpdateDeposit(ctx context.Context, propertyID, id int64, req *models.DepositRequest) (*models.Deposit, error) {
	err := s.transaction(ctx, func(tx *sql.Tx) error {
		if err := requireRentRoll(ctx, tx, propertyID, int64(req.RentRollID)); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, `
			UPDATE deposits
			SET rent_roll_id = ?, deposit = ?, suubiki = ?, guarantee_money = ?, reikin = ?
			WHERE property_id = ? AND id = ?`,
			int64(req.RentRollID), req.Deposit, req.Suubiki, req.GuaranteeMoney, req.Reikin, propertyID, id,
		)
		if err != nil {
			return translate(err)
		}
		return mustAffect(result)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update deposit: %w", err)
	}
	return s.GetDeposit(ctx, propertyID, id)
}

// DeleteDeposit deletes a deposit record.
func (s *Store) DeleteDeposit(ctx context.Context, propertyID, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM deposits WHERE property_id = ? AND id = ?`, propertyID, id)
	if err != nil {
		return fmt.Errorf("failed to delete deposit: %w", err)
	}
	return mustAffect(result)
}
