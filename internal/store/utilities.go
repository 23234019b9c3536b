package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

const utilitySelect = `SELECT u.id, u.electricity, u.water, u.gas, u.other1, u.other2, u.created_at, ` + rentRollColumns + `
    FROM utility_expenses u JOIN rent_rolls r ON r.id = u.rent_roll_id`

func scanUtility(row scanner) (*models.UtilityExpense, error) {
	var u models.UtilityExpense
	dest := append([]any{&u.ID, &u.Electricity, &u.Water, &u.Gas, &u.Other1, &u.Other2, &u.CreatedAt}, rentRollDest(&u.RentRoll)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUtilityExpense records the utility costs of a rent-roll unit.
func (s *Store) CreateUtilityExpense(ctx context.Context, propertyID int64, req *models.UtilityExpenseRequest) (*models.UtilityExpense, error) {
	createdAt := models.NormalizeDate(req.CreatedAt, "/")
	if req.CreatedAt == "" {
		createdAt = s.today("/")
	}

	var id int64
	err := s.transaction(ctx, func(tx *sql.Tx) error {
		if err := requireRentRoll(ctx, tx, propertyID, int64(req.RentRollID)); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, `
			INSERT INTO utility_expenses (property_id, rent_roll_id, electricity, water, gas, other1, other2, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			propertyID, int64(req.RentRollID), req.Electricity, req.Water, req.Gas, req.Other1, req.Other2, createdAt,
		)
		if err != nil {
			return translate(err)
		}
		id, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create utility expense: %w", err)
	}
	return s.GetUtilityExpense(ctx, propertyID, id)
}

// GetUtilityExpense retrieves a utility expense of the property by ID.
func (s *Store) GetUtilityExpense(ctx context.Context, propertyID, id int64) (*models.UtilityExpense, error) {
	u, err := scanUtility(s.db.QueryRowContext(ctx, utilitySelect+` WHERE u.property_id = ? AND u.id = ?`, propertyID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get utility expense: %w", err)
	}
	return u, nil
}

// ListUtilityExpenses retrieves every utility expense of the property.
func (s *Store) ListUtilityExpenses(ctx context.Context, propertyID int64) ([]models.UtilityExpense, error) {
	rows, err := s.db.QueryContext(ctx, utilitySelect+` WHERE u.property_id = ? ORDER BY u.id`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list utility expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.UtilityExpense{}
	for rows.Next() {
		u, err := scanUtility(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan utility expense: %w", err)
		}
		expenses = append(expenses, *u)
	}
	return expenses, rows.Err()
}

// UpdateUtilityExpense replaces a utility expense record. The original
// created_at is kept when the request does not carry one.
func (s *Store) UpdateUtilityExpense(ctx context.Context, propertyID, id int64, req *models.UtilityExpenseRequest) (*models.UtilityExpense, error) {
	err := s.transaction(ctx, func(tx *sql.Tx) error {
		if err := requireRentRoll(ctx, tx, propertyID, int64(req.RentRollID)); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, `
			UPDATE utility_expenses
			SET rent_roll_id = ?, electricity = ?, water = ?, gas = ?, other1 = ?, other2 = ?,
			    created_at = CASE WHEN ? = '' THEN created_at ELSE ? END
			WHERE property_id = ? AND id = ?`,
			int64(req.RentRollID), req.Electricity, req.Water, req.Gas, req.Other1, req.Other2,
			req.CreatedAt, models.NormalizeDate(req.CreatedAt, "/"), propertyID, id,
		)
		if err != nil {
			return translate(err)
		}
		return mustAffect(result)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update utility expense: %w", err)
	}
	return s.GetUtilityExpense(ctx, propertyID, id)
}

// DeleteUtilityExpense deletes a utility expense record.
func (s *Store) DeleteUtilityExpense(ctx context.Context, propertyID, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM utility_expenses WHERE property_id = ? AND id = ?`, propertyID, id)
	if err != nil {
		return fmt.Errorf("failed to delete utility expense: %w", err)
	}
	return mustAffect(result)
}
