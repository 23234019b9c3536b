package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

type monthKey struct {
	rentRollID  int64
	year, month int
}

func (k monthKey) index() int { return k.year*12 + k.month - 1 }

type historyCell struct {
	income, difference float64
}

// RentIncomeHistory projects the six month history window ending at
// year/month for every rent-roll unit of the property. Cells without a
// stored history row fall back to the collections recorded for that month
// with a zero difference.
func (s *Store) RentIncomeHistory(ctx context.Context, propertyID int64, year, month int) ([]models.HistoryEntry, error) {
	units, err := s.rentRollIDs(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	stored, err := s.storedHistory(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	collected, err := s.collectedByMonth(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	window := models.WindowMonths(year, month)
	windowStart := monthKey{year: window[0].Year, month: window[0].Month}.index()

	past := make(map[int64]float64)
	for k, cell := range stored {
		if k.index() < windowStart {
			past[k.rentRollID] += cell.difference
		}
	}

	entries := make([]models.HistoryEntry, 0, len(units))
	for _, id := range units {
		entry := models.HistoryEntry{
			RentRollID:          id,
			PastDifferenceTotal: models.Amount(past[id]),
			Months:              make([]models.HistoryMonth, 0, len(window)),
		}
		for _, p := range window {
			k := monthKey{rentRollID: id, year: p.Year, month: p.Month}
			cell := models.HistoryMonth{Year: p.Year, Month: p.Month}
			if c, ok := stored[k]; ok {
				cell.IncomeAmount = models.Amount(c.income)
				cell.DifferenceAmount = models.Amount(c.difference)
			} else {
				cell.IncomeAmount = models.Amount(collected[k])
			}
			entry.Months = append(entry.Months, cell)
		}
		entry.Recalculate()
		entries = append(entries, entry)
	}
	return entries, nil
}

// UpsertRentIncomeHistory stores one history cell and returns the unit's
// refreshed window ending at the updated month.
func (s *Store) UpsertRentIncomeHistory(ctx context.Context, propertyID int64, u *models.HistoryUpdate) (*models.HistoryEntry, error) {
	err := s.transaction(ctx, func(tx *sql.Tx) error {
		if err := requireRentRoll(ctx, tx, propertyID, u.RentRollID); err != nil {
			return err
		}
		var income any
		if u.IncomeAmount != nil {
			income = *u.IncomeAmount
		}
		// A NULL income keeps the stored cell, else takes the collected sum.
		_, err := tx.ExecContext(ctx, `
			INSERT INTO rent_income_history (property_id, rent_roll_id, year, month, income_amount, difference_amount)
			VALUES (?1, ?2, ?3, ?4, COALESCE(?5,
				(SELECT income_amount FROM rent_income_history WHERE rent_roll_id = ?2 AND year = ?3 AND month = ?4),
				(SELECT COALESCE(SUM(contractor_payment_amount + substitute_payment_amount), 0)
					FROM monthly_rent_incomes WHERE rent_roll_id = ?2 AND year = ?3 AND month = ?4)), ?6)
			ON CONFLICT(rent_roll_id, year, month) DO UPDATE SET
				income_amount = excluded.income_amount,
				difference_amount = excluded.difference_amount`,
			propertyID, u.RentRollID, u.Year, u.Month, income, u.DifferenceAmount,
		)
		return translate(err)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update rent income history: %w", err)
	}

	entries, err := s.RentIncomeHistory(ctx, propertyID, u.Year, u.Month)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].RentRollID == u.RentRollID {
			return &entries[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) rentRollIDs(ctx context.Context, propertyID int64) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM rent_rolls WHERE property_id = ? ORDER BY id`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rent roll IDs: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan rent roll ID: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) storedHistory(ctx context.Context, propertyID int64) (map[monthKey]historyCell, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT rent_roll_id, year, month, income_amount, difference_amount
		FROM rent_income_history WHERE property_id = ?`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rent income history: %w", err)
	}
	defer rows.Close()

	cells := make(map[monthKey]historyCell)
	for rows.Next() {
		var k monthKey
		var c historyCell
		if err := rows.Scan(&k.rentRollID, &k.year, &k.month, &c.income, &c.difference); err != nil {
			return nil, fmt.Errorf("failed to scan rent income history: %w", err)
		}
		cells[k] = c
	}
	return cells, rows.Err()
}

func (s *Store) collectedByMonth(ctx context.Context, propertyID int64) (map[monthKey]float64, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT rent_roll_id, year, month, SUM(contractor_payment_amount + substitute_payment_amount)
		FROM monthly_rent_incomes WHERE property_id = ?
		GROUP BY rent_roll_id, year, month`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum monthly rent incomes: %w", err)
	}
	defer rows.Close()

	sums := make(map[monthKey]float64)
	for rows.Next() {
		var k monthKey
		var sum float64
		if err := rows.Scan(&k.rentRollID, &k.year, &k.month, &sum); err != nil {
			return nil, fmt.Errorf("failed to scan monthly rent income sum: %w", err)
		}
		sums[k] = sum
	}
	return sums, rows.Err()
}
