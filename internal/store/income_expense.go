package store

import (
	"context"
	"fmt"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// CreateIncomeExpense logs a transaction. Total defaults to amount + tax.
func (s *Store) CreateIncomeExpense(ctx context.Context, propertyID int64, req *models.CreateIncomeExpenseRequest) (*models.IncomeExpenseEntry, error) {
	e := models.IncomeExpenseEntry{
		CreatedAt: models.NormalizeDate(req.CreatedAt, "-"),
		Type:      req.Type,
		Partner:   req.Partner,
		Code:      req.Code,
		Subject:   req.Subject,
		Amount:    req.Amount,
		Tax:       req.Tax,
		Total:     req.ResolvedTotal(),
		Details:   req.Details,
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO income_expenses (property_id, created_at, type, partner, code, subject, amount, tax, total, details)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		propertyID, e.CreatedAt, string(e.Type), e.Partner, e.Code, e.Subject, e.Amount, e.Tax, e.Total, e.Details,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create income expense: %w", translate(err))
	}
	if e.ID, err = result.LastInsertId(); err != nil {
		return nil, fmt.Errorf("failed to get income expense ID: %w", err)
	}
	return &e, nil
}

// ListIncomeExpenses retrieves the property's transactions in the period,
// ordered by date.
func (s *Store) ListIncomeExpenses(ctx context.Context, propertyID int64, p models.Period) ([]models.IncomeExpenseEntry, error) {
	args := append([]any{propertyID}, periodArgs(p)...)
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, type, partner, code, subject, amount, tax, total, details
		FROM income_expenses
		WHERE property_id = ?`+periodFilter+`
		ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list income expenses: %w", err)
	}
	defer rows.Close()

	entries := []models.IncomeExpenseEntry{}
	for rows.Next() {
		var e models.IncomeExpenseEntry
		var entryType string
		if err := rows.Scan(&e.ID, &e.CreatedAt, &entryType, &e.Partner, &e.Code, &e.Subject,
			&e.Amount, &e.Tax, &e.Total, &e.Details); err != nil {
			return nil, fmt.Errorf("failed to scan income expense: %w", err)
		}
		e.Type = models.EntryType(entryType)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SumByCode sums one column over the property's transactions with the given
// code inside the period.
func (s *Store) SumByCode(ctx context.Context, propertyID int64, code string, field models.SumField, p models.Period) (float64, error) {
	if !field.Valid() {
		return 0, fmt.Errorf("unknown sum field %q", field)
	}

	// field is one of the three column names checked above.
	query := `SELECT COALESCE(SUM(` + string(field) + `), 0.0) FROM income_expenses
		WHERE property_id = ? AND code = ?` + periodFilter
	args := append([]any{propertyID, code}, periodArgs(p)...)

	var sum float64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum code %s: %w", code, err)
	}
	return sum, nil
}

// IncomeExpenseYears lists the distinct years that have transactions.
func (s *Store) IncomeExpenseYears(ctx context.Context, propertyID int64) ([]int, error) {
	return s.distinctDatePart(ctx, "income_expenses", 1, propertyID, models.Period{})
}

// IncomeExpenseMonths lists the distinct months of year that have transactions.
func (s *Store) IncomeExpenseMonths(ctx context.Context, propertyID int64, year int) ([]int, error) {
	return s.distinctDatePart(ctx, "income_expenses", 6, propertyID, models.Period{Year: year})
}

// IncomeExpenseDays lists the distinct days of year/month that have transactions.
func (s *Store) IncomeExpenseDays(ctx context.Context, propertyID int64, year, month int) ([]int, error) {
	return s.distinctDatePart(ctx, "income_expenses", 9, propertyID, models.Period{Year: year, Month: month})
}

// distinctDatePart lists the distinct values of the two or four digit date
// part starting at offset in created_at. table is always a package constant.
func (s *Store) distinctDatePart(ctx context.Context, table string, offset int, propertyID int64, p models.Period) ([]int, error) {
	width := 2
	if offset == 1 {
		width = 4
	}
	query := fmt.Sprintf(`
		SELECT DISTINCT CAST(substr(created_at, %d, %d) AS INTEGER) AS part
		FROM %s WHERE property_id = ?%s
		ORDER BY part`, offset, width, table, periodFilter)
	args := append([]any{propertyID}, periodArgs(p)...)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s date parts: %w", table, err)
	}
	defer rows.Close()

	parts := []int{}
	for rows.Next() {
		var part int
		if err := rows.Scan(&part); err != nil {
			return nil, fmt.Errorf("failed to scan date part: %w", err)
		}
		parts = append(parts, part)
	}
	return parts, rows.Err()
}
