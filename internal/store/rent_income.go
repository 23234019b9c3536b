package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// CreateMonthlyRentIncome records a rent collection.
func (s *Store) CreateMonthlyRentIncome(ctx context.Context, propertyID int64, req *models.CreateMonthlyRentIncomeRequest) (*models.MonthlyRentIncome, error) {
	income := models.MonthlyRentIncome{
		RentRollID:              int64(req.RentRollID),
		Year:                    req.Year,
		Month:                   req.Month,
		ContractorPaymentDate:   req.ContractorPaymentDate,
		ContractorPaymentAmount: req.ContractorPaymentAmount,
		SubstitutePaymentDate:   req.SubstitutePaymentDate,
		SubstitutePaymentAmount: req.SubstitutePaymentAmount,
		SubstitutePayer:         req.SubstitutePayer,
	}

	err := s.transaction(ctx, func(tx *sql.Tx) error {
		if err := requireRentRoll(ctx, tx, propertyID, income.RentRollID); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, `
			INSERT INTO monthly_rent_incomes (
				property_id, rent_roll_id, year, month,
				contractor_payment_date, contractor_payment_amount,
				substitute_payment_date, substitute_payment_amount, substitute_payer
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			propertyID, income.RentRollID, income.Year, income.Month,
			income.ContractorPaymentDate, income.ContractorPaymentAmount,
			income.SubstitutePaymentDate, income.SubstitutePaymentAmount, income.SubstitutePayer,
		)
		if err != nil {
			return translate(err)
		}
		income.ID, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create monthly rent income: %w", err)
	}
	return &income, nil
}

// ListMonthlyRentIncomes retrieves the property's collections. A zero year
// or month matches everything at that level.
func (s *Store) ListMonthlyRentIncomes(ctx context.Context, propertyID int64, p models.Period) ([]models.MonthlyRentIncome, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, rent_roll_id, year, month,
		       contractor_payment_date, contractor_payment_amount,
		       substitute_payment_date, substitute_payment_amount, substitute_payer
		FROM monthly_rent_incomes
		WHERE property_id = ?
		  AND (? = 0 OR year = ?)
		  AND (? = 0 OR month = ?)
		ORDER BY year, month, id`,
		propertyID, p.Year, p.Year, p.Month, p.Month,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly rent incomes: %w", err)
	}
	defer rows.Close()

	incomes := []models.MonthlyRentIncome{}
	for rows.Next() {
		var m models.MonthlyRentIncome
		if err := rows.Scan(
			&m.ID, &m.RentRollID, &m.Year, &m.Month,
			&m.ContractorPaymentDate, &m.ContractorPaymentAmount,
			&m.SubstitutePaymentDate, &m.SubstitutePaymentAmount, &m.SubstitutePayer,
		); err != nil {
			return nil, fmt.Errorf("failed to scan monthly rent income: %w", err)
		}
		incomes = append(incomes, m)
	}
	return incomes, rows.Err()
}
