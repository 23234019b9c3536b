package store

import (
	"context"
	"fmt"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// CreateUncollectedPayment records an uncollected or advance payment. The
// referenced unit is not checked: payments may outlive the unit they were
// recorded against.
func (s *Store) CreateUncollectedPayment(ctx context.Context, propertyID int64, req *models.CreateUncollectedRequest) (*models.UncollectedAdvancePayment, error) {
	p := models.UncollectedAdvancePayment{
		RentRollID:        int64(req.RentRollID),
		Details:           req.Details,
		GuaranteeCompany:  req.GuaranteeCompany,
		Notes:             req.Notes,
		ContactInfo:       req.ContactInfo,
		PreDifference:     req.PreDifference,
		DepositAdjustment: req.DepositAdjustment,
		PostMoveInPayment: req.PostMoveInPayment,
		Uncollectible:     req.Uncollectible,
		Year:              req.Year,
		Month:             req.Month,
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO uncollected_payments (
			property_id, rent_roll_id, details, guarantee_company, notes, contact_info,
			pre_difference, deposit_adjustment, post_move_in_payment, uncollectible, year, month
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		propertyID, p.RentRollID, p.Details, p.GuaranteeCompany, p.Notes, p.ContactInfo,
		p.PreDifference, p.DepositAdjustment, p.PostMoveInPayment, p.Uncollectible, p.Year, p.Month,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create uncollected payment: %w", translate(err))
	}
	if p.ID, err = result.LastInsertId(); err != nil {
		return nil, fmt.Errorf("failed to get uncollected payment ID: %w", err)
	}
	return &p, nil
}

// ListUncollectedPayments retrieves the property's uncollected and advance
// payments for the period.
func (s *Store) ListUncollectedPayments(ctx context.Context, propertyID int64, period models.Period) ([]models.UncollectedAdvancePayment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, rent_roll_id, details, guarantee_company, notes, contact_info,
		       pre_difference, deposit_adjustment, post_move_in_payment, uncollectible, year, month
		FROM uncollected_payments
		WHERE property_id = ?
		  AND (? = 0 OR year = ?)
		  AND (? = 0 OR month = ?)
		ORDER BY id`,
		propertyID, period.Year, period.Year, period.Month, period.Month,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list uncollected payments: %w", err)
	}
	defer rows.Close()

	payments := []models.UncollectedAdvancePayment{}
	for rows.Next() {
		var p models.UncollectedAdvancePayment
		if err := rows.Scan(
			&p.ID, &p.RentRollID, &p.Details, &p.GuaranteeCompany, &p.Notes, &p.ContactInfo,
			&p.PreDifference, &p.DepositAdjustment, &p.PostMoveInPayment, &p.Uncollectible, &p.Year, &p.Month,
		); err != nil {
			return nil, fmt.Errorf("failed to scan uncollected payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
