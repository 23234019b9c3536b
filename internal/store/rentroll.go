package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// rentRollColumns lists the rent_rolls columns in scanRentRoll order,
// qualified with the alias r so it can be reused in joins.
const rentRollColumns = `r.id, r.property_id, r.floor, r.room_number, r.room_usage, r.contractor,
    r.contract_date, r.rental_area, r.rent, r.maintenance_fee, r.tax, r.total_rent, r.unit_price,
    r.parking_fee, r.bike_parking_fee, r.bicycle_parking_fee, r.storage_fee, r.total_fee,
    r.bicycle_parking_number, r.renewal_fee, r.created_at`

func rentRollDest(e *models.RentRollEntry) []any {
	return []any{
		&e.ID, &e.PropertyID, &e.Floor, &e.RoomNumber, &e.RoomUsage, &e.Contractor,
		&e.ContractDate, &e.RentalArea, &e.Rent, &e.MaintenanceFee, &e.Tax, &e.TotalRent, &e.UnitPrice,
		&e.ParkingFee, &e.BikeParkingFee, &e.BicycleParkingFee, &e.StorageFee, &e.TotalFee,
		&e.BicycleParkingNumber, &e.RenewalFee, &e.CreatedAt,
	}
}

// CreateRentRoll adds a unit to the property's rent roll. An empty
// CreatedAt is stamped with today's date.
func (s *Store) CreateRentRoll(ctx context.Context, propertyID int64, req *models.CreateRentRollRequest) (*models.RentRollEntry, error) {
	createdAt := models.NormalizeDate(req.CreatedAt, "/")
	if req.CreatedAt == "" {
		createdAt = s.today("/")
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO rent_rolls (
			property_id, floor, room_number, room_usage, contractor, contract_date,
			rental_area, rent, maintenance_fee, tax, total_rent, unit_price,
			parking_fee, bike_parking_fee, bicycle_parking_fee, storage_fee, total_fee,
			bicycle_parking_number, renewal_fee, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		propertyID, req.Floor, req.RoomNumber, req.RoomUsage, req.Contractor, req.ContractDate,
		req.RentalArea, req.Rent, req.MaintenanceFee, req.Tax, req.TotalRent, req.UnitPrice,
		req.ParkingFee, req.BikeParkingFee, req.BicycleParkingFee, req.StorageFee, req.TotalFee,
		req.BicycleParkingNumber, req.RenewalFee, createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rent roll: %w", translate(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get rent roll ID: %w", err)
	}
	return s.GetRentRoll(ctx, id)
}

// GetRentRoll retrieves a rent-roll entry by ID.
func (s *Store) GetRentRoll(ctx context.Context, id int64) (*models.RentRollEntry, error) {
	var e models.RentRollEntry
	err := s.db.QueryRowContext(ctx,
		`SELECT `+rentRollColumns+` FROM rent_rolls r WHERE r.id = ?`, id,
	).Scan(rentRollDest(&e)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rent roll: %w", err)
	}
	return &e, nil
}

// ListRentRolls retrieves the property's rent roll, narrowed by period.
func (s *Store) ListRentRolls(ctx context.Context, propertyID int64, p models.Period) ([]models.RentRollEntry, error) {
	args := append([]any{propertyID}, periodArgs(p)...)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+rentRollColumns+` FROM rent_rolls r WHERE r.property_id = ?`+periodFilter+`
		ORDER BY r.created_at, r.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rent rolls: %w", err)
	}
	defer rows.Close()

	entries := []models.RentRollEntry{}
	for rows.Next() {
		var e models.RentRollEntry
		if err := rows.Scan(rentRollDest(&e)...); err != nil {
			return nil, fmt.Errorf("failed to scan rent roll: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
