package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// CreateProperty registers a new property.
func (s *Store) CreateProperty(ctx context.Context, req *models.CreatePropertyRequest) (*models.Property, error) {
	name := strings.TrimSpace(req.Name)
	result, err := s.db.ExecContext(ctx, `INSERT INTO properties (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get property ID: %w", err)
	}
	return &models.Property{ID: id, Name: name}, nil
}

// GetProperty retrieves a property by ID.
func (s *Store) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	var p models.Property
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM properties WHERE id = ?`, id).Scan(&p.ID, &p.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &p, nil
}

// ListProperties retrieves all properties ordered by ID.
func (s *Store) ListProperties(ctx context.Context) ([]models.Property, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM properties ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		var p models.Property
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}
