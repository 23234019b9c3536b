package models

import "strings"

// Property represents a managed building.
type Property struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreatePropertyRequest represents the request to register a property.
type CreatePropertyRequest struct {
	Name string `json:"name"`
}

// Validate checks required fields.
func (r *CreatePropertyRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return missingField("name")
	}
	return nil
}
