package models

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every request validation failure.
var ErrValidation = errors.New("validation failed")

func missingField(name string) error {
	return fmt.Errorf("%w: missing %s", ErrValidation, name)
}

func invalidField(name string, value any) error {
	return fmt.Errorf("%w: invalid %s: %v", ErrValidation, name, value)
}
