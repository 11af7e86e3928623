// Package service contains the business logic for the Traveler API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here. Services depend on repo interfaces, not implementations.
package service

import (
	"fmt"
	"strings"

	"github.com/chasingSublimity/Traveler/internal/domain"
)

// requireText rejects blank values for a required field.
func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
	}
	return nil
}

// requireTextIfPresent applies requireText to a patch field when it is set.
func requireTextIfPresent(field string, value *string) error {
	if value == nil {
		return nil
	}
	return requireText(field, *value)
}
