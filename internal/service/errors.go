package service

import (
	"errors"
	"fmt"
	"strings"

	"givebase.app/crm/internal/model"
)

// ErrNotFound is wrapped by every tenant-scoped lookup failure. Callers never
// learn whether the entity exists under another organization.
var ErrNotFound = errors.New("not found")

var (
	ErrOrganizationNotFound = fmt.Errorf("organization %w", ErrNotFound)
	ErrCampaignNotFound     = fmt.Errorf("campaign %w", ErrNotFound)
	ErrPageNotFound         = fmt.Errorf("page %w", ErrNotFound)
	ErrStaffNotFound        = fmt.Errorf("staff member %w", ErrNotFound)
)

// ValidationError reports malformed input on a named field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// PreconditionFailedError is returned when publishing is blocked by unmet completeness criteria.
type PreconditionFailedError struct {
	MissingRequirements []model.Requirement
}

func (e *PreconditionFailedError) Error() string {
	names := make([]string, len(e.MissingRequirements))
	for i, r := range e.MissingRequirements {
		names[i] = string(r)
	}
	return "publish blocked by unmet requirements: " + strings.Join(names, ", ")
}
