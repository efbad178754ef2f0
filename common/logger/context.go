package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Tenant and request scope (organization_id, staff_id, ...) is attached once by the
// HTTP middleware or the worker and then shows up on every log line below it.
type LogFields struct {
	OrganizationID *int64  // Tenant the request is scoped to
	CampaignID     *int64  // Campaign being edited or published
	StaffID        *int64  // Authenticated staff member
	MessageID      *string // Redis stream message ID
	TaskType       *string // Queue task type (e.g., "completeness_recheck")
	Component      string  // Component name (OTel semantic convention style, e.g., "crm.service.completeness")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, new LogFields) LogFields {
	result := existing

	if new.OrganizationID != nil {
		result.OrganizationID = new.OrganizationID
	}
	if new.CampaignID != nil {
		result.CampaignID = new.CampaignID
	}
	if new.StaffID != nil {
		result.StaffID = new.StaffID
	}
	if new.MessageID != nil {
		result.MessageID = new.MessageID
	}
	if new.TaskType != nil {
		result.TaskType = new.TaskType
	}
	if new.Component != "" {
		result.Component = new.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{CampaignID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}
