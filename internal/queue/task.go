package queue

type TaskType string

const (
	// TaskTypeCompletenessRecheck asks the worker to re-evaluate an organization's public visibility.
	TaskTypeCompletenessRecheck TaskType = "completeness_recheck"
)

// Reasons recorded on recheck tasks.
const (
	ReasonPaymentAccountUpdated = "payment_account_updated"
	ReasonManual                = "manual"
)

// EventTypeVisibilityChanged is published when an organization's stored visibility flips.
const EventTypeVisibilityChanged = "organization.visibility_changed"
