package provider

import (
	"errors"
	"fmt"

	"devseva/models"
)

// ErrNotFound is returned when the provider does not exist.
var ErrNotFound = errors.New("provider not found")

// ValidationError reports a rejected schedule or policy update.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validatePolicy(policy models.SessionPolicy) error {
	if policy.SessionDuration < models.MinSessionDuration || policy.SessionDuration > models.MaxSessionDuration {
		return &ValidationError{
			Field:   "sessionDuration",
			Message: fmt.Sprintf("must be between %d and %d minutes", models.MinSessionDuration, models.MaxSessionDuration),
		}
	}
	if policy.BufferTime < models.MinBufferTime || policy.BufferTime > models.MaxBufferTime {
		return &ValidationError{
			Field:   "bufferTime",
			Message: fmt.Sprintf("must be between %d and %d minutes", models.MinBufferTime, models.MaxBufferTime),
		}
	}
	return nil
}
