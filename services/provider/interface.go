package provider

import (
	"context"

	"devseva/models"
)

// ProviderService manages provider profiles: reads for the booking surface,
// and the schedule/policy/availability mutations providers perform on their
// own account. All scheduling invariants are enforced here, at update time;
// the engine trusts whatever is stored.
type ProviderService interface {
	GetProvider(ctx context.Context, id string) (*models.Provider, error)
	RegisterProvider(ctx context.Context, p *models.Provider) (*models.Provider, error)
	UpdateWeeklySchedule(ctx context.Context, providerID string, schedule models.WeeklySchedule) error
	UpdateSessionPolicy(ctx context.Context, providerID string, policy models.SessionPolicy) error
	SetAvailability(ctx context.Context, providerID string, available bool) error
}
