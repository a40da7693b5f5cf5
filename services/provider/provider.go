package provider

import (
	"context"
	"errors"
	"fmt"

	providerRepo "devseva/database/repository/provider"
	"devseva/models"
	"devseva/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}

func (s *DefaultProviderService) GetProvider(ctx context.Context, id string) (*models.Provider, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return p, nil
}

// RegisterProvider creates a new provider profile in pending status. The
// profile becomes bookable once a valid schedule is set and the status moves
// to active.
func (s *DefaultProviderService) RegisterProvider(ctx context.Context, p *models.Provider) (*models.Provider, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = models.ProviderStatusPending
	}
	if p.ServiceType != models.ServiceTypeAstrologer &&
		p.ServiceType != models.ServiceTypePriest &&
		p.ServiceType != models.ServiceTypeTourGuide {
		return nil, &ValidationError{Field: "serviceType", Message: fmt.Sprintf("unknown service type %q", p.ServiceType)}
	}
	if p.WeeklySchedule.Timezone != "" {
		if err := p.WeeklySchedule.Validate(); err != nil {
			return nil, &ValidationError{Field: "weeklySchedule", Message: err.Error()}
		}
	}
	if p.SessionPolicy != (models.SessionPolicy{}) {
		if err := validatePolicy(p.SessionPolicy); err != nil {
			return nil, err
		}
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to register provider: %w", err)
	}
	utils.GetLogger().Info("provider registered",
		zap.String("providerID", p.ID), zap.String("serviceType", p.ServiceType))
	return p, nil
}

func (s *DefaultProviderService) UpdateWeeklySchedule(ctx context.Context, providerID string, schedule models.WeeklySchedule) error {
	if err := schedule.Validate(); err != nil {
		return &ValidationError{Field: "weeklySchedule", Message: err.Error()}
	}
	if err := s.Repo.UpdateWeeklySchedule(ctx, providerID, schedule); err != nil {
		return s.mapErr(err)
	}
	return nil
}

func (s *DefaultProviderService) UpdateSessionPolicy(ctx context.Context, providerID string, policy models.SessionPolicy) error {
	if err := validatePolicy(policy); err != nil {
		return err
	}
	if err := s.Repo.UpdateSessionPolicy(ctx, providerID, policy); err != nil {
		return s.mapErr(err)
	}
	return nil
}

func (s *DefaultProviderService) SetAvailability(ctx context.Context, providerID string, available bool) error {
	if err := s.Repo.SetAvailability(ctx, providerID, available); err != nil {
		return s.mapErr(err)
	}
	return nil
}

func (s *DefaultProviderService) mapErr(err error) error {
	if errors.Is(err, providerRepo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
