package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	reservationRepo "devseva/database/repository/reservation"
	"devseva/models"
	"devseva/services/scheduling"
	"devseva/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation. Every write that
// depends on a "no overlap" verdict re-runs the validator while holding the
// provider lock; a verdict obtained outside the lock is advisory only.
type DefaultBookingService struct {
	Engine          scheduling.SlotEngine
	ReservationRepo reservationRepo.ReservationRepository
	Locker          ProviderLocker
	Reminders       *ReminderScheduler
	// Now overrides the clock in tests; nil means time.Now.
	Now func() time.Time
}

// allowedTransitions encodes the reservation lifecycle. Terminal statuses
// have no outgoing edges.
var allowedTransitions = map[string][]string{
	models.ReservationScheduled:  {models.ReservationConfirmed, models.ReservationCancelled, models.ReservationRejected},
	models.ReservationConfirmed:  {models.ReservationInProgress, models.ReservationCompleted, models.ReservationCancelled},
	models.ReservationInProgress: {models.ReservationCompleted, models.ReservationCancelled},
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateReservation validates the proposed interval under the provider lock
// and persists it with status "scheduled".
func (s *DefaultBookingService) CreateReservation(ctx context.Context, req models.ReservationRequest) (*models.Reservation, error) {
	release, err := s.Locker.Acquire(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}
	defer release()

	check := models.BookingCheck{
		ProviderID: req.ProviderID,
		Start:      req.Start,
		End:        req.End,
	}
	result, err := s.Engine.CheckBookable(ctx, check)
	if err != nil {
		return nil, err
	}
	if !result.Bookable {
		return nil, &ConflictError{Reason: result.Reason}
	}

	reservation := &models.Reservation{
		ID:          uuid.New().String(),
		ProviderID:  req.ProviderID,
		UserID:      req.UserID,
		ServiceName: req.ServiceName,
		Start:       req.Start,
		End:         req.End,
		Status:      models.ReservationScheduled,
		Notes:       req.Notes,
	}
	if err := s.ReservationRepo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("failed to persist reservation: %w", err)
	}

	if err := s.Reminders.Schedule(reservation, s.now()); err != nil {
		utils.GetLogger().Warn("failed to schedule reminder",
			zap.String("reservationID", reservation.ID), zap.Error(err))
	}

	return reservation, nil
}

// RescheduleReservation moves an existing reservation to a new interval. The
// reservation is excluded from its own conflict scan.
func (s *DefaultBookingService) RescheduleReservation(ctx context.Context, reservationID, userID string, start, end time.Time) (*models.Reservation, error) {
	reservation, err := s.getOwned(ctx, reservationID, userID)
	if err != nil {
		return nil, err
	}
	if !models.IsActiveReservationStatus(reservation.Status) {
		return nil, &TransitionError{From: reservation.Status, To: reservation.Status}
	}

	release, err := s.Locker.Acquire(ctx, reservation.ProviderID)
	if err != nil {
		return nil, err
	}
	defer release()

	check := models.BookingCheck{
		ProviderID:           reservation.ProviderID,
		Start:                start,
		End:                  end,
		ExcludeReservationID: reservation.ID,
	}
	result, err := s.Engine.CheckBookable(ctx, check)
	if err != nil {
		return nil, err
	}
	if !result.Bookable {
		return nil, &ConflictError{Reason: result.Reason}
	}

	if err := s.ReservationRepo.UpdateInterval(ctx, reservation.ID, start, end); err != nil {
		return nil, fmt.Errorf("failed to update reservation interval: %w", err)
	}
	reservation.Start = start
	reservation.End = end
	return reservation, nil
}

// CancelReservation marks a user's own reservation cancelled.
func (s *DefaultBookingService) CancelReservation(ctx context.Context, reservationID, userID string) error {
	reservation, err := s.getOwned(ctx, reservationID, userID)
	if err != nil {
		return err
	}
	if !transitionAllowed(reservation.Status, models.ReservationCancelled) {
		return &TransitionError{From: reservation.Status, To: models.ReservationCancelled}
	}
	return s.ReservationRepo.UpdateStatus(ctx, reservationID, models.ReservationCancelled)
}

// UpdateReservationStatus applies an administrative status transition.
func (s *DefaultBookingService) UpdateReservationStatus(ctx context.Context, reservationID, status string) error {
	reservation, err := s.ReservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return s.mapNotFound(err)
	}
	if !transitionAllowed(reservation.Status, status) {
		return &TransitionError{From: reservation.Status, To: status}
	}
	return s.ReservationRepo.UpdateStatus(ctx, reservationID, status)
}

func (s *DefaultBookingService) GetReservation(ctx context.Context, reservationID string) (*models.Reservation, error) {
	reservation, err := s.ReservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, s.mapNotFound(err)
	}
	return reservation, nil
}

func (s *DefaultBookingService) ListUserReservations(ctx context.Context, userID string) ([]models.Reservation, error) {
	return s.ReservationRepo.ListByUser(ctx, userID)
}

func (s *DefaultBookingService) ListProviderReservations(ctx context.Context, providerID string, from, to time.Time) ([]models.Reservation, error) {
	return s.ReservationRepo.ListByProvider(ctx, providerID, from, to)
}

func (s *DefaultBookingService) getOwned(ctx context.Context, reservationID, userID string) (*models.Reservation, error) {
	reservation, err := s.ReservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, s.mapNotFound(err)
	}
	if reservation.UserID != userID {
		return nil, ErrForbidden
	}
	return reservation, nil
}

func (s *DefaultBookingService) mapNotFound(err error) error {
	if errors.Is(err, reservationRepo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
