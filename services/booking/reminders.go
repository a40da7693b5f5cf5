package booking

import (
	"encoding/json"
	"fmt"
	"time"

	"devseva/models"

	"github.com/hibiken/asynq"
)

// TypeReminderSend is the asynq task type for reservation reminders.
const TypeReminderSend = "reminder:send"

// ReminderScheduler enqueues reservation reminders to be delivered shortly
// before the session starts. Enqueueing is best-effort; the booking itself
// never fails because a reminder could not be queued.
type ReminderScheduler struct {
	Client *asynq.Client
	// Lead is how long before the reservation start the reminder fires.
	Lead time.Duration
}

// Schedule queues one reminder per side (user and provider) for a
// reservation. Reminders whose fire time is already past are skipped.
func (rs *ReminderScheduler) Schedule(reservation *models.Reservation, now time.Time) error {
	if rs == nil || rs.Client == nil {
		return nil
	}
	fireAt := reservation.Start.Add(-rs.Lead)
	if fireAt.Before(now) {
		return nil
	}

	payloads := []models.ReminderPayload{
		{
			ReservationID: reservation.ID,
			Target:        "user",
			ID:            reservation.UserID,
			Title:         "Upcoming booking",
			Body:          fmt.Sprintf("Your %s session starts at %s.", reservation.ServiceName, reservation.Start.Format(time.RFC1123)),
			FireDate:      fireAt.Format(time.RFC3339),
		},
		{
			ReservationID: reservation.ID,
			Target:        "provider",
			ID:            reservation.ProviderID,
			Title:         "Upcoming booking",
			Body:          fmt.Sprintf("You have a %s session at %s.", reservation.ServiceName, reservation.Start.Format(time.RFC1123)),
			FireDate:      fireAt.Format(time.RFC3339),
		},
	}

	for _, p := range payloads {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal reminder payload: %w", err)
		}
		task := asynq.NewTask(TypeReminderSend, data)
		if _, err := rs.Client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
			return fmt.Errorf("failed to enqueue reminder: %w", err)
		}
	}
	return nil
}
