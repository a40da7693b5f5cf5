package models

// ReminderPayload is the task body queued for reservation reminders.
// Target selects the recipient side: "user" or "provider".
type ReminderPayload struct {
	ReservationID string `json:"reservationId"`
	Target        string `json:"target"`
	ID            string `json:"id"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}
