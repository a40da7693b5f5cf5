package notification

import (
	"context"

	"go.uber.org/zap"
)

// NotificationService is the delivery boundary. Actual channels (push, SMS,
// WhatsApp, email) are owned by an external collaborator; this service only
// defines the contract the booking flow and the reminder worker call.
type NotificationService interface {
	SendUserNotification(ctx context.Context, userID, title, body string, data map[string]string) error
	SendProviderNotification(ctx context.Context, providerID, title, body string, data map[string]string) error
}

// LogNotificationService records notifications to the log instead of
// delivering them. Used until a delivery backend is wired in.
type LogNotificationService struct {
	Logger *zap.Logger
}

func (s *LogNotificationService) SendUserNotification(ctx context.Context, userID, title, body string, data map[string]string) error {
	s.Logger.Info("user notification",
		zap.String("userID", userID),
		zap.String("title", title),
		zap.String("body", body))
	return nil
}

func (s *LogNotificationService) SendProviderNotification(ctx context.Context, providerID, title, body string, data map[string]string) error {
	s.Logger.Info("provider notification",
		zap.String("providerID", providerID),
		zap.String("title", title),
		zap.String("body", body))
	return nil
}
