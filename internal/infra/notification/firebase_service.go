package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"audiotour/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messageSender is the part of the FCM client the service needs.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client      messageSender
	deviceToken string
	logger      *slog.Logger
}

// NewFirebaseService creates a Firebase notification service that pushes to one device token
func NewFirebaseService(ctx context.Context, credentialsPath, projectID, deviceToken string, logger *slog.Logger) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, appConfig, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return newFirebaseService(client, deviceToken, logger), nil
}

func newFirebaseService(client messageSender, deviceToken string, logger *slog.Logger) *firebaseService {
	return &firebaseService{
		client:      client,
		deviceToken: deviceToken,
		logger:      logger,
	}
}

// NotifyStopReached pushes a "stop reached" notification
func (s *firebaseService) NotifyStopReached(ctx context.Context, reached service.StopReached) error {
	message := &messaging.Message{
		Token: s.deviceToken,
		Notification: &messaging.Notification{
			Title: reached.StopName,
			Body:  fmt.Sprintf("You reached stop %d of %d", reached.Visited, reached.Total),
		},
		Data: map[string]string{
			"type":       "stop_reached",
			"route_id":   reached.RouteID,
			"history_id": reached.HistoryID,
			"stop_id":    reached.StopID,
			"order":      strconv.Itoa(reached.Order),
		},
		Android: &messaging.AndroidConfig{
			CollapseKey: reached.HistoryID,
		},
	}

	return s.send(ctx, message)
}

// NotifyRouteCompleted pushes a completion notification
func (s *firebaseService) NotifyRouteCompleted(ctx context.Context, routeID, routeName string) error {
	message := &messaging.Message{
		Token: s.deviceToken,
		Notification: &messaging.Notification{
			Title: "Tour complete",
			Body:  fmt.Sprintf("You visited every stop of %s", routeName),
		},
		Data: map[string]string{
			"type":     "route_completed",
			"route_id": routeID,
		},
	}

	return s.send(ctx, message)
}

func (s *firebaseService) send(ctx context.Context, message *messaging.Message) error {
	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return fmt.Errorf("device token rejected: %w", err)
		}

		return fmt.Errorf("failed to send notification: %w", err)
	}

	s.logger.Debug("Notification sent",
		slog.String("type", message.Data["type"]),
		slog.String("message_id", messageID),
	)

	return nil
}
