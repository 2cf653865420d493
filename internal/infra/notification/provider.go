package notification

import (
	"context"
	"log/slog"

	"audiotour/config"
	"audiotour/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for the notification service, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService uses Firebase when credentials and a device token are
// configured and falls back to logging otherwise
func NewNotificationService(params Params) (service.NotificationService, error) {
	logger := params.Logger.With(slog.String("component", "notification"))

	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" || cfg.DeviceToken == "" {
		logger.Info("Firebase not configured, notifications are logged only")

		return NewLogService(logger), nil
	}

	return NewFirebaseService(params.Ctx, cfg.CredentialsPath, cfg.ProjectID, cfg.DeviceToken, logger)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationService),
)
