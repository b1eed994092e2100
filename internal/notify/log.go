package notify

import (
	"context"

	"toyland-backend/internal/logging"
)

// LogNotifier implements Notifier by writing the message to the service log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Publish(ctx context.Context, message string) error {
	logging.Ctx(ctx).Info().Str("notification", message).Msg("feedback notification")
	return nil
}
