package notify

import (
	"lumiere-backend/internal/domain"
	"lumiere-backend/pkg/logger"
)

type logNotifier struct{}

// NewLogNotifier emits notifications to the structured log. The presentation
// layer renders its own copy from response messages; this keeps an audit
// trail of every mutation outcome.
func NewLogNotifier() domain.Notifier {
	return logNotifier{}
}

func (logNotifier) Success(msg string) {
	logger.Info().Str("kind", "success").Msg(msg)
}

func (logNotifier) Error(msg string) {
	logger.Warn().Str("kind", "error").Msg(msg)
}

func (logNotifier) Info(msg string) {
	logger.Info().Str("kind", "info").Msg(msg)
}
