package service

import "github.com/MKhiriev/legacy-keeper/internal/logger"

type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier reports outcomes to the log only.
func NewLogNotifier(log *logger.Logger) Notifier {
	return &logNotifier{logger: log}
}

func (n *logNotifier) Success(title, message string) {
	n.logger.Info().Str("title", title).Str("message", message).Msg("notice")
}

func (n *logNotifier) Error(title, message string) {
	n.logger.Warn().Str("title", title).Str("message", message).Msg("notice")
}
