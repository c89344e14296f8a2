package mail

import (
	"context"
	"log/slog"

	"github.com/pkordes/trip-planner/internal/domain"
)

// LogSender logs each email instead of sending it. Used when no SMTP host is
// configured, so confirmation links can be copied from the server output.
type LogSender struct {
	log         *slog.Logger
	fromAddress string
}

// NewLogSender returns a LogSender writing to log.
func NewLogSender(log *slog.Logger, fromAddress string) *LogSender {
	return &LogSender{log: log, fromAddress: fromAddress}
}

// Send never fails.
func (s *LogSender) Send(ctx context.Context, email domain.Email) error {
	s.log.InfoContext(ctx, "email",
		"from", s.fromAddress,
		"to", email.ToAddress,
		"subject", email.Subject,
		"html", email.HTML,
	)
	return nil
}
