package server

import (
	"context"
	"log/slog"

	"github.com/oakmere/gatehouse/internal/controllers"
	"github.com/oakmere/gatehouse/internal/pubsub"
)

// WireAudit subscribes to every controller snapshot stream and logs the
// phase transitions. Snapshots never contain passwords, so the payload size
// is the only thing withheld from the log.
func (s *Server) WireAudit(ctx context.Context) error {
	topics := []string{
		controllers.TopicLoginState,
		controllers.TopicResetState,
		controllers.TopicForgotState,
	}
	for _, topic := range topics {
		if err := s.bus.Subscribe(ctx, topic, logSnapshot); err != nil {
			return err
		}
	}
	return nil
}

func logSnapshot(ctx context.Context, msg pubsub.Message) error {
	slog.Info("Form state transition",
		"topic", msg.Topic,
		"form", msg.Form,
		"phase", msg.Metadata["phase"],
	)
	return nil
}
