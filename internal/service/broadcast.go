package service

import (
	"context"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/staff-chat-service/internal/config"
	"github.com/s21platform/staff-chat-service/internal/model"
)

// broadcast publishes the event on the shared staff topic. It returns at once;
// a failed publish is logged and dropped since clients recover the state from
// the next listing.
func (s *Service) broadcast(ctx context.Context, eventType string, channel *model.Channel, message model.Message) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	event := model.ChannelEvent{
		Type:             eventType,
		ChannelID:        channel.DisplayID(),
		StorageChannelID: channel.ID,
		Message:          message,
	}

	detached := context.WithoutCancel(ctx)
	s.dispatch(func() {
		ctx, cancel := context.WithTimeout(detached, s.publishTimeout)
		defer cancel()

		if err := s.publisher.Publish(ctx, s.topic, event); err != nil {
			logger.Warn(fmt.Sprintf("failed to publish %s for message %s: %v", eventType, message.ID, err))
		}
	})
}
