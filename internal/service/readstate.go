package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/staff-chat-service/internal/config"
	"github.com/s21platform/staff-chat-service/internal/repository/postgres"
)

// MarkChannelRead moves userID's read watermark forward to at, or to now when
// at is nil. An older timestamp is accepted and changes nothing. The stored
// watermark is returned.
func (s *Service) MarkChannelRead(ctx context.Context, userID, channelID string, at *time.Time) (time.Time, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("MarkChannelRead")

	channel, err := s.resolveChannel(ctx, channelID)
	if err != nil {
		return time.Time{}, err
	}

	lastReadAt, err := s.repository.MarkRead(ctx, channel.ID, userID, at)
	if errors.Is(err, postgres.ErrNotFound) {
		return time.Time{}, forbiddenError("user is not a member of channel %s", channel.DisplayID())
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to mark channel read: %v", err))
		return time.Time{}, fmt.Errorf("failed to mark channel read: %w", err)
	}
	return lastReadAt, nil
}

// UnreadCount counts messages in channelID that userID has not read, never
// including their own.
func (s *Service) UnreadCount(ctx context.Context, userID, channelID string) (int64, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UnreadCount")

	channel, err := s.memberChannel(ctx, channelID, userID)
	if err != nil {
		return 0, err
	}

	count, err := s.repository.CountUnread(ctx, channel.ID, userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to count unread: %v", err))
		return 0, fmt.Errorf("failed to count unread: %w", err)
	}
	return count, nil
}

// SetChannelMute only changes how the client presents the badge; muted
// channels keep counting unread messages.
func (s *Service) SetChannelMute(ctx context.Context, userID, channelID string, muted bool) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("SetChannelMute")

	channel, err := s.resolveChannel(ctx, channelID)
	if err != nil {
		return err
	}

	err = s.repository.SetChannelMute(ctx, channel.ID, userID, muted)
	if errors.Is(err, postgres.ErrNotFound) {
		return forbiddenError("user is not a member of channel %s", channel.DisplayID())
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to set mute: %v", err))
		return fmt.Errorf("failed to set mute: %w", err)
	}
	return nil
}
