package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/staff-chat-service/internal/config"
	"github.com/s21platform/staff-chat-service/internal/model"
	"github.com/s21platform/staff-chat-service/internal/repository/postgres"
	"github.com/s21platform/staff-chat-service/pkg/directid"
)

const maxChannelNameLength = 80

// FindOrCreateDirectChannel returns the display id of the direct channel
// between userA and userB, creating it on first use. Concurrent callers for
// the same pair all get the same channel.
func (s *Service) FindOrCreateDirectChannel(ctx context.Context, userA, userB, requestedBy string) (string, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("FindOrCreateDirectChannel")

	if !directid.ValidParticipant(userA) || !directid.ValidParticipant(userB) {
		return "", validationError("invalid participant id")
	}
	if userA == userB {
		return "", validationError("cannot open a direct channel with yourself")
	}

	low, high := directid.Sort(userA, userB)

	channel, err := s.repository.GetDirectChannel(ctx, low, high)
	if err == nil {
		return channel.DisplayID(), nil
	}
	if !errors.Is(err, postgres.ErrNotFound) {
		return "", fmt.Errorf("failed to look up direct channel: %w", err)
	}

	channel, err = s.createDirectChannel(ctx, low, high, requestedBy)
	if err != nil {
		return "", err
	}
	return channel.DisplayID(), nil
}

// createDirectChannel stores the channel for the sorted pair together with
// both memberships. Losing a creation race re-reads the winner's row.
func (s *Service) createDirectChannel(ctx context.Context, low, high, requestedBy string) (*model.Channel, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	participants, err := s.resolveUsers(ctx, low, high)
	if err != nil {
		return nil, err
	}

	displayID := directid.Key(low, high)
	var channelID string
	err = s.repository.WithTx(ctx, func(ctx context.Context) error {
		for _, participant := range participants {
			if err := s.repository.AddNewUser(ctx, participant); err != nil {
				return fmt.Errorf("failed to store user %s: %w", participant.UserID, err)
			}
		}

		var err error
		channelID, err = s.repository.CreateDirectChannel(ctx, displayID, low, high, requestedBy)
		if err != nil {
			return err
		}

		if err := s.repository.AddChannelMembers(ctx, channelID, []string{low, high}); err != nil {
			return fmt.Errorf("failed to add direct channel members: %w", err)
		}
		return nil
	})

	if errors.Is(err, postgres.ErrConflict) {
		logger.Info(fmt.Sprintf("direct channel %s created concurrently, re-reading", displayID))
		channel, err := s.repository.GetDirectChannel(ctx, low, high)
		if err != nil {
			return nil, fmt.Errorf("failed to re-read direct channel after conflict: %w", err)
		}
		return channel, nil
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create direct channel: %v", err))
		return nil, fmt.Errorf("failed to create direct channel: %w", err)
	}

	return &model.Channel{
		ID:              channelID,
		Name:            displayID,
		Kind:            model.DirectChannelKind,
		ParticipantLow:  &low,
		ParticipantHigh: &high,
		CreatedBy:       requestedBy,
	}, nil
}

// resolveUsers fetches display data for the given staff ids in parallel.
func (s *Service) resolveUsers(ctx context.Context, userIDs ...string) ([]*model.UserInfo, error) {
	users := make([]*model.UserInfo, len(userIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, userID := range userIDs {
		g.Go(func() error {
			display, err := s.identity.ResolveDisplay(gctx, userID)
			if errors.Is(err, model.ErrUserNotFound) {
				return validationError("unknown user %q", userID)
			}
			if err != nil {
				return unavailableError("identity service unavailable", err)
			}
			users[i] = &model.UserInfo{UserID: userID, Nickname: display.Name, AvatarURL: display.AvatarURL}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return users, nil
}

// ListChannelsForUser returns the viewer's channels with unread counts,
// latest activity first.
func (s *Service) ListChannelsForUser(ctx context.Context, userID string) (model.ChannelSummaryList, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("ListChannelsForUser")

	if strings.TrimSpace(userID) == "" {
		return nil, validationError("user id is required")
	}

	summaries, err := s.repository.ListChannelSummaries(ctx, userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list channels: %v", err))
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	return summaries, nil
}

// CreatePublicChannel creates an administrative channel. The creator is
// always a member.
func (s *Service) CreatePublicChannel(ctx context.Context, name, createdBy string, memberIDs []string) (*model.Channel, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("CreatePublicChannel")

	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationError("channel name is required")
	}
	if len([]rune(name)) > maxChannelNameLength {
		return nil, validationError("channel name exceeds %d characters", maxChannelNameLength)
	}
	if directid.IsDirect(name) {
		return nil, validationError("channel name %q is reserved", name)
	}

	members := []string{createdBy}
	seen := map[string]struct{}{createdBy: {}}
	for _, memberID := range memberIDs {
		if !directid.ValidParticipant(memberID) {
			return nil, validationError("invalid member id %q", memberID)
		}
		if _, ok := seen[memberID]; ok {
			continue
		}
		seen[memberID] = struct{}{}
		members = append(members, memberID)
	}

	var channelID string
	err := s.repository.WithTx(ctx, func(ctx context.Context) error {
		var err error
		channelID, err = s.repository.CreatePublicChannel(ctx, name, createdBy)
		if err != nil {
			return err
		}
		return s.repository.AddChannelMembers(ctx, channelID, members)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create public channel: %v", err))
		return nil, fmt.Errorf("failed to create public channel: %w", err)
	}

	channel, err := s.repository.GetChannel(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to read created channel: %w", err)
	}
	return channel, nil
}

// AddChannelMember grants userID access to a public channel. A returning
// member keeps their previous read-state.
func (s *Service) AddChannelMember(ctx context.Context, channelID, userID string) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("AddChannelMember")

	channel, err := s.publicChannel(ctx, channelID)
	if err != nil {
		return err
	}
	if !directid.ValidParticipant(userID) {
		return validationError("invalid member id %q", userID)
	}

	if err := s.repository.AddChannelMembers(ctx, channel.ID, []string{userID}); err != nil {
		logger.Error(fmt.Sprintf("failed to add channel member: %v", err))
		return fmt.Errorf("failed to add channel member: %w", err)
	}
	return nil
}

// RemoveChannelMember hides a public channel from userID. The membership row
// and its read-state are retained.
func (s *Service) RemoveChannelMember(ctx context.Context, channelID, userID string) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("RemoveChannelMember")

	channel, err := s.publicChannel(ctx, channelID)
	if err != nil {
		return err
	}

	err = s.repository.RemoveChannelMember(ctx, channel.ID, userID)
	if errors.Is(err, postgres.ErrNotFound) {
		return notFoundError("user %s is not a member of channel %s", userID, channel.ID)
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to remove channel member: %v", err))
		return fmt.Errorf("failed to remove channel member: %w", err)
	}
	return nil
}

func (s *Service) publicChannel(ctx context.Context, channelID string) (*model.Channel, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	channel, err := s.resolveChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if channel.Kind != model.PublicChannelKind {
		return nil, validationError("membership of direct channels cannot be changed")
	}
	return channel, nil
}
