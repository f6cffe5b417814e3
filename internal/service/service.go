package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/staff-chat-service/internal/config"
	"github.com/s21platform/staff-chat-service/internal/model"
	"github.com/s21platform/staff-chat-service/internal/repository/postgres"
	"github.com/s21platform/staff-chat-service/pkg/directid"
)

const maxAttachments = 10

type Service struct {
	repository DBRepo
	identity   IdentityClient
	mentions   MentionResolver
	records    RecordSearcher
	media      MediaClient
	publisher  Publisher

	topic           string
	publishTimeout  time.Duration
	maxBodyLength   int
	defaultPageSize int
	maxPageSize     int

	// dispatch runs publish jobs off the request path.
	dispatch func(job func())
}

func New(
	cfg *config.Config,
	repo DBRepo,
	identity IdentityClient,
	mentions MentionResolver,
	records RecordSearcher,
	media MediaClient,
	publisher Publisher,
) *Service {
	return &Service{
		repository:      repo,
		identity:        identity,
		mentions:        mentions,
		records:         records,
		media:           media,
		publisher:       publisher,
		topic:           cfg.Realtime.Topic,
		publishTimeout:  cfg.Chat.PublishTimeout,
		maxBodyLength:   cfg.Chat.MaxBodyLength,
		defaultPageSize: cfg.Chat.DefaultPageSize,
		maxPageSize:     cfg.Chat.MaxPageSize,
		dispatch:        func(job func()) { go job() },
	}
}

// resolveChannel accepts either a storage id or a direct display id.
func (s *Service) resolveChannel(ctx context.Context, channelID string) (*model.Channel, error) {
	channel, err := s.lookupChannel(ctx, channelID)
	if errors.Is(err, postgres.ErrNotFound) {
		return nil, validationError("unknown channel %q", channelID)
	}
	return channel, err
}

// lookupChannel is resolveChannel without the not-found translation.
func (s *Service) lookupChannel(ctx context.Context, channelID string) (*model.Channel, error) {
	var (
		channel *model.Channel
		err     error
	)

	switch {
	case directid.IsDirect(channelID):
		low, high, parseErr := directid.Parse(channelID)
		if parseErr != nil {
			return nil, validationError("malformed channel id %q", channelID)
		}
		channel, err = s.repository.GetDirectChannel(ctx, low, high)
	default:
		if _, parseErr := uuid.Parse(channelID); parseErr != nil {
			return nil, validationError("unknown channel %q", channelID)
		}
		channel, err = s.repository.GetChannel(ctx, channelID)
	}

	if errors.Is(err, postgres.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	return channel, nil
}

// sendChannel resolves the target of a new message. A direct channel that
// has no row yet is created when the sender is one of its pair.
func (s *Service) sendChannel(ctx context.Context, channelID, senderID string) (*model.Channel, error) {
	channel, err := s.lookupChannel(ctx, channelID)
	if err == nil {
		if err := s.requireMember(ctx, channel, senderID); err != nil {
			return nil, err
		}
		return channel, nil
	}
	if !errors.Is(err, postgres.ErrNotFound) {
		return nil, err
	}
	if !directid.IsDirect(channelID) {
		return nil, validationError("unknown channel %q", channelID)
	}

	low, high, _ := directid.Parse(channelID)
	pair := model.Channel{Kind: model.DirectChannelKind, ParticipantLow: &low, ParticipantHigh: &high}
	if !pair.HasParticipant(senderID) {
		return nil, validationError("unknown channel %q", channelID)
	}
	return s.createDirectChannel(ctx, low, high, senderID)
}

func (s *Service) requireMember(ctx context.Context, channel *model.Channel, userID string) error {
	isMember, err := s.repository.IsChannelMember(ctx, channel.ID, userID)
	if err != nil {
		return fmt.Errorf("failed to check channel membership: %w", err)
	}
	if !isMember {
		return forbiddenError("user is not a member of channel %s", channel.DisplayID())
	}
	return nil
}

// memberChannel resolves channelID and checks that userID may use it.
func (s *Service) memberChannel(ctx context.Context, channelID, userID string) (*model.Channel, error) {
	channel, err := s.resolveChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, channel, userID); err != nil {
		return nil, err
	}
	return channel, nil
}

func requireAdmin(ctx context.Context) error {
	role, _ := ctx.Value(config.KeyRole).(string)
	if role != config.RoleAdmin {
		return forbiddenError("channel administration requires the %s role", config.RoleAdmin)
	}
	return nil
}
