package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/staff-chat-service/internal/config"
	"github.com/s21platform/staff-chat-service/internal/model"
	"github.com/s21platform/staff-chat-service/internal/repository/postgres"
)

type SendMessageParams struct {
	ChannelID   string
	SenderID    string
	Body        string
	Attachments []model.Attachment
}

type Page struct {
	Before *model.MessageCursor
	Limit  int
}

// SendMessage validates and persists a message, then broadcasts it without
// waiting for delivery.
func (s *Service) SendMessage(ctx context.Context, params SendMessageParams) (*model.Message, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("SendMessage")

	if err := s.validateContent(params.Body, params.Attachments); err != nil {
		return nil, err
	}

	channel, err := s.sendChannel(ctx, params.ChannelID, params.SenderID)
	if err != nil {
		return nil, err
	}

	var sender model.UserDisplay
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		display, err := s.identity.ResolveDisplay(gctx, params.SenderID)
		if err != nil {
			return unavailableError("failed to resolve sender", err)
		}
		sender = display
		return nil
	})
	for _, attachment := range params.Attachments {
		g.Go(func() error {
			err := s.media.Stat(gctx, attachment)
			if errors.Is(err, model.ErrAttachmentNotFound) {
				return validationError("attachment %q does not exist", attachment.URL)
			}
			if err != nil {
				return unavailableError("media service unavailable", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("failed to prepare message: %v", err))
		return nil, err
	}

	message := &model.Message{
		ID:          uuid.New(),
		ChannelID:   channel.ID,
		SenderID:    params.SenderID,
		Sender:      &sender,
		Body:        params.Body,
		Attachments: model.Attachments(params.Attachments),
		Mentions:    s.mentions.Resolve(ctx, params.Body),
	}
	if message.Attachments == nil {
		message.Attachments = model.Attachments{}
	}

	if err := s.repository.SaveMessage(ctx, message); err != nil {
		logger.Error(fmt.Sprintf("failed to save message: %v", err))
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	s.broadcast(ctx, model.MessageCreatedEvent, channel, *message)

	return message, nil
}

// EditMessage replaces the body of a message sent by editorID.
func (s *Service) EditMessage(ctx context.Context, channelID, messageID, editorID, body string) (*model.Message, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("EditMessage")

	channel, message, err := s.ownMessage(ctx, channelID, messageID, editorID)
	if err != nil {
		return nil, err
	}
	if err := s.validateContent(body, message.Attachments); err != nil {
		return nil, err
	}

	edited, err := s.repository.UpdateMessageBody(ctx, message.ID, body, s.mentions.Resolve(ctx, body))
	if errors.Is(err, postgres.ErrNotFound) {
		return nil, notFoundError("message %s not found", messageID)
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to edit message: %v", err))
		return nil, fmt.Errorf("failed to edit message: %w", err)
	}

	edited.Sender = s.hydrateSenders(ctx, model.MessageList{*edited})[0].Sender
	s.broadcast(ctx, model.MessageEditedEvent, channel, *edited)

	return edited, nil
}

// DeleteMessage soft-deletes a message sent by requesterID.
func (s *Service) DeleteMessage(ctx context.Context, channelID, messageID, requesterID string) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("DeleteMessage")

	channel, message, err := s.ownMessage(ctx, channelID, messageID, requesterID)
	if err != nil {
		return err
	}

	deleted, err := s.repository.SoftDeleteMessage(ctx, message.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to delete message: %v", err))
		return fmt.Errorf("failed to delete message: %w", err)
	}

	s.broadcast(ctx, model.MessageDeletedEvent, channel, *deleted)

	return nil
}

// ListMessages returns a newest-first page of non-deleted messages.
func (s *Service) ListMessages(ctx context.Context, channelID, viewerID string, page Page) (model.MessageList, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("ListMessages")

	channel, err := s.memberChannel(ctx, channelID, viewerID)
	if err != nil {
		return nil, err
	}

	limit := page.Limit
	switch {
	case limit < 0:
		return nil, validationError("limit must not be negative")
	case limit == 0:
		limit = s.defaultPageSize
	case limit > s.maxPageSize:
		limit = s.maxPageSize
	}

	messages, err := s.repository.GetChannelMessages(ctx, channel.ID, page.Before, uint64(limit))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	return s.hydrateSenders(ctx, messages), nil
}

func (s *Service) validateContent(body string, attachments []model.Attachment) error {
	if strings.TrimSpace(body) == "" && len(attachments) == 0 {
		return validationError("message must have a body or at least one attachment")
	}
	if len([]rune(body)) > s.maxBodyLength {
		return validationError("body exceeds maximum length of %d characters", s.maxBodyLength)
	}
	if len(attachments) > maxAttachments {
		return validationError("at most %d attachments are allowed", maxAttachments)
	}
	for _, attachment := range attachments {
		if strings.TrimSpace(attachment.URL) == "" {
			return validationError("attachment url is required")
		}
		if !model.IsKnownAttachmentKind(attachment.Kind) {
			return validationError("attachment kind %q is not supported", attachment.Kind)
		}
	}
	return nil
}

// ownMessage loads a live message of channelID and checks that userID sent it.
func (s *Service) ownMessage(ctx context.Context, channelID, messageID, userID string) (*model.Channel, *model.Message, error) {
	id, err := uuid.Parse(messageID)
	if err != nil {
		return nil, nil, validationError("malformed message id %q", messageID)
	}

	channel, err := s.memberChannel(ctx, channelID, userID)
	if err != nil {
		return nil, nil, err
	}

	message, err := s.repository.GetMessage(ctx, id)
	if errors.Is(err, postgres.ErrNotFound) {
		return nil, nil, notFoundError("message %s not found", messageID)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get message: %w", err)
	}
	if message.ChannelID != channel.ID || message.IsDeleted {
		return nil, nil, notFoundError("message %s not found", messageID)
	}
	if message.SenderID != userID {
		return nil, nil, forbiddenError("only the sender may change message %s", messageID)
	}
	return channel, message, nil
}

// hydrateSenders fills in sender display data. Lookup failures leave the
// sender empty; the listing is still served.
func (s *Service) hydrateSenders(ctx context.Context, messages model.MessageList) model.MessageList {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	senderIDs := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		if _, ok := seen[message.SenderID]; ok {
			continue
		}
		seen[message.SenderID] = struct{}{}
		senderIDs = append(senderIDs, message.SenderID)
	}

	var (
		mu      sync.Mutex
		g       errgroup.Group
		senders = make(map[string]*model.UserDisplay, len(senderIDs))
	)
	for _, senderID := range senderIDs {
		g.Go(func() error {
			display, err := s.identity.ResolveDisplay(ctx, senderID)
			if err != nil {
				logger.Warn(fmt.Sprintf("failed to resolve sender %s: %v", senderID, err))
				return nil
			}
			mu.Lock()
			senders[senderID] = &display
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	for i := range messages {
		messages[i].Sender = senders[messages[i].SenderID]
	}
	return messages
}
