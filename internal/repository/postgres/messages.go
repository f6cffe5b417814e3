package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/s21platform/staff-chat-service/internal/model"
)

var messageColumns = []string{
	"id",
	"channel_id",
	"sender_id",
	"body",
	"attachments",
	"mentions",
	"is_edited",
	"edited_at",
	"is_deleted",
	"created_at",
}

// monotonicNow never goes below the newest created_at already in the channel,
// so ordering by created_at stays non-decreasing even if the clock steps back.
const monotonicNow = "GREATEST(clock_timestamp(), COALESCE((SELECT MAX(created_at) FROM messages WHERE channel_id = ?), '-infinity'::timestamptz))"

// SaveMessage inserts message and fills in the server-assigned creation time.
func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns("id", "channel_id", "sender_id", "body", "attachments", "mentions", "created_at").
		Values(
			message.ID,
			message.ChannelID,
			message.SenderID,
			message.Body,
			message.Attachments,
			message.Mentions,
			sq.Expr(monotonicNow, message.ChannelID),
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	var createdAt time.Time
	if err := r.Chk(ctx).GetContext(ctx, &createdAt, query, args...); err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}
	message.CreatedAt = createdAt

	return nil
}

func (r *Repository) GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	if err := r.Chk(ctx).GetContext(ctx, &message, query, args...); err != nil {
		return nil, notFound(err)
	}
	return &message, nil
}

// GetChannelMessages returns up to limit non-deleted messages, newest first,
// strictly after before in that order when it is set.
func (r *Repository) GetChannelMessages(ctx context.Context, channelID string, before *model.MessageCursor, limit uint64) (model.MessageList, error) {
	query, args, err := channelMessagesQuery(channelID, before, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	messages := make(model.MessageList, 0)
	if err := r.Chk(ctx).SelectContext(ctx, &messages, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get channel messages: %w", err)
	}
	return messages, nil
}

// channelMessagesQuery compares a cursor with an id as the (created_at, id)
// pair, matching the sort order, so rows sharing a timestamp are not skipped
// across pages.
func channelMessagesQuery(channelID string, before *model.MessageCursor, limit uint64) (string, []interface{}, error) {
	queryBuilder := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{
			"channel_id": channelID,
			"is_deleted": false,
		}).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit)

	switch {
	case before == nil:
	case before.ID != nil:
		queryBuilder = queryBuilder.Where(sq.Expr("(created_at, id) < (?, ?)", before.CreatedAt, *before.ID))
	default:
		queryBuilder = queryBuilder.Where(sq.Lt{"created_at": before.CreatedAt})
	}

	return queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
}

// UpdateMessageBody replaces the body and mentions of a live message and marks
// it edited. created_at is untouched, so ordering and unread status do not change.
func (r *Repository) UpdateMessageBody(ctx context.Context, messageID uuid.UUID, body string, mentions model.Mentions) (*model.Message, error) {
	query, args, err := sq.Update("messages").
		Set("body", body).
		Set("mentions", mentions).
		Set("is_edited", true).
		Set("edited_at", sq.Expr("clock_timestamp()")).
		Where(sq.Eq{
			"id":         messageID,
			"is_deleted": false,
		}).
		Suffix("RETURNING " + strings.Join(messageColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	if err := r.Chk(ctx).GetContext(ctx, &message, query, args...); err != nil {
		return nil, notFound(err)
	}
	return &message, nil
}

// SoftDeleteMessage flags the message deleted; the row is kept.
func (r *Repository) SoftDeleteMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error) {
	query, args, err := sq.Update("messages").
		Set("is_deleted", true).
		Where(sq.Eq{"id": messageID}).
		Suffix("RETURNING " + strings.Join(messageColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	if err := r.Chk(ctx).GetContext(ctx, &message, query, args...); err != nil {
		return nil, notFound(err)
	}
	return &message, nil
}
