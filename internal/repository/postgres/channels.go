package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/s21platform/staff-chat-service/internal/model"
)

var channelColumns = []string{
	"id",
	"name",
	"kind",
	"participant_low",
	"participant_high",
	"created_by",
	"created_at",
}

const (
	unreadCountColumn = `(SELECT COUNT(*) FROM messages m
		WHERE m.channel_id = c.id
			AND m.created_at > cm.last_read_at
			AND m.sender_id <> cm.user_id
			AND NOT m.is_deleted) AS unread_count`

	lastMessageLateral = `LATERAL (SELECT m.id, m.body, m.sender_id, m.created_at FROM messages m
		WHERE m.channel_id = c.id AND NOT m.is_deleted
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT 1) lm ON TRUE`

	companionJoin = `users u ON c.kind = 'direct'
		AND u.id = CASE WHEN c.participant_low = cm.user_id THEN c.participant_high ELSE c.participant_low END`
)

func (r *Repository) GetChannel(ctx context.Context, channelID string) (*model.Channel, error) {
	query, args, err := sq.Select(channelColumns...).
		From("channels").
		Where(sq.Eq{"id": channelID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var channel model.Channel
	if err := r.Chk(ctx).GetContext(ctx, &channel, query, args...); err != nil {
		return nil, notFound(err)
	}
	return &channel, nil
}

// GetDirectChannel looks a direct channel up by its sorted participant pair.
func (r *Repository) GetDirectChannel(ctx context.Context, low, high string) (*model.Channel, error) {
	query, args, err := sq.Select(channelColumns...).
		From("channels").
		Where(sq.Eq{
			"kind":             model.DirectChannelKind,
			"participant_low":  low,
			"participant_high": high,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var channel model.Channel
	if err := r.Chk(ctx).GetContext(ctx, &channel, query, args...); err != nil {
		return nil, notFound(err)
	}
	return &channel, nil
}

// CreateDirectChannel inserts the row for the sorted pair (low, high). When a
// concurrent insert for the same pair won, it returns ErrConflict.
func (r *Repository) CreateDirectChannel(ctx context.Context, name, low, high, createdBy string) (string, error) {
	query, args, err := sq.Insert("channels").
		Columns("name", "kind", "participant_low", "participant_high", "created_by").
		Values(name, model.DirectChannelKind, low, high, createdBy).
		Suffix("ON CONFLICT (participant_low, participant_high) WHERE kind = 'direct' DO NOTHING RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var channelID string
	err = r.Chk(ctx).GetContext(ctx, &channelID, query, args...)
	if errors.Is(notFound(err), ErrNotFound) || isUniqueViolation(err) {
		return "", ErrConflict
	}
	if err != nil {
		return "", fmt.Errorf("failed to create direct channel: %w", err)
	}

	return channelID, nil
}

func (r *Repository) CreatePublicChannel(ctx context.Context, name, createdBy string) (string, error) {
	query, args, err := sq.Insert("channels").
		Columns("name", "kind", "created_by").
		Values(name, model.PublicChannelKind, createdBy).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var channelID string
	if err := r.Chk(ctx).GetContext(ctx, &channelID, query, args...); err != nil {
		return "", fmt.Errorf("failed to create public channel: %w", err)
	}
	return channelID, nil
}

// ListChannelSummaries returns every channel userID is an active member of,
// with the viewer's unread count and the latest non-deleted message. Channels
// with messages come first, newest activity first; empty ones follow by
// creation time, oldest last.
func (r *Repository) ListChannelSummaries(ctx context.Context, userID string) (model.ChannelSummaryList, error) {
	query, args, err := sq.Select(
		"c.id",
		"c.name",
		"c.kind",
		"c.participant_low",
		"c.participant_high",
		"c.created_at",
		"cm.muted",
		"cm.last_read_at",
		"u.nickname AS companion_name",
		"u.avatar_url AS companion_avatar_url",
		unreadCountColumn,
		"lm.id AS last_message_id",
		"lm.body AS last_message_body",
		"lm.sender_id AS last_message_sender_id",
		"lm.created_at AS last_message_at",
	).
		From("channel_members cm").
		Join("channels c ON c.id = cm.channel_id").
		LeftJoin(companionJoin).
		LeftJoin(lastMessageLateral).
		Where(sq.Eq{
			"cm.user_id": userID,
			"cm.left_at": nil,
		}).
		OrderBy("lm.created_at DESC NULLS LAST", "c.created_at DESC", "c.id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var summaries model.ChannelSummaryList
	if err := r.Chk(ctx).SelectContext(ctx, &summaries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	return summaries, nil
}

// AddChannelMembers grants access to channelID. A returning member keeps the
// read-state they had when they left.
func (r *Repository) AddChannelMembers(ctx context.Context, channelID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}

	query := sq.Insert("channel_members").
		Columns("channel_id", "user_id").
		Suffix("ON CONFLICT (channel_id, user_id) DO UPDATE SET left_at = NULL").
		PlaceholderFormat(sq.Dollar)

	for _, userID := range userIDs {
		query = query.Values(channelID, userID)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err := r.Chk(ctx).ExecContext(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to add channel members: %w", err)
	}
	return nil
}

// RemoveChannelMember hides the channel from userID but keeps the row and its
// read-state.
func (r *Repository) RemoveChannelMember(ctx context.Context, channelID, userID string) error {
	query, args, err := sq.Update("channel_members").
		Set("left_at", sq.Expr("clock_timestamp()")).
		Where(sq.Eq{
			"channel_id": channelID,
			"user_id":    userID,
			"left_at":    nil,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to remove channel member: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetChannelMember returns the membership row, including ones that have left.
func (r *Repository) GetChannelMember(ctx context.Context, channelID, userID string) (*model.ChannelMember, error) {
	query, args, err := sq.Select("channel_id", "user_id", "last_read_at", "joined_at", "muted", "left_at").
		From("channel_members").
		Where(sq.Eq{
			"channel_id": channelID,
			"user_id":    userID,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var member model.ChannelMember
	if err := r.Chk(ctx).GetContext(ctx, &member, query, args...); err != nil {
		return nil, notFound(err)
	}
	return &member, nil
}

func (r *Repository) IsChannelMember(ctx context.Context, channelID, userID string) (bool, error) {
	query, args, err := sq.
		Select("COUNT(*) > 0").
		From("channel_members").
		Where(sq.Eq{
			"channel_id": channelID,
			"user_id":    userID,
			"left_at":    nil,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var isMember bool
	if err := r.Chk(ctx).GetContext(ctx, &isMember, query, args...); err != nil {
		return false, fmt.Errorf("failed to check channel membership: %v", err)
	}
	return isMember, nil
}

func (r *Repository) SetChannelMute(ctx context.Context, channelID, userID string, muted bool) error {
	query, args, err := sq.Update("channel_members").
		Set("muted", muted).
		Where(sq.Eq{
			"channel_id": channelID,
			"user_id":    userID,
			"left_at":    nil,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set mute: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}
