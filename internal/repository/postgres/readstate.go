package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// forwardOnly clamps the requested watermark to the server clock and never
// lets it move backwards.
const forwardOnly = "GREATEST(last_read_at, LEAST(COALESCE(?::timestamptz, clock_timestamp()), clock_timestamp()))"

// MarkRead advances the read watermark of userID in channelID to at, or to the
// current time when at is nil. It returns the stored watermark, which may be
// newer than at.
func (r *Repository) MarkRead(ctx context.Context, channelID, userID string, at *time.Time) (time.Time, error) {
	query, args, err := sq.Update("channel_members").
		Set("last_read_at", sq.Expr(forwardOnly, at)).
		Where(sq.Eq{
			"channel_id": channelID,
			"user_id":    userID,
			"left_at":    nil,
		}).
		Suffix("RETURNING last_read_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to build sql query: %v", err)
	}

	var lastReadAt time.Time
	if err := r.Chk(ctx).GetContext(ctx, &lastReadAt, query, args...); err != nil {
		return time.Time{}, notFound(err)
	}
	return lastReadAt, nil
}

// CountUnread counts messages in channelID newer than userID's watermark that
// were sent by someone else and are not deleted.
func (r *Repository) CountUnread(ctx context.Context, channelID, userID string) (int64, error) {
	query, args, err := countUnreadQuery(channelID, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var count int64
	if err := r.Chk(ctx).GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count unread: %w", err)
	}
	return count, nil
}

func countUnreadQuery(channelID, userID string) (string, []interface{}, error) {
	return sq.Select("COUNT(*)").
		From("messages m").
		Join("channel_members cm ON cm.channel_id = m.channel_id").
		Where(sq.Eq{
			"m.channel_id": channelID,
			"cm.user_id":   userID,
			"m.is_deleted": false,
		}).
		Where("m.created_at > cm.last_read_at").
		Where("m.sender_id <> cm.user_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
