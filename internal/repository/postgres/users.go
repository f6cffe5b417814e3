package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/s21platform/staff-chat-service/internal/model"
)

// AddNewUser stores or refreshes the display directory entry of a staff member.
func (r *Repository) AddNewUser(ctx context.Context, userInfo *model.UserInfo) error {
	query, args, err := sq.Insert("users").
		Columns("id", "nickname", "avatar_url").
		Values(userInfo.UserID, userInfo.Nickname, userInfo.AvatarURL).
		Suffix("ON CONFLICT (id) DO UPDATE SET nickname = EXCLUDED.nickname, avatar_url = EXCLUDED.avatar_url, updated_at = NOW()").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) UpdateUserNickname(ctx context.Context, userUUID, newNickname string) error {
	query, args, err := sq.Update("users").
		Set("nickname", newNickname).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userUUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateUserAvatar(ctx context.Context, userUUID, avatarLink string) error {
	query, args, err := sq.Update("users").
		Set("avatar_url", avatarLink).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userUUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}
