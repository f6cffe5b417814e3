package user

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/staff-chat-service/internal/config"
	"github.com/s21platform/staff-chat-service/internal/model"
)

// Handler applies profile changes to the local display directory and drops
// the cached identity so message senders pick the change up.
type Handler struct {
	dbR   DBRepo
	cache IdentityCache
}

func New(dbR DBRepo, cache IdentityCache) *Handler {
	return &Handler{dbR: dbR, cache: cache}
}

func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserUpdate")

	var update model.UserUpdate
	if err := json.Unmarshal(in, &update); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal user update: %v", err))
		return err
	}
	if update.UserID == "" {
		logger.Warn("skipping user update without uuid")
		return nil
	}

	if update.Nickname != nil {
		if err := h.dbR.UpdateUserNickname(ctx, update.UserID, *update.Nickname); err != nil {
			logger.Error(fmt.Sprintf("failed to update nickname: %v", err))
			return err
		}
	}

	if update.AvatarURL != nil {
		if err := h.dbR.UpdateUserAvatar(ctx, update.UserID, *update.AvatarURL); err != nil {
			logger.Error(fmt.Sprintf("failed to update avatar: %v", err))
			return err
		}
	}

	if err := h.cache.Evict(ctx, update.UserID); err != nil {
		logger.Warn(fmt.Sprintf("failed to evict identity cache: %v", err))
	}

	logger.Info(fmt.Sprintf("applied profile update for user %s", update.UserID))
	return nil
}
