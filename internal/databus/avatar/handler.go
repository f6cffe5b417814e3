package avatar

import (
	"context"
	"fmt"

	"google.golang.org/protobuf/proto"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/user-proto/user-proto/new_avatar_register"

	"github.com/s21platform/staff-chat-service/internal/config"
)

// Handler consumes avatar registrations published by the user service.
type Handler struct {
	dbR   DBRepo
	cache IdentityCache
}

func New(dbR DBRepo, cache IdentityCache) *Handler {
	return &Handler{dbR: dbR, cache: cache}
}

func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("AvatarUpdate")

	var msg new_avatar_register.NewAvatarRegister
	if err := proto.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal avatar message: %v", err))
		return err
	}
	if msg.GetUuid() == "" || msg.GetLink() == "" {
		logger.Warn("skipping avatar message without uuid or link")
		return nil
	}

	if err := h.dbR.UpdateUserAvatar(ctx, msg.GetUuid(), msg.GetLink()); err != nil {
		logger.Error(fmt.Sprintf("failed to update avatar: %v", err))
		return err
	}

	if err := h.cache.Evict(ctx, msg.GetUuid()); err != nil {
		logger.Warn(fmt.Sprintf("failed to evict identity cache: %v", err))
	}

	return nil
}
