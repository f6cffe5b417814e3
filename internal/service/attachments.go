package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/staff-chat-service/internal/config"
	"github.com/s21platform/staff-chat-service/internal/model"
)

// UploadAttachment stores a file with the media host and returns the
// descriptor to put on a message.
func (s *Service) UploadAttachment(ctx context.Context, filename, contentType string, size int64, body io.Reader) (model.Attachment, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UploadAttachment")

	filename = strings.TrimSpace(filename)
	if filename == "" {
		return model.Attachment{}, validationError("filename is required")
	}
	if size <= 0 {
		return model.Attachment{}, validationError("file is empty")
	}

	attachment, err := s.media.Upload(ctx, filename, contentType, size, body)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to upload attachment: %v", err))
		return model.Attachment{}, unavailableError("media service unavailable", err)
	}
	return attachment, nil
}
