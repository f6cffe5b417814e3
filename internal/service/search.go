package service

import (
	"context"
	"fmt"
	"strings"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/staff-chat-service/internal/config"
	"github.com/s21platform/staff-chat-service/internal/model"
)

// SearchMentionCandidates offers records the sender can pick for an @[label]
// marker.
func (s *Service) SearchMentionCandidates(ctx context.Context, query string) ([]model.RecordRef, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("SearchMentionCandidates")

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, validationError("query is required")
	}

	refs, err := s.records.Search(ctx, query)
	if err != nil {
		logger.Error(fmt.Sprintf("record search failed: %v", err))
		return nil, unavailableError("record search unavailable", err)
	}
	if refs == nil {
		refs = []model.RecordRef{}
	}
	return refs, nil
}
