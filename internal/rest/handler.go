package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/staff-chat-service/internal/config"
	api "github.com/s21platform/staff-chat-service/internal/generated"
	"github.com/s21platform/staff-chat-service/internal/model"
	"github.com/s21platform/staff-chat-service/internal/service"
)

const (
	maxUploadSize     = 25 << 20
	uploadMemoryLimit = 8 << 20
)

type Handler struct {
	service      ChatService
	validator    Validator
	jwtGenerator JWTGenerator
	topic        string
}

func New(svc ChatService, validator Validator, jwtGenerator JWTGenerator, topic string) *Handler {
	return &Handler{
		service:      svc,
		validator:    validator,
		jwtGenerator: jwtGenerator,
		topic:        topic,
	}
}

func (h *Handler) OpenDirectChannel(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("OpenDirectChannel")

	var req api.OpenDirectChannelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester ID")
		h.writeError(w, "failed to get requester ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateOpenDirectChannel(&req, requesterID); err != nil {
		logger.Error(fmt.Sprintf("direct channel validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("direct channel validation failed: %v", err), http.StatusBadRequest)
		return
	}

	channelID, err := h.service.FindOrCreateDirectChannel(r.Context(), requesterID, req.UserId, requesterID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to open direct channel: %v", err))
		h.writeServiceError(w, "failed to open direct channel", err)
		return
	}

	h.writeJSON(w, api.OpenDirectChannelResponse{Id: channelID}, http.StatusOK)
}

func (h *Handler) ListChannels(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListChannels")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	summaries, err := h.service.ListChannelsForUser(r.Context(), userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list channels: %v", err))
		h.writeServiceError(w, "failed to list channels", err)
		return
	}

	channels := make([]api.ChannelSummary, len(summaries))
	for i, summary := range summaries {
		channels[i] = toAPIChannelSummary(summary)
	}

	h.writeJSON(w, api.ListChannelsResponse{Channels: channels}, http.StatusOK)
}

func (h *Handler) CreatePublicChannel(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreatePublicChannel")

	var req api.CreatePublicChannelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	creatorID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get creator ID")
		h.writeError(w, "failed to get creator ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreatePublicChannel(&req); err != nil {
		logger.Error(fmt.Sprintf("channel validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("channel validation failed: %v", err), http.StatusBadRequest)
		return
	}

	var memberIDs []string
	if req.MemberIds != nil {
		memberIDs = *req.MemberIds
	}

	channel, err := h.service.CreatePublicChannel(r.Context(), req.Name, creatorID, memberIDs)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create channel: %v", err))
		h.writeServiceError(w, "failed to create channel", err)
		return
	}

	h.writeJSON(w, api.Channel{
		Id:        channel.DisplayID(),
		StorageId: channel.ID,
		Name:      channel.Name,
		Kind:      channel.Kind,
		CreatedBy: channel.CreatedBy,
		CreatedAt: formatTime(channel.CreatedAt),
	}, http.StatusCreated)
}

func (h *Handler) AddChannelMember(w http.ResponseWriter, r *http.Request, channelId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AddChannelMember")

	var req api.AddChannelMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateAddChannelMember(&req); err != nil {
		logger.Error(fmt.Sprintf("member validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("member validation failed: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.service.AddChannelMember(r.Context(), channelId, req.UserId); err != nil {
		logger.Error(fmt.Sprintf("failed to add channel member: %v", err))
		h.writeServiceError(w, "failed to add channel member", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RemoveChannelMember(w http.ResponseWriter, r *http.Request, channelId string, userId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RemoveChannelMember")

	if err := h.service.RemoveChannelMember(r.Context(), channelId, userId); err != nil {
		logger.Error(fmt.Sprintf("failed to remove channel member: %v", err))
		h.writeServiceError(w, "failed to remove channel member", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request, channelId string, params api.ListMessagesParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListMessages")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to find uuid")
		h.writeError(w, "failed to find uuid", http.StatusInternalServerError)
		return
	}

	before, limit, err := h.validator.ParsePage(params)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid pagination: %v", err))
		h.writeError(w, fmt.Sprintf("invalid pagination: %v", err), http.StatusBadRequest)
		return
	}

	messages, err := h.service.ListMessages(r.Context(), channelId, userUUID, service.Page{Before: before, Limit: limit})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeServiceError(w, "failed to fetch messages", err)
		return
	}

	apiMessages := make([]api.Message, len(messages))
	for i, msg := range messages {
		apiMessages[i] = toAPIMessage(msg)
	}

	h.writeJSON(w, api.ListMessagesResponse{Messages: apiMessages}, http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request, channelId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	var attachments []model.Attachment
	if req.Attachments != nil {
		for _, attachment := range *req.Attachments {
			attachments = append(attachments, model.Attachment{
				URL:      attachment.Url,
				Kind:     attachment.Kind,
				Filename: attachment.Filename,
			})
		}
	}

	message, err := h.service.SendMessage(r.Context(), service.SendMessageParams{
		ChannelID:   channelId,
		SenderID:    senderID,
		Body:        req.Body,
		Attachments: attachments,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		h.writeServiceError(w, "failed to send message", err)
		return
	}

	h.writeJSON(w, toAPIMessage(*message), http.StatusCreated)
}

func (h *Handler) EditMessage(w http.ResponseWriter, r *http.Request, channelId string, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("EditMessage")

	var req api.EditMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	editorID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get editor ID")
		h.writeError(w, "failed to get editor ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateEditMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	message, err := h.service.EditMessage(r.Context(), channelId, messageId, editorID, req.Body)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to edit message: %v", err))
		h.writeServiceError(w, "failed to edit message", err)
		return
	}

	h.writeJSON(w, toAPIMessage(*message), http.StatusOK)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request, channelId string, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteMessage")

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester ID")
		h.writeError(w, "failed to get requester ID", http.StatusInternalServerError)
		return
	}

	if err := h.service.DeleteMessage(r.Context(), channelId, messageId, requesterID); err != nil {
		logger.Error(fmt.Sprintf("failed to delete message: %v", err))
		h.writeServiceError(w, "failed to delete message", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MarkChannelRead(w http.ResponseWriter, r *http.Request, channelId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkChannelRead")

	var req api.MarkChannelReadRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error(fmt.Sprintf("failed to decode request: %v", err))
			h.writeError(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	readAt, err := h.validator.ParseReadAt(&req)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid read_at: %v", err))
		h.writeError(w, fmt.Sprintf("invalid read_at: %v", err), http.StatusBadRequest)
		return
	}

	lastReadAt, err := h.service.MarkChannelRead(r.Context(), userUUID, channelId, readAt)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to mark channel read: %v", err))
		h.writeServiceError(w, "failed to mark channel read", err)
		return
	}

	h.writeJSON(w, api.MarkChannelReadResponse{LastReadAt: formatTime(lastReadAt)}, http.StatusOK)
}

func (h *Handler) GetUnreadCount(w http.ResponseWriter, r *http.Request, channelId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetUnreadCount")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	count, err := h.service.UnreadCount(r.Context(), userUUID, channelId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to count unread: %v", err))
		h.writeServiceError(w, "failed to count unread", err)
		return
	}

	h.writeJSON(w, api.GetUnreadCountResponse{ChannelId: channelId, UnreadCount: count}, http.StatusOK)
}

func (h *Handler) SetChannelMute(w http.ResponseWriter, r *http.Request, channelId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SetChannelMute")

	var req api.SetChannelMuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if err := h.service.SetChannelMute(r.Context(), userUUID, channelId, req.Muted); err != nil {
		logger.Error(fmt.Sprintf("failed to set mute: %v", err))
		h.writeServiceError(w, "failed to set mute", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SearchMentionCandidates(w http.ResponseWriter, r *http.Request, params api.SearchMentionCandidatesParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SearchMentionCandidates")

	refs, err := h.service.SearchMentionCandidates(r.Context(), params.Q)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to search mention candidates: %v", err))
		h.writeServiceError(w, "failed to search mention candidates", err)
		return
	}

	candidates := make([]api.MentionCandidate, len(refs))
	for i, ref := range refs {
		candidates[i] = api.MentionCandidate{Id: ref.ID, Label: ref.Label}
	}

	h.writeJSON(w, api.SearchMentionCandidatesResponse{Candidates: candidates}, http.StatusOK)
}

func (h *Handler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UploadAttachment")

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(uploadMemoryLimit); err != nil {
		logger.Error(fmt.Sprintf("failed to parse upload: %v", err))
		h.writeError(w, "invalid upload", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Error(fmt.Sprintf("missing file part: %v", err))
		h.writeError(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close() //nolint:errcheck // .

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	attachment, err := h.service.UploadAttachment(r.Context(), header.Filename, contentType, header.Size, file)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to upload attachment: %v", err))
		h.writeServiceError(w, "failed to upload attachment", err)
		return
	}

	h.writeJSON(w, api.Attachment{
		Url:      attachment.URL,
		Kind:     attachment.Kind,
		Filename: attachment.Filename,
	}, http.StatusCreated)
}

func (h *Handler) GetConnectToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate access token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated access token for user %s", userUUID))

	h.writeJSON(w, api.GetConnectTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, http.StatusOK)
}

func (h *Handler) GetSubscribeToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetSubscribeToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(userUUID, h.topic)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate subscribe token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated subscribe token for user %s, topic %s", userUUID, h.topic))

	h.writeJSON(w, api.GetSubscribeTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Channel:   h.topic,
	}, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func toAPIMessage(msg model.Message) api.Message {
	attachments := make([]api.Attachment, len(msg.Attachments))
	for i, attachment := range msg.Attachments {
		attachments[i] = api.Attachment{Url: attachment.URL, Kind: attachment.Kind, Filename: attachment.Filename}
	}

	mentions := make([]api.Mention, len(msg.Mentions))
	for i, mention := range msg.Mentions {
		mentions[i] = api.Mention{ExternalId: mention.ExternalID, Label: mention.Label}
	}

	var editedAt *string
	if msg.EditedAt != nil {
		timestamp := formatTime(*msg.EditedAt)
		editedAt = &timestamp
	}

	var sender *api.Sender
	if msg.Sender != nil {
		sender = &api.Sender{Name: msg.Sender.Name, AvatarUrl: msg.Sender.AvatarURL}
	}

	return api.Message{
		Id:          msg.ID.String(),
		ChannelId:   msg.ChannelID,
		SenderId:    msg.SenderID,
		Sender:      sender,
		Body:        msg.Body,
		Attachments: attachments,
		Mentions:    mentions,
		IsEdited:    msg.IsEdited,
		EditedAt:    editedAt,
		CreatedAt:   formatTime(msg.CreatedAt),
	}
}

func toAPIChannelSummary(summary model.ChannelSummary) api.ChannelSummary {
	channel := api.ChannelSummary{
		Id:          summary.DisplayID(),
		StorageId:   summary.StorageID,
		Name:        summary.DisplayName(),
		Kind:        summary.Kind,
		UnreadCount: summary.UnreadCount,
		Muted:       summary.Muted,
		AvatarUrl:   summary.CompanionAvatarURL,
	}

	if summary.LastMessageID != nil && summary.LastMessageAt != nil {
		preview := &api.MessagePreview{
			Id:        *summary.LastMessageID,
			CreatedAt: formatTime(*summary.LastMessageAt),
		}
		if summary.LastMessageBody != nil {
			preview.Body = *summary.LastMessageBody
		}
		if summary.LastMessageSenderID != nil {
			preview.SenderId = *summary.LastMessageSenderID
		}
		channel.LastMessage = preview
	}

	return channel
}

// formatTime keeps microseconds so timestamps round-trip as pagination cursors.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, message string, err error) {
	var domainErr *service.DomainError
	if !errors.As(err, &domainErr) {
		h.writeError(w, fmt.Sprintf("%s: %v", message, err), http.StatusInternalServerError)
		return
	}

	status := http.StatusInternalServerError
	switch domainErr.Code {
	case service.CodeValidation:
		status = http.StatusBadRequest
	case service.CodeNotFound:
		status = http.StatusNotFound
	case service.CodeForbidden:
		status = http.StatusForbidden
	case service.CodeUnavailable:
		status = http.StatusServiceUnavailable
	}
	h.writeError(w, fmt.Sprintf("%s: %v", message, domainErr), status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
