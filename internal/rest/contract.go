//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"io"
	"time"

	api "github.com/s21platform/staff-chat-service/internal/generated"
	"github.com/s21platform/staff-chat-service/internal/model"
	"github.com/s21platform/staff-chat-service/internal/service"
)

type ChatService interface {
	FindOrCreateDirectChannel(ctx context.Context, userA, userB, requestedBy string) (string, error)
	ListChannelsForUser(ctx context.Context, userID string) (model.ChannelSummaryList, error)
	CreatePublicChannel(ctx context.Context, name, createdBy string, memberIDs []string) (*model.Channel, error)
	AddChannelMember(ctx context.Context, channelID, userID string) error
	RemoveChannelMember(ctx context.Context, channelID, userID string) error
	SendMessage(ctx context.Context, params service.SendMessageParams) (*model.Message, error)
	EditMessage(ctx context.Context, channelID, messageID, editorID, body string) (*model.Message, error)
	DeleteMessage(ctx context.Context, channelID, messageID, requesterID string) error
	ListMessages(ctx context.Context, channelID, viewerID string, page service.Page) (model.MessageList, error)
	MarkChannelRead(ctx context.Context, userID, channelID string, at *time.Time) (time.Time, error)
	UnreadCount(ctx context.Context, userID, channelID string) (int64, error)
	SetChannelMute(ctx context.Context, userID, channelID string, muted bool) error
	SearchMentionCandidates(ctx context.Context, query string) ([]model.RecordRef, error)
	UploadAttachment(ctx context.Context, filename, contentType string, size int64, body io.Reader) (model.Attachment, error)
}

type Validator interface {
	ValidateOpenDirectChannel(req *api.OpenDirectChannelRequest, requesterID string) error
	ValidateCreatePublicChannel(req *api.CreatePublicChannelRequest) error
	ValidateAddChannelMember(req *api.AddChannelMemberRequest) error
	ValidateSendMessage(req *api.SendMessageRequest) error
	ValidateEditMessage(req *api.EditMessageRequest) error
	ParsePage(params api.ListMessagesParams) (*model.MessageCursor, int, error)
	ParseReadAt(req *api.MarkChannelReadRequest) (*time.Time, error)
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateSubscribeToken(userID, topic string) (string, int64, error)
}
