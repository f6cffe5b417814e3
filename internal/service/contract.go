//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/staff-chat-service/internal/model"
)

type DBRepo interface {
	GetChannel(ctx context.Context, channelID string) (*model.Channel, error)
	GetDirectChannel(ctx context.Context, low, high string) (*model.Channel, error)
	CreateDirectChannel(ctx context.Context, name, low, high, createdBy string) (string, error)
	CreatePublicChannel(ctx context.Context, name, createdBy string) (string, error)
	ListChannelSummaries(ctx context.Context, userID string) (model.ChannelSummaryList, error)
	AddChannelMembers(ctx context.Context, channelID string, userIDs []string) error
	RemoveChannelMember(ctx context.Context, channelID, userID string) error
	IsChannelMember(ctx context.Context, channelID, userID string) (bool, error)
	SetChannelMute(ctx context.Context, channelID, userID string, muted bool) error
	AddNewUser(ctx context.Context, userInfo *model.UserInfo) error

	SaveMessage(ctx context.Context, message *model.Message) error
	GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error)
	GetChannelMessages(ctx context.Context, channelID string, before *model.MessageCursor, limit uint64) (model.MessageList, error)
	UpdateMessageBody(ctx context.Context, messageID uuid.UUID, body string, mentions model.Mentions) (*model.Message, error)
	SoftDeleteMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error)

	MarkRead(ctx context.Context, channelID, userID string, at *time.Time) (time.Time, error)
	CountUnread(ctx context.Context, channelID, userID string) (int64, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type IdentityClient interface {
	ResolveDisplay(ctx context.Context, userID string) (model.UserDisplay, error)
}

type MentionResolver interface {
	Resolve(ctx context.Context, body string) model.Mentions
}

type RecordSearcher interface {
	Search(ctx context.Context, query string) ([]model.RecordRef, error)
}

type MediaClient interface {
	Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (model.Attachment, error)
	Stat(ctx context.Context, attachment model.Attachment) error
}

type Publisher interface {
	Publish(ctx context.Context, topic string, event model.ChannelEvent) error
}
