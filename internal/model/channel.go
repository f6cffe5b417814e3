package model

import (
	"time"

	"github.com/s21platform/staff-chat-service/pkg/directid"
)

const (
	PublicChannelKind = "public"
	DirectChannelKind = "direct"
)

type Channel struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	Kind            string    `db:"kind"`
	ParticipantLow  *string   `db:"participant_low"`
	ParticipantHigh *string   `db:"participant_high"`
	CreatedBy       string    `db:"created_by"`
	CreatedAt       time.Time `db:"created_at"`
}

// DisplayID is the client-facing identity: the derivable pair key for direct
// channels, the storage id otherwise.
func (c Channel) DisplayID() string {
	return displayID(c.ID, c.Kind, c.ParticipantLow, c.ParticipantHigh)
}

func (c Channel) HasParticipant(userID string) bool {
	if c.Kind != DirectChannelKind || c.ParticipantLow == nil || c.ParticipantHigh == nil {
		return false
	}
	return *c.ParticipantLow == userID || *c.ParticipantHigh == userID
}

type ChannelSummaryList []ChannelSummary

type ChannelSummary struct {
	StorageID           string     `db:"id"`
	Name                string     `db:"name"`
	Kind                string     `db:"kind"`
	ParticipantLow      *string    `db:"participant_low"`
	ParticipantHigh     *string    `db:"participant_high"`
	CompanionName       *string    `db:"companion_name"`
	CompanionAvatarURL  *string    `db:"companion_avatar_url"`
	Muted               bool       `db:"muted"`
	LastReadAt          time.Time  `db:"last_read_at"`
	CreatedAt           time.Time  `db:"created_at"`
	UnreadCount         int64      `db:"unread_count"`
	LastMessageID       *string    `db:"last_message_id"`
	LastMessageBody     *string    `db:"last_message_body"`
	LastMessageSenderID *string    `db:"last_message_sender_id"`
	LastMessageAt       *time.Time `db:"last_message_at"`
}

func (s ChannelSummary) DisplayID() string {
	return displayID(s.StorageID, s.Kind, s.ParticipantLow, s.ParticipantHigh)
}

// DisplayName prefers the companion's nickname for direct channels.
func (s ChannelSummary) DisplayName() string {
	if s.Kind == DirectChannelKind && s.CompanionName != nil && *s.CompanionName != "" {
		return *s.CompanionName
	}
	return s.Name
}

func displayID(storageID, kind string, low, high *string) string {
	if kind == DirectChannelKind && low != nil && high != nil {
		return directid.Key(*low, *high)
	}
	return storageID
}
