package model

import "github.com/golang-jwt/jwt/v5"

const (
	MessageCreatedEvent = "message.created"
	MessageEditedEvent  = "message.edited"
	MessageDeletedEvent = "message.deleted"
)

// ChannelEvent is what every connected staff client receives on the shared topic.
type ChannelEvent struct {
	Type             string  `json:"type"`
	ChannelID        string  `json:"channel_id"`
	StorageChannelID string  `json:"storage_channel_id"`
	Message          Message `json:"message"`
}

type CentrifugoEvent struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type CentrifugoEventParams struct {
	Channel string       `json:"channel"`
	Data    ChannelEvent `json:"data"`
}

type CentrifugoConnectClaims struct {
	jwt.RegisteredClaims
}

type CentrifugoSubscribeClaims struct {
	jwt.RegisteredClaims

	Channel string `json:"channel"`
	Client  string `json:"client,omitempty"`

	UserID string `json:"user_id"`
}
