package model

import "errors"

type UserDisplay struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type UserInfo struct {
	UserID    string `db:"id" json:"id"`
	Nickname  string `db:"nickname" json:"nickname"`
	AvatarURL string `db:"avatar_url" json:"avatar_url"`
}

// UserUpdate is the payload of a user-profile change event.
type UserUpdate struct {
	UserID    string  `json:"uuid"`
	Nickname  *string `json:"nickname,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// ErrUserNotFound is returned by the identity directory for unknown staff ids.
var ErrUserNotFound = errors.New("user not found")
