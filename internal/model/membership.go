package model

import "time"

type ChannelMember struct {
	ChannelID  string     `db:"channel_id"`
	UserID     string     `db:"user_id"`
	LastReadAt time.Time  `db:"last_read_at"`
	JoinedAt   time.Time  `db:"joined_at"`
	Muted      bool       `db:"muted"`
	LeftAt     *time.Time `db:"left_at"`
}

func (m ChannelMember) Active() bool {
	return m.LeftAt == nil
}
