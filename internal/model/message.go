package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type MessageList []Message

type Message struct {
	ID          uuid.UUID    `db:"id" json:"id"`
	ChannelID   string       `db:"channel_id" json:"channel_id"`
	SenderID    string       `db:"sender_id" json:"sender_id"`
	Sender      *UserDisplay `db:"-" json:"sender,omitempty"`
	Body        string       `db:"body" json:"body"`
	Attachments Attachments  `db:"attachments" json:"attachments"`
	Mentions    Mentions     `db:"mentions" json:"mentions"`
	IsEdited    bool         `db:"is_edited" json:"is_edited"`
	EditedAt    *time.Time   `db:"edited_at" json:"edited_at,omitempty"`
	IsDeleted   bool         `db:"is_deleted" json:"is_deleted"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
}

// CountsAsUnreadFor reports whether the message contributes to userID's unread
// count given their read watermark. The sender never sees their own message as
// unread, whatever the watermark says.
func (m Message) CountsAsUnreadFor(userID string, lastReadAt time.Time) bool {
	return !m.IsDeleted && m.SenderID != userID && m.CreatedAt.After(lastReadAt)
}

// MessageCursor is a position in a newest-first listing. Without an ID it
// selects everything strictly older than CreatedAt.
type MessageCursor struct {
	CreatedAt time.Time
	ID        *uuid.UUID
}

type Attachments []Attachment

func (a Attachments) Value() (driver.Value, error) {
	return marshalJSON(a, len(a))
}

func (a *Attachments) Scan(src any) error {
	return scanJSON(src, a)
}

type Mentions []Mention

func (m Mentions) Value() (driver.Value, error) {
	return marshalJSON(m, len(m))
}

func (m *Mentions) Scan(src any) error {
	return scanJSON(src, m)
}

// marshalJSON renders a jsonb column value as text; lib/pq passes strings
// through untouched.
func marshalJSON(v any, n int) (driver.Value, error) {
	if n == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func scanJSON(src any, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported json column type %T", src)
	}
}
