// Package inbox keeps one viewer's local view of the staff chat: the messages
// pushed over the shared topic and an optimistic unread badge per channel.
//
// Pushed events only ever lower latency. The authoritative unread counts come
// from the channel listing, and Reconcile folds them in without dropping
// increments for messages the listing could not have seen yet.
package inbox

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/staff-chat-service/internal/model"
)

// Summary is the part of a channel listing entry the inbox reconciles against.
type Summary struct {
	ChannelID     string
	UnreadCount   int64
	LastMessageAt *time.Time
	LastReadAt    *time.Time
}

type channelState struct {
	messages   []model.Message
	index      map[uuid.UUID]int
	unread     int64
	optimistic map[uuid.UUID]time.Time
	lastReadAt time.Time
}

func newChannelState() *channelState {
	return &channelState{
		index:      make(map[uuid.UUID]int),
		optimistic: make(map[uuid.UUID]time.Time),
	}
}

type Inbox struct {
	mu          sync.Mutex
	viewerID    string
	openChannel string
	channels    map[string]*channelState
}

func New(viewerID string) *Inbox {
	return &Inbox{
		viewerID: viewerID,
		channels: make(map[string]*channelState),
	}
}

// Open marks channelID as the conversation on screen and clears its badge.
// The caller is expected to mark the channel read on the server as well.
func (i *Inbox) Open(channelID string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.openChannel = channelID
	st := i.state(channelID)
	st.unread = 0
	st.optimistic = make(map[uuid.UUID]time.Time)
	for _, msg := range st.messages {
		st.advance(msg.CreatedAt)
	}
}

// Close leaves the currently open conversation.
func (i *Inbox) Close() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.openChannel = ""
}

// AddLocal records the viewer's own message right after sending it, before
// the echo arrives on the topic.
func (i *Inbox) AddLocal(channelID string, msg model.Message) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.state(channelID).upsert(msg)
}

// Handle applies one event received on the shared topic.
func (i *Inbox) Handle(ev model.ChannelEvent) {
	i.mu.Lock()
	defer i.mu.Unlock()

	msg := ev.Message
	own := msg.SenderID == i.viewerID
	open := ev.ChannelID == i.openChannel

	switch ev.Type {
	case model.MessageCreatedEvent:
		if own && open {
			return
		}
		st := i.state(ev.ChannelID)
		if !st.upsert(msg) {
			return
		}
		if open {
			st.advance(msg.CreatedAt)
			return
		}
		if msg.CountsAsUnreadFor(i.viewerID, st.lastReadAt) {
			st.unread++
			st.optimistic[msg.ID] = msg.CreatedAt
		}
	case model.MessageEditedEvent:
		i.state(ev.ChannelID).upsert(msg)
	case model.MessageDeletedEvent:
		st := i.state(ev.ChannelID)
		st.remove(msg.ID)
		if _, ok := st.optimistic[msg.ID]; ok {
			delete(st.optimistic, msg.ID)
			if st.unread > 0 {
				st.unread--
			}
		}
	}
}

// Reconcile folds an authoritative channel listing into the local badges.
// Optimistic increments for messages newer than the listing's last message
// survive; everything the listing already accounts for is replaced by its count.
func (i *Inbox) Reconcile(summaries []Summary) {
	i.mu.Lock()
	defer i.mu.Unlock()

	for _, s := range summaries {
		st := i.state(s.ChannelID)
		if s.LastReadAt != nil {
			st.advance(*s.LastReadAt)
		}
		if s.ChannelID == i.openChannel {
			st.unread = 0
			st.optimistic = make(map[uuid.UUID]time.Time)
			continue
		}

		for id, createdAt := range st.optimistic {
			if s.LastMessageAt != nil && !createdAt.After(*s.LastMessageAt) {
				delete(st.optimistic, id)
			}
		}
		st.unread = s.UnreadCount + int64(len(st.optimistic))
	}
}

func (i *Inbox) Unread(channelID string) int64 {
	i.mu.Lock()
	defer i.mu.Unlock()

	if st, ok := i.channels[channelID]; ok {
		return st.unread
	}
	return 0
}

// Messages returns a copy of the local messages of channelID in arrival order.
func (i *Inbox) Messages(channelID string) []model.Message {
	i.mu.Lock()
	defer i.mu.Unlock()

	st, ok := i.channels[channelID]
	if !ok {
		return nil
	}
	out := make([]model.Message, len(st.messages))
	copy(out, st.messages)
	return out
}

func (i *Inbox) state(channelID string) *channelState {
	st, ok := i.channels[channelID]
	if !ok {
		st = newChannelState()
		i.channels[channelID] = st
	}
	return st
}

// advance moves the local read watermark forward only.
func (s *channelState) advance(at time.Time) {
	if at.After(s.lastReadAt) {
		s.lastReadAt = at
	}
}

// upsert appends msg or replaces the stored copy; it reports whether msg was new.
func (s *channelState) upsert(msg model.Message) bool {
	if idx, ok := s.index[msg.ID]; ok {
		s.messages[idx] = msg
		return false
	}
	s.index[msg.ID] = len(s.messages)
	s.messages = append(s.messages, msg)
	return true
}

func (s *channelState) remove(id uuid.UUID) {
	idx, ok := s.index[id]
	if !ok {
		return
	}
	s.messages = append(s.messages[:idx], s.messages[idx+1:]...)
	delete(s.index, id)
	for i := idx; i < len(s.messages); i++ {
		s.index[s.messages[i].ID] = i
	}
}
