// Package client is the consumer-side contract of the realtime channel: a
// presence/message cache that applies server pushes idempotently, plus a
// websocket client that keeps it fed across reconnects.
package client

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/twitchcollab/collab-service/internal/model"
)

// Conversation is derived, never persisted: the messages exchanged with one
// other party, grouped client-side.
type Conversation struct {
	OtherUser   model.UserRef
	LastMessage model.Message
	UnreadCount int
}

type Cache struct {
	mu            sync.RWMutex
	currentUserID string
	statuses      map[string]bool
	messages      []model.Message
	seen          map[uuid.UUID]int
}

func NewCache(currentUserID string) *Cache {
	return &Cache{
		currentUserID: currentUserID,
		statuses:      make(map[string]bool),
		seen:          make(map[uuid.UUID]int),
	}
}

// ApplyStatus unconditionally overwrites the cached value. Idempotent by
// value, so duplicate or re-ordered deliveries of the same final state are
// harmless, matching the server's last-write-wins policy.
func (c *Cache) ApplyStatus(event model.StatusEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statuses[event.UserID] = event.IsLive
}

func (c *Cache) IsLive(userID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.statuses[userID]
}

// AddMessage appends the message unless its id is already present. Reports
// whether the message was new. Guards against double delivery from the
// sender's own echo plus the targeted push.
func (c *Cache) AddMessage(message model.Message) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.seen[message.ID]; ok {
		return false
	}

	c.seen[message.ID] = len(c.messages)
	c.messages = append(c.messages, message)
	return true
}

func (c *Cache) MarkAsRead(messageID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx, ok := c.seen[messageID]; ok {
		c.messages[idx].Read = true
	}
}

// UnreadCount counts messages addressed to the current user that have not
// been read. Read state never applies to the sender's own copies.
func (c *Cache) UnreadCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, message := range c.messages {
		if !message.Read && message.ToUser.ID == c.currentUserID {
			count++
		}
	}
	return count
}

func (c *Cache) Messages() []model.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Conversations groups cached messages by the other party, newest activity
// first.
func (c *Cache) Conversations() []Conversation {
	c.mu.RLock()
	defer c.mu.RUnlock()

	byUser := make(map[string]*Conversation)
	for _, message := range c.messages {
		other := message.FromUser
		if message.FromUser.ID == c.currentUserID {
			other = message.ToUser
		}

		conv, ok := byUser[other.ID]
		if !ok {
			conv = &Conversation{OtherUser: other}
			byUser[other.ID] = conv
		}

		if conv.LastMessage.ID == uuid.Nil || message.CreatedAt.After(conv.LastMessage.CreatedAt) {
			conv.LastMessage = message
		}
		if !message.Read && message.ToUser.ID == c.currentUserID {
			conv.UnreadCount++
		}
	}

	conversations := make([]Conversation, 0, len(byUser))
	for _, conv := range byUser {
		conversations = append(conversations, *conv)
	}
	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.CreatedAt.After(conversations[j].LastMessage.CreatedAt)
	})

	return conversations
}
