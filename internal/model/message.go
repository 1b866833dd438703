package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type MessageList []Message

type Message struct {
	ID        uuid.UUID `json:"id"`
	RequestID string    `json:"requestId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
	FromUser  UserRef   `json:"fromUser"`
	ToUser    UserRef   `json:"toUser"`
}

// ConversationKey returns the synthetic request id used when a message is not
// tied to a collaboration request. The pair is sorted so both directions of a
// conversation map to the same key.
func ConversationKey(userA, userB string) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return fmt.Sprintf("dm:%s:%s", userA, userB)
}
