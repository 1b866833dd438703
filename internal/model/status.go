package model

// StatusEvent is the (userId, isLive) pair carried over the realtime hub.
// It is transient, never stored; User.IsLive is the durable record.
type StatusEvent struct {
	UserID string `json:"userId"`
	IsLive bool   `json:"isLive"`
}

const (
	StreamOnlineEventType  = "stream.online"
	StreamOfflineEventType = "stream.offline"
)

// WebhookNotification is the minimal EventSub payload this service consumes.
type WebhookNotification struct {
	Challenge    string              `json:"challenge,omitempty"`
	Subscription WebhookSubscription `json:"subscription"`
	Event        WebhookEvent        `json:"event"`
}

type WebhookSubscription struct {
	Type string `json:"type"`
}

type WebhookEvent struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
}

// StreamInfo is the category/title pair shown on the browse grid. Nil fields
// mean the platform reported nothing.
type StreamInfo struct {
	Category *string
	Title    *string
}
