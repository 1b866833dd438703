// Package api holds the request/response contract of the HTTP surface.
package api

type Error struct {
	Error string `json:"error"`
}

type SendMessageRequest struct {
	Content   string `json:"content"`
	ToUserId  string `json:"toUserId"`
	RequestId string `json:"requestId,omitempty"`
}

type MarkMessageReadResponse struct {
	Success bool `json:"success"`
}

type UpdateUserStatusRequest struct {
	IsLive bool `json:"isLive"`
}

type UpdateUserStatusResponse struct {
	Success bool `json:"success"`
}

type WebhookAck struct {
	Received bool `json:"received"`
}

type CreateRequestRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Categories  []string `json:"categories"`
}

type DeleteRequestResponse struct {
	Success bool `json:"success"`
}

type GetConnectAccessTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
