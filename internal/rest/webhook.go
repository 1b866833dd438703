package rest

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/twitchcollab/collab-service/internal/api"
	"github.com/twitchcollab/collab-service/internal/config"
	"github.com/twitchcollab/collab-service/internal/model"
)

const (
	headerMessageID        = "Twitch-Eventsub-Message-Id"
	headerMessageTimestamp = "Twitch-Eventsub-Message-Timestamp"
	headerMessageSignature = "Twitch-Eventsub-Message-Signature"
	headerMessageType      = "Twitch-Eventsub-Message-Type"

	messageTypeNotification = "notification"
	messageTypeVerification = "webhook_callback_verification"
	messageTypeRevocation   = "revocation"

	maxWebhookBodySize = 1 << 20
)

// TwitchWebhook receives EventSub notifications. The platform retries on any
// non-200, so notifications are acknowledged even when processing fails;
// only a bad signature is rejected.
func (h *Handler) TwitchWebhook(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("TwitchWebhook")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodySize))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to read webhook body: %v", err))
		h.writeError(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if !h.verifySignature(r, body) {
		logger.Warn("rejected webhook with invalid signature")
		h.writeError(w, "invalid signature", http.StatusForbidden)
		return
	}

	var notification model.WebhookNotification
	if err := json.Unmarshal(body, &notification); err != nil {
		// Fire-and-forget contract: acknowledge and drop, or the platform
		// will hammer us with retries.
		logger.Warn(fmt.Sprintf("dropping malformed webhook payload: %v", err))
		h.writeJSON(w, api.WebhookAck{Received: true}, http.StatusOK)
		return
	}

	switch r.Header.Get(headerMessageType) {
	case messageTypeVerification:
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(notification.Challenge))
		return

	case messageTypeRevocation:
		logger.Warn(fmt.Sprintf("subscription revoked for %s", notification.Event.BroadcasterUserID))
		h.writeJSON(w, api.WebhookAck{Received: true}, http.StatusOK)
		return
	}

	h.handleStreamNotification(r, notification)
	h.writeJSON(w, api.WebhookAck{Received: true}, http.StatusOK)
}

func (h *Handler) handleStreamNotification(r *http.Request, notification model.WebhookNotification) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)

	userID := notification.Event.BroadcasterUserID
	subscriptionType := notification.Subscription.Type

	if userID == "" || (subscriptionType != model.StreamOnlineEventType && subscriptionType != model.StreamOfflineEventType) {
		logger.Warn(fmt.Sprintf("dropping webhook with unexpected shape: type=%q broadcaster=%q", subscriptionType, userID))
		return
	}

	isLive := subscriptionType == model.StreamOnlineEventType

	// Store first, then broadcast: if the push fails the store stays correct
	// and the next checkStatus self-heals the client view.
	if err := h.repository.SetUserLiveStatus(r.Context(), userID, isLive); err != nil {
		logger.Error(fmt.Sprintf("failed to store live status for %s: %v", userID, err))
		return
	}

	if isLive {
		h.refreshStreamInfo(r.Context(), userID)
	}

	if err := h.hub.BroadcastStatusUpdate(r.Context(), model.StatusEvent{UserID: userID, IsLive: isLive}); err != nil {
		logger.Error(fmt.Sprintf("failed to broadcast status for %s: %v", userID, err))
	}
}

// refreshStreamInfo pulls the current category and title so the browse grid
// shows what the streamer just went live with. Secondary to the status change
// itself, so failures are logged and the stale values kept.
func (h *Handler) refreshStreamInfo(ctx context.Context, userID string) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	info, err := h.platform.GetChannelInfo(ctx, userID)
	if err != nil {
		logger.Warn(fmt.Sprintf("failed to fetch channel info for %s: %v", userID, err))
		return
	}

	if err := h.repository.SetUserStreamInfo(ctx, userID, info.Category, info.Title); err != nil {
		logger.Error(fmt.Sprintf("failed to store stream info for %s: %v", userID, err))
	}
}

func (h *Handler) verifySignature(r *http.Request, body []byte) bool {
	signature := r.Header.Get(headerMessageSignature)
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(h.webhookSecret))
	mac.Write([]byte(r.Header.Get(headerMessageID)))
	mac.Write([]byte(r.Header.Get(headerMessageTimestamp)))
	mac.Write(body)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
