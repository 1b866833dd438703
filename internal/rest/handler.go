package rest

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/twitchcollab/collab-service/internal/api"
	"github.com/twitchcollab/collab-service/internal/config"
	"github.com/twitchcollab/collab-service/internal/model"
	"github.com/twitchcollab/collab-service/internal/pkg/tx"
)

type Handler struct {
	repository    DBRepo
	hub           RealtimeHub
	platform      PlatformClient
	validator     Validator
	jwtGenerator  JWTGenerator
	webhookSecret string
}

func New(
	repo DBRepo,
	hub RealtimeHub,
	platform PlatformClient,
	validator Validator,
	jwtGenerator JWTGenerator,
	webhookSecret string,
) *Handler {
	return &Handler{
		repository:    repo,
		hub:           hub,
		platform:      platform,
		validator:     validator,
		jwtGenerator:  jwtGenerator,
		webhookSecret: webhookSecret,
	}
}

// SendMessage persists the message, then delivers it. Notification never
// happens before the insert commits, so a client can never render a message
// that a refresh would not show.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	requestID := req.RequestId
	if requestID == "" {
		requestID = model.ConversationKey(senderID, req.ToUserId)
	}

	messageID := uuid.New()
	var message *model.Message
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		if _, err := h.repository.GetOrCreateUser(ctx, senderID); err != nil {
			return fmt.Errorf("failed to ensure sender exists: %v", err)
		}
		if _, err := h.repository.GetOrCreateUser(ctx, req.ToUserId); err != nil {
			return fmt.Errorf("failed to ensure recipient exists: %v", err)
		}

		if err := h.repository.SaveMessage(ctx, messageID, requestID, senderID, req.ToUserId, req.Content); err != nil {
			return err
		}

		var err error
		message, err = h.repository.GetMessage(ctx, messageID)
		if err != nil {
			return fmt.Errorf("failed to hydrate message: %v", err)
		}

		return nil
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to persist message: %v", err))
		h.writeError(w, "failed to send message", http.StatusInternalServerError)
		return
	}

	// Delivery is push-when-present: failures here are silent and the
	// recipient picks the message up on the next fetch.
	if err := h.hub.PushNewMessage(r.Context(), message); err != nil {
		logger.Error(fmt.Sprintf("failed to push message %s: %v", messageID, err))
	}

	h.writeJSON(w, message, http.StatusOK)
}

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessages")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester ID")
		h.writeError(w, "failed to get requester ID", http.StatusInternalServerError)
		return
	}

	messages, err := h.repository.GetUserMessages(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeError(w, "failed to fetch messages", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, messages, http.StatusOK)
}

func (h *Handler) MarkMessageRead(w http.ResponseWriter, r *http.Request, messageID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkMessageRead")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester ID")
		h.writeError(w, "failed to get requester ID", http.StatusInternalServerError)
		return
	}

	id, err := uuid.Parse(messageID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid message id: %v", err))
		h.writeError(w, "invalid message id", http.StatusBadRequest)
		return
	}

	if err := h.repository.MarkMessageRead(r.Context(), id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.writeError(w, "message not found", http.StatusNotFound)
			return
		}
		logger.Error(fmt.Sprintf("failed to mark message read: %v", err))
		h.writeError(w, "failed to mark message read", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.MarkMessageReadResponse{Success: true}, http.StatusOK)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request, userID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetUser")

	user, err := h.repository.GetOrCreateUser(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch user %s: %v", userID, err))
		h.writeError(w, "failed to fetch user", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, user, http.StatusOK)
}

// UpdateUserStatus is the direct status override used by drift correction
// and manual testing. Write-through to the store, then broadcast.
func (h *Handler) UpdateUserStatus(w http.ResponseWriter, r *http.Request, userID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateUserStatus")

	var req api.UpdateUserStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.repository.SetUserLiveStatus(r.Context(), userID, req.IsLive); err != nil {
		logger.Error(fmt.Sprintf("failed to update live status for %s: %v", userID, err))
		h.writeError(w, "failed to update status", http.StatusInternalServerError)
		return
	}

	if err := h.hub.BroadcastStatusUpdate(r.Context(), model.StatusEvent{UserID: userID, IsLive: req.IsLive}); err != nil {
		logger.Error(fmt.Sprintf("failed to broadcast status for %s: %v", userID, err))
	}

	h.writeJSON(w, api.UpdateUserStatusResponse{Success: true}, http.StatusOK)
}

func (h *Handler) GetConnectAccessToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectAccessToken")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, "failed to generate access token", http.StatusInternalServerError)
		return
	}

	response := api.GetConnectAccessTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateRequest")

	var req api.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ownerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get owner ID")
		h.writeError(w, "failed to get owner ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreateRequest(&req); err != nil {
		logger.Error(fmt.Sprintf("request validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("request validation failed: %v", err), http.StatusBadRequest)
		return
	}

	request := &model.CollabRequest{
		ID:          uuid.New(),
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		Language:    req.Language,
		Categories:  req.Categories,
	}

	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		if _, err := h.repository.GetOrCreateUser(ctx, ownerID); err != nil {
			return fmt.Errorf("failed to ensure owner exists: %v", err)
		}

		if err := h.repository.CreateRequest(ctx, request); err != nil {
			return err
		}

		return h.repository.AddRequestCategories(ctx, request.ID, req.Categories)
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to create request: %v", err))
		h.writeError(w, "failed to create request", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, request, http.StatusOK)
}

func (h *Handler) GetRequests(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetRequests")

	filter := model.RequestFilter{
		Category: r.URL.Query().Get("category"),
		Language: r.URL.Query().Get("language"),
		LiveOnly: r.URL.Query().Get("live") == "true",
	}

	requests, err := h.repository.GetRequests(r.Context(), filter)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch requests: %v", err))
		h.writeError(w, "failed to fetch requests", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, requests, http.StatusOK)
}

func (h *Handler) DeleteRequest(w http.ResponseWriter, r *http.Request, requestID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteRequest")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester ID")
		h.writeError(w, "failed to get requester ID", http.StatusInternalServerError)
		return
	}

	id, err := uuid.Parse(requestID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid request id: %v", err))
		h.writeError(w, "invalid request id", http.StatusBadRequest)
		return
	}

	ownerID, err := h.repository.GetRequestOwner(r.Context(), id)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to resolve request owner: %v", err))
		h.writeError(w, "request not found", http.StatusNotFound)
		return
	}

	if ownerID != userID {
		logger.Warn(fmt.Sprintf("user %s attempted to delete request %s owned by %s", userID, requestID, ownerID))
		h.writeError(w, "not the owner of this request", http.StatusForbidden)
		return
	}

	if err := h.repository.DeleteRequest(r.Context(), id); err != nil {
		logger.Error(fmt.Sprintf("failed to delete request: %v", err))
		h.writeError(w, "failed to delete request", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.DeleteRequestResponse{Success: true}, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
