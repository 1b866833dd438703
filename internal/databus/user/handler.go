//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=handler.go
package user

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/twitchcollab/collab-service/internal/config"
	"github.com/twitchcollab/collab-service/internal/model"
)

type DBRepo interface {
	UpdateUserDisplayName(ctx context.Context, userID, displayName string) error
	UpdateUserAvatar(ctx context.Context, userID, avatarLink string) error
}

// Handler applies platform-originated profile updates so the display fields
// denormalized onto messages and requests stay current.
type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{
		repository: repo,
	}
}

func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserProfileHandler")

	var msg model.UserProfileUpdate
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal profile update: %v", err))
		return
	}

	if msg.UserID == "" {
		logger.Warn("dropping profile update without user id")
		return
	}

	if msg.DisplayName != "" {
		if err := h.repository.UpdateUserDisplayName(ctx, msg.UserID, msg.DisplayName); err != nil {
			logger.Error(fmt.Sprintf("failed to update display name for %s: %v", msg.UserID, err))
		}
	}

	if msg.ProfileImageURL != "" {
		if err := h.repository.UpdateUserAvatar(ctx, msg.UserID, msg.ProfileImageURL); err != nil {
			logger.Error(fmt.Sprintf("failed to update avatar for %s: %v", msg.UserID, err))
		}
	}
}
