//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/twitchcollab/collab-service/internal/api"
	"github.com/twitchcollab/collab-service/internal/model"
)

type DBRepo interface {
	GetOrCreateUser(ctx context.Context, userID string) (*model.User, error)
	SetUserLiveStatus(ctx context.Context, userID string, isLive bool) error
	SetUserStreamInfo(ctx context.Context, userID string, category, title *string) error
	SaveMessage(ctx context.Context, messageID uuid.UUID, requestID, fromUserID, toUserID, content string) error
	GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error)
	GetUserMessages(ctx context.Context, userID string) (*model.MessageList, error)
	MarkMessageRead(ctx context.Context, messageID uuid.UUID, recipientID string) error
	CreateRequest(ctx context.Context, request *model.CollabRequest) error
	AddRequestCategories(ctx context.Context, requestID uuid.UUID, categories []string) error
	GetRequests(ctx context.Context, filter model.RequestFilter) (*model.CollabRequestList, error)
	GetRequestOwner(ctx context.Context, requestID uuid.UUID) (string, error)
	DeleteRequest(ctx context.Context, requestID uuid.UUID) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type PlatformClient interface {
	GetChannelInfo(ctx context.Context, userID string) (*model.StreamInfo, error)
}

type RealtimeHub interface {
	BroadcastStatusUpdate(ctx context.Context, event model.StatusEvent) error
	PushNewMessage(ctx context.Context, message *model.Message) error
}

type Validator interface {
	ValidateSendMessage(req *api.SendMessageRequest) error
	ValidateCreateRequest(req *api.CreateRequestRequest) error
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
}
