// Package hub is the realtime channel connecting browser sessions to the
// server process. One websocket per session; four logical channels
// multiplexed over it (join, checkStatus, status pushes, message pushes).
package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/twitchcollab/collab-service/internal/model"
)

//go:generate mockgen -destination=mock_contract_test.go -package=hub -source=hub.go

// StatusChecker reconciles one user's live status against the external
// platform and returns the authoritative value.
type StatusChecker interface {
	Check(ctx context.Context, userID string) (bool, error)
}

// ConnectTokenValidator gates the websocket upgrade.
type ConnectTokenValidator interface {
	ValidateConnectToken(tokenString string) (*model.ConnectClaims, error)
}

type Hub struct {
	registry *Registry

	// sessions is owned by the Run goroutine; mutated only via the
	// register/unregister channels.
	sessions   map[*session]struct{}
	register   chan *session
	unregister chan *session
	broadcast  chan []byte

	// done is closed when Run returns so pumps never block handing a dead
	// session back to a hub that stopped listening.
	done chan struct{}

	status StatusChecker
	tokens ConnectTokenValidator
	logger logger_lib.LoggerInterface
}

func New(status StatusChecker, tokens ConnectTokenValidator, logger logger_lib.LoggerInterface) *Hub {
	return &Hub{
		registry:   NewRegistry(),
		sessions:   make(map[*session]struct{}),
		register:   make(chan *session),
		unregister: make(chan *session),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
		status:     status,
		tokens:     tokens,
		logger:     logger,
	}
}

// Run owns the session set until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) error {
	defer close(h.done)

	for {
		select {
		case s := <-h.register:
			h.sessions[s] = struct{}{}

		case s := <-h.unregister:
			if _, ok := h.sessions[s]; ok {
				delete(h.sessions, s)
				h.registry.Leave(s)
				s.closeSend()
			}

		case payload := <-h.broadcast:
			for s := range h.sessions {
				if !s.enqueue(payload) {
					delete(h.sessions, s)
					h.registry.Leave(s)
					s.closeSend()
				}
			}

		case <-ctx.Done():
			for s := range h.sessions {
				delete(h.sessions, s)
				h.registry.Leave(s)
				s.closeSend()
			}
			return ctx.Err()
		}
	}
}

// BroadcastStatusUpdate fans a status change out to every connected session.
// All clients render grids of other streamers, so everyone needs every change.
func (h *Hub) BroadcastStatusUpdate(ctx context.Context, event model.StatusEvent) error {
	payload, err := marshalEvent(model.EventStatusUpdate, event)
	if err != nil {
		return fmt.Errorf("failed to marshal statusUpdate: %w", err)
	}

	select {
	case h.broadcast <- payload:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PushNewMessage delivers a persisted message to every session of both
// parties: the recipient's tabs and the sender's other tabs.
func (h *Hub) PushNewMessage(ctx context.Context, message *model.Message) error {
	payload, err := marshalEvent(model.EventNewMessage, message)
	if err != nil {
		return fmt.Errorf("failed to marshal new_message: %w", err)
	}

	h.sendToUsers([]string{message.FromUser.ID, message.ToUser.ID}, payload)
	return nil
}

func (h *Hub) sendToUsers(userIDs []string, payload []byte) {
	delivered := make(map[*session]struct{})
	for _, userID := range userIDs {
		for _, s := range h.registry.SessionsFor(userID) {
			if _, dup := delivered[s]; dup {
				continue
			}
			delivered[s] = struct{}{}
			s.enqueue(payload)
		}
	}
}

// ServeWS upgrades an HTTP request to a hub session. The connect token issued
// by the REST layer is required; join itself carries no further check.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	tokenString := r.Header.Get("Authorization")
	if tokenString == "" {
		tokenString = r.URL.Query().Get("token")
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	if tokenString == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if _, err := h.tokens.ValidateConnectToken(tokenString); err != nil {
		h.logger.Warn(fmt.Sprintf("rejected websocket upgrade: %v", err))
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error(fmt.Sprintf("websocket upgrade failed: %v", err))
		return
	}

	s := newSession(h, conn)
	select {
	case h.register <- s:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go s.writePump()
	go s.readPump()
}

func marshalEvent(event string, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(model.RealtimeEvent{Event: event, Data: raw})
}
