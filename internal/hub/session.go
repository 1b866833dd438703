package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/twitchcollab/collab-service/internal/model"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096

	// Bound on a single checkStatus round against the external platform.
	checkStatusTimeout = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// session is a middleman between one websocket connection and the hub.
type session struct {
	hub *Hub

	conn *websocket.Conn

	// Buffered channel of outbound payloads. mu orders enqueue against
	// closeSend: targeted pushes and checkStatus responses run outside the
	// hub loop and must never hit a closed channel.
	mu     sync.Mutex
	send   chan []byte
	closed bool

	// Set on join; empty until then. Guarded by the registry's lock.
	userID string
}

func newSession(h *Hub, conn *websocket.Conn) *session {
	return &session{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 256),
	}
}

// enqueue hands a payload to the writer without blocking. Slow consumers
// lose the payload; the polling fallback covers them. Returns false once the
// session is closed.
func (s *session) enqueue(payload []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.send <- payload:
		return true
	default:
		return false
	}
}

// closeSend marks the session dead and releases the writer. Idempotent and
// safe against concurrent enqueue.
func (s *session) closeSend() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.send)
}

// detach hands the session back to the hub. When the hub has already shut
// down there is nobody left to receive it.
func (s *session) detach() {
	select {
	case s.hub.unregister <- s:
	case <-s.hub.done:
	}
}

// readPump pumps inbound events from the websocket connection to the hub.
func (s *session) readPump() {
	defer func() {
		s.detach()
		_ = s.conn.Close()
	}()
	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error { return s.conn.SetReadDeadline(time.Now().Add(pongWait)) })

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.hub.logger.Warn(fmt.Sprintf("websocket read error: %v", err))
			}
			break
		}

		var event model.RealtimeEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			s.hub.logger.Warn(fmt.Sprintf("dropping malformed realtime event: %v", err))
			continue
		}

		s.dispatch(event, raw)
	}
}

func (s *session) dispatch(event model.RealtimeEvent, raw []byte) {
	switch event.Event {
	case model.EventJoin:
		var payload model.JoinPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil || payload.UserID == "" {
			s.hub.logger.Warn("dropping join event without userId")
			return
		}
		s.hub.registry.Join(payload.UserID, s)

	case model.EventCheckStatus:
		var payload model.CheckStatusPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil || payload.UserID == "" {
			s.hub.logger.Warn("dropping checkStatus event without userId")
			return
		}
		// External I/O; run off the read loop so the connection stays
		// responsive while the platform call is in flight.
		go s.respondStatus(payload.UserID)

	case model.EventMessage:
		// Minimal direct path: re-broadcast the payload verbatim to every
		// session. The persisted relay lives on the REST surface.
		s.hub.broadcast <- raw

	default:
		s.hub.logger.Warn(fmt.Sprintf("unknown realtime event %q", event.Event))
	}
}

func (s *session) respondStatus(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), checkStatusTimeout)
	defer cancel()

	isLive, err := s.hub.status.Check(ctx, userID)
	if err != nil {
		s.hub.logger.Error(fmt.Sprintf("status check for %s failed: %v", userID, err))
	}

	payload, err := marshalEvent(model.EventStatusResponse, model.StatusEvent{UserID: userID, IsLive: isLive})
	if err != nil {
		s.hub.logger.Error(fmt.Sprintf("failed to marshal statusResponse: %v", err))
		return
	}

	s.enqueue(payload)
}

// writePump pumps payloads from the hub to the websocket connection.
func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()
	for {
		select {
		case payload, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
