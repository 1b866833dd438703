package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	logger_lib "github.com/s21platform/logger-lib"

	"github.com/twitchcollab/collab-service/internal/model"
)

const (
	reconnectBaseDelay = time.Second
	reconnectMaxDelay  = 30 * time.Second
)

// Client maintains one hub connection on behalf of a user, re-joining and
// re-checking tracked streamers after every reconnect to self-heal from
// events missed while disconnected.
type Client struct {
	wsURL  string
	token  string
	cache  *Cache
	logger logger_lib.LoggerInterface

	mu      sync.Mutex
	tracked map[string]struct{}
	conn    *websocket.Conn

	// writeMu serializes all writes to conn. Track writes from caller
	// goroutines while Run writes on (re)connect; gorilla supports only
	// one concurrent writer.
	writeMu sync.Mutex
}

func New(wsURL, token string, cache *Cache, logger logger_lib.LoggerInterface) *Client {
	return &Client{
		wsURL:   wsURL,
		token:   token,
		cache:   cache,
		logger:  logger,
		tracked: make(map[string]struct{}),
	}
}

// Track marks userIDs as rendered, requesting their current status and
// keeping them in the re-check set used after reconnects.
func (c *Client) Track(userIDs ...string) {
	c.mu.Lock()
	conn := c.conn
	for _, id := range userIDs {
		c.tracked[id] = struct{}{}
	}
	c.mu.Unlock()

	if conn != nil {
		for _, id := range userIDs {
			_ = c.emit(conn, model.EventCheckStatus, model.CheckStatusPayload{UserID: id})
		}
	}
}

// Run dials the hub and keeps the connection alive until ctx is cancelled,
// reconnecting with capped exponential backoff.
func (c *Client) Run(ctx context.Context) error {
	delay := reconnectBaseDelay
	for {
		if err := c.connectAndRead(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Warn(fmt.Sprintf("hub connection lost: %v", err))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay *= 2
		if delay > reconnectMaxDelay {
			delay = reconnectMaxDelay
		}
	}
}

func (c *Client) connectAndRead(ctx context.Context) error {
	header := http.Header{}
	header.Add("Authorization", "Bearer "+c.token)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.wsURL, header)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	c.mu.Lock()
	c.conn = conn
	tracked := make([]string, 0, len(c.tracked))
	for id := range c.tracked {
		tracked = append(tracked, id)
	}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
	}()

	// Presence is rebuilt from zero on the server; announce ourselves and
	// re-run outstanding status checks every time we (re)connect.
	if err := c.emit(conn, model.EventJoin, model.JoinPayload{UserID: c.cache.currentUserID}); err != nil {
		return err
	}
	for _, id := range tracked {
		if err := c.emit(conn, model.EventCheckStatus, model.CheckStatusPayload{UserID: id}); err != nil {
			return err
		}
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		c.apply(raw)
	}
}

func (c *Client) apply(raw []byte) {
	var event model.RealtimeEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		c.logger.Warn(fmt.Sprintf("dropping malformed event: %v", err))
		return
	}

	switch event.Event {
	case model.EventStatusUpdate, model.EventStatusResponse:
		var status model.StatusEvent
		if err := json.Unmarshal(event.Data, &status); err != nil {
			c.logger.Warn(fmt.Sprintf("dropping malformed status event: %v", err))
			return
		}
		c.cache.ApplyStatus(status)

	case model.EventNewMessage:
		var message model.Message
		if err := json.Unmarshal(event.Data, &message); err != nil {
			c.logger.Warn(fmt.Sprintf("dropping malformed message event: %v", err))
			return
		}
		c.cache.AddMessage(message)
	}
}

func (c *Client) emit(conn *websocket.Conn, event string, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return conn.WriteJSON(model.RealtimeEvent{Event: event, Data: raw})
}
