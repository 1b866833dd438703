package model

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// client -> server
	EventJoin        = "join"
	EventCheckStatus = "checkStatus"
	EventMessage     = "message"

	// server -> client
	EventStatusUpdate   = "statusUpdate"
	EventStatusResponse = "statusResponse"
	EventNewMessage     = "new_message"
)

// RealtimeEvent is the envelope multiplexing the logical channels over a
// single websocket connection. Data is decoded per event kind at the boundary.
type RealtimeEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type JoinPayload struct {
	UserID string `json:"userId"`
}

type CheckStatusPayload struct {
	UserID string `json:"userId"`
}

type ConnectClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"user_id"`
}
