package model

import (
	"time"

	"github.com/google/uuid"
)

type CollabRequestList []CollabRequest

type CollabRequest struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"userId"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Language    string    `db:"language" json:"language"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`

	Categories []string `db:"-" json:"categories"`
	User       *User    `db:"-" json:"user,omitempty"`
}

type RequestFilter struct {
	Category string
	Language string
	LiveOnly bool
}
