package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AttachRoutes mounts the authenticated API surface on r. The webhook route
// is mounted separately because it authenticates via HMAC, not bearer token.
func (h *Handler) AttachRoutes(r chi.Router) {
	r.Post("/api/messages", h.SendMessage)
	r.Get("/api/messages", h.GetMessages)
	r.Patch("/api/messages/{message_id}/read", func(w http.ResponseWriter, r *http.Request) {
		h.MarkMessageRead(w, r, chi.URLParam(r, "message_id"))
	})

	r.Get("/api/users/{user_id}", func(w http.ResponseWriter, r *http.Request) {
		h.GetUser(w, r, chi.URLParam(r, "user_id"))
	})

	r.Get("/api/requests", h.GetRequests)
	r.Post("/api/requests", h.CreateRequest)
	r.Delete("/api/requests/{request_id}", func(w http.ResponseWriter, r *http.Request) {
		h.DeleteRequest(w, r, chi.URLParam(r, "request_id"))
	})

	r.Get("/api/ws/token", h.GetConnectAccessToken)
}

// AttachUnauthenticatedRoutes mounts the platform-facing surface.
func (h *Handler) AttachUnauthenticatedRoutes(r chi.Router) {
	r.Post("/webhooks/twitch", h.TwitchWebhook)
	r.Put("/api/users/{user_id}/status", func(w http.ResponseWriter, r *http.Request) {
		h.UpdateUserStatus(w, r, chi.URLParam(r, "user_id"))
	})
}
