package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/mail"

	"github.com/go-chi/render"
)

// NewsletterSubscriber adds an email address to the agency's mailing
// list. Implemented by pkg/newsletter against the email-marketing
// provider's REST API.
type NewsletterSubscriber interface {
	Subscribe(ctx context.Context, email string) error
}

// NewsletterHandler handles public newsletter signups
type NewsletterHandler struct {
	subscriber NewsletterSubscriber
}

// NewNewsletterHandler creates a new newsletter signup handler
func NewNewsletterHandler(subscriber NewsletterSubscriber) *NewsletterHandler {
	return &NewsletterHandler{subscriber: subscriber}
}

// SubscribeBody is the request body for a newsletter signup
type SubscribeBody struct {
	Email string `json:"email"`
}

// SubscribeResponse is the response body for a successful signup
type SubscribeResponse struct {
	Subscribed bool `json:"subscribed"`
}

// Subscribe validates the address and forwards it to the mailing-list
// provider. Addresses already on the list succeed silently.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var body SubscribeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "invalid request body", err.Error())
		return
	}

	if _, err := mail.ParseAddress(body.Email); err != nil {
		writeError(w, r, http.StatusBadRequest, CodeValidationError, "invalid email address", "")
		return
	}

	if err := h.subscriber.Subscribe(r.Context(), body.Email); err != nil {
		slog.Error("newsletter signup failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, CodeInternalError, "newsletter signup failed", "")
		return
	}

	render.JSON(w, r, SubscribeResponse{Subscribed: true})
}
