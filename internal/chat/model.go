package chat

import (
	"net/http"

	"github.com/aptstay/apartment-booking-backend/internal/pkg/apperror"
)

var (
	ErrDisabled = apperror.New(apperror.KindStoreUnavailable, http.StatusServiceUnavailable, "chat is not configured")
	ErrUpstream = apperror.New(apperror.KindStoreUnavailable, http.StatusBadGateway, "completion API request failed")
)

// Message is one turn of the chat conversation forwarded to the completion API.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
