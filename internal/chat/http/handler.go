package http

import (
	"net/http"

	"github.com/aptstay/apartment-booking-backend/internal/chat"
	"github.com/aptstay/apartment-booking-backend/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	chatService chat.Service
}

func NewHandler(chatService chat.Service) *Handler {
	return &Handler{chatService: chatService}
}

// Stream handles POST /chat/stream. It forwards the conversation to the
// completion API and streams the generated text back as plain text chunks.
func (h *Handler) Stream(c *gin.Context) {
	var body StreamRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	started := false
	err := h.chatService.Stream(c.Request.Context(), body.ToMessages(), func(delta string) error {
		if !started {
			c.Header("Content-Type", "text/plain; charset=utf-8")
			c.Header("Cache-Control", "no-cache, no-transform")
			c.Status(http.StatusOK)
			started = true
		}
		if _, err := c.Writer.WriteString(delta); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		if !started {
			response.Error(c, err)
		}
		// Once bytes have been sent, the stream just truncates.
		return
	}

	if !started {
		// Upstream produced no content at all; still answer with an empty body.
		c.Header("Content-Type", "text/plain; charset=utf-8")
		c.Status(http.StatusOK)
	}
}
