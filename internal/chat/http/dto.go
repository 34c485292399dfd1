package http

import "github.com/aptstay/apartment-booking-backend/internal/chat"

// StreamRequest is the chat widget payload: the conversation so far.
type StreamRequest struct {
	Messages []MessageBody `json:"messages" binding:"required,min=1,dive"`
}

type MessageBody struct {
	Role    string `json:"role" binding:"required,oneof=user assistant system"`
	Content string `json:"content" binding:"required"`
}

func (r StreamRequest) ToMessages() []chat.Message {
	messages := make([]chat.Message, len(r.Messages))
	for i, m := range r.Messages {
		messages[i] = chat.Message{Role: m.Role, Content: m.Content}
	}
	return messages
}
