package chat

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Service proxies chat conversations to an OpenAI-compatible completion API
// and re-streams the generated text. It holds no conversation state.
type Service interface {
	// Enabled reports whether an upstream API key is configured.
	Enabled() bool

	// Stream sends the conversation upstream and invokes onDelta for every
	// generated text fragment, in order. It returns ErrUpstream if the
	// upstream request fails before completing.
	Stream(ctx context.Context, messages []Message, onDelta func(delta string) error) error
}

type service struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewService creates a chat Service. An empty apiKey disables the service.
func NewService(baseURL, apiKey, model string) Service {
	return &service{
		httpClient: &http.Client{
			// Bound the whole exchange; streams longer than this are cut off.
			Timeout: 2 * time.Minute,
		},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
	}
}

func (s *service) Enabled() bool {
	return s.apiKey != ""
}

type completionRequest struct {
	Model    string    `json:"model"`
	Stream   bool      `json:"stream"`
	Messages []Message `json:"messages"`
}

type completionChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

func (s *service) Stream(ctx context.Context, messages []Message, onDelta func(delta string) error) error {
	if !s.Enabled() {
		return ErrDisabled
	}

	payload, err := json.Marshal(completionRequest{
		Model:    s.model,
		Stream:   true,
		Messages: messages,
	})
	if err != nil {
		return fmt.Errorf("marshal completion request failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build completion request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "text/event-stream")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return ErrUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrUpstream
	}

	// The upstream responds with server-sent events: one "data: <json>" line
	// per chunk, terminated by "data: [DONE]".
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}

		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" || data == "[DONE]" {
			continue
		}

		var chunk completionChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			// Skip malformed chunks rather than killing the stream.
			continue
		}

		if len(chunk.Choices) == 0 {
			continue
		}
		if delta := chunk.Choices[0].Delta.Content; delta != "" {
			if err := onDelta(delta); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return ErrUpstream
	}

	return nil
}
