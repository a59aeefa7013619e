package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/salhdl/AI-Agent/config"
)

// ── assistant gateway errors ──

var (
	ErrAssistantUnconfigured = errors.New("assistant upstream is not configured")
	ErrAssistantUnavailable  = errors.New("assistant upstream unavailable")
)

// ChatService forwards user messages to the upstream conversational
// assistant and relays its reply. Intent routing, retrieval and
// generation all live on the other side of this call.
type ChatService interface {
	Ask(ctx context.Context, message string) (string, error)
}

type chatService struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewChatService creates a ChatService instance.
func NewChatService(cfg *config.AssistantConfig, logger *zap.Logger) ChatService {
	return &chatService{
		url:    cfg.URL,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (s *chatService) Ask(ctx context.Context, message string) (string, error) {
	if s.url == "" {
		return "", ErrAssistantUnconfigured
	}

	payload, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return "", fmt.Errorf("encode assistant request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build assistant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("assistant call failed", zap.Error(err))
		return "", ErrAssistantUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read assistant response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		s.logger.Error("assistant returned non-200",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return "", ErrAssistantUnavailable
	}

	var parsed struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode assistant response: %w", err)
	}

	return parsed.Response, nil
}
