// Package telegram delivers lead notifications to a fixed chat via the
// Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-leadform-backend/config"

	"github.com/bytedance/sonic"
)

// Client issues sendMessage calls against the Bot API.
type Client struct {
	apiBase    string
	botToken   string
	chatID     string
	httpClient *http.Client
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	Ok          bool   `json:"ok"`
	Description string `json:"description"`
}

// NewClient creates a new Telegram client from the process configuration
func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiBase:    cfg.TelegramAPIBase,
		botToken:   cfg.BotToken,
		chatID:     cfg.ChatID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// IsConfigured checks whether both bot credentials are present
func (c *Client) IsConfigured() bool {
	return c.botToken != "" && c.chatID != ""
}

// SendLead formats and delivers one notification. The timestamp is taken
// at delivery time. Single attempt: no retry, no queue, and a duplicate
// call produces a duplicate chat message.
func (c *Client) SendLead(ctx context.Context, data LeadData) error {
	return c.sendMessage(ctx, FormatLead(data, time.Now()))
}

func (c *Client) sendMessage(ctx context.Context, text string) error {
	payload, err := sonic.Marshal(sendMessageRequest{
		ChatID:    c.chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal sendMessage payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.apiBase, c.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Telegram API: %w", err)
	}
	defer resp.Body.Close()

	// The API reports failures in the body, not only via the status code
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Telegram response: %w", err)
	}
	var result sendMessageResponse
	if err := sonic.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to decode Telegram response: %w", err)
	}
	if !result.Ok {
		return fmt.Errorf("telegram API reported failure: %s", result.Description)
	}
	return nil
}
