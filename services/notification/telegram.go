package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// TelegramSender delivers messages through the Telegram Bot API. The
// recipient identifier is a chat ID.
type TelegramSender struct {
	APIBase string
	Token   string
	Client  *http.Client
}

func NewTelegramSender(apiBase, token string) *TelegramSender {
	return &TelegramSender{
		APIBase: apiBase,
		Token:   token,
		Client:  &http.Client{},
	}
}

type telegramResponse struct {
	Ok     bool `json:"ok"`
	Result struct {
		MessageID int64 `json:"message_id"`
	} `json:"result"`
	Description string `json:"description"`
}

// Send posts a sendMessage call for one chat. The Bot API may answer
// HTTP 200 with ok=false; that counts as a provider rejection.
func (t *TelegramSender) Send(ctx context.Context, recipient, text string) (SendResult, error) {
	url := fmt.Sprintf("%s/bot%s/sendMessage", t.APIBase, t.Token)

	payload, err := json.Marshal(map[string]any{
		"chat_id": recipient,
		"text":    text,
	})
	if err != nil {
		return SendResult{}, fmt.Errorf("telegram: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return SendResult{}, fmt.Errorf("telegram: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return SendResult{}, fmt.Errorf("telegram: send message: %w", err)
	}
	defer resp.Body.Close()

	var body telegramResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return SendResult{}, fmt.Errorf("telegram: decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return SendResult{Ok: false}, nil
	}
	return SendResult{
		MessageID: strconv.FormatInt(body.Result.MessageID, 10),
		Ok:        body.Ok,
	}, nil
}
