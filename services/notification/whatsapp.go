package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// WhatsAppSender delivers messages through the WhatsApp Cloud API (Meta).
// The recipient identifier is a phone number.
type WhatsAppSender struct {
	APIBase       string
	AccessToken   string
	PhoneNumberID string
	Client        *http.Client
}

func NewWhatsAppSender(apiBase, accessToken, phoneNumberID string) *WhatsAppSender {
	return &WhatsAppSender{
		APIBase:       apiBase,
		AccessToken:   accessToken,
		PhoneNumberID: phoneNumberID,
		Client:        &http.Client{},
	}
}

type whatsAppResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// formatPhoneNumber strips everything but digits, the shape the Cloud
// API expects for the "to" field.
func formatPhoneNumber(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Send posts one text message to one phone number. The Cloud API
// acknowledges a send by returning the message ID; an HTTP 200 without
// one counts as a provider rejection.
func (w *WhatsAppSender) Send(ctx context.Context, recipient, text string) (SendResult, error) {
	url := fmt.Sprintf("%s/%s/messages", w.APIBase, w.PhoneNumberID)

	payload, err := json.Marshal(map[string]any{
		"messaging_product": "whatsapp",
		"recipient_type":    "individual",
		"to":                formatPhoneNumber(recipient),
		"type":              "text",
		"text": map[string]any{
			"preview_url": false,
			"body":        text,
		},
	})
	if err != nil {
		return SendResult{}, fmt.Errorf("whatsapp: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return SendResult{}, fmt.Errorf("whatsapp: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+w.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		return SendResult{}, fmt.Errorf("whatsapp: send message: %w", err)
	}
	defer resp.Body.Close()

	var body whatsAppResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return SendResult{}, fmt.Errorf("whatsapp: decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || len(body.Messages) == 0 {
		return SendResult{Ok: false}, nil
	}
	return SendResult{MessageID: body.Messages[0].ID, Ok: true}, nil
}
