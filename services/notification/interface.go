package notification

import "context"

// SendResult is what a provider reports back for a single send attempt.
// Ok is the provider's application-level acknowledgment; a delivery only
// counts as successful when the transport call succeeded AND Ok is true.
type SendResult struct {
	MessageID string
	Ok        bool
}

// Sender delivers one text message to one recipient over a messaging
// provider's HTTP API. Recipient identifiers are opaque strings (chat IDs
// for Telegram, phone numbers for WhatsApp).
type Sender interface {
	Send(ctx context.Context, recipient, text string) (SendResult, error)
}
