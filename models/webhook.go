package models

// Update is the subset of a Telegram Bot API update this service reacts to.
// All other update kinds are acknowledged and dropped.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

// Message is an inbound Telegram message.
type Message struct {
	MessageID int64         `json:"message_id"`
	Text      string        `json:"text"`
	Chat      Chat          `json:"chat"`
	From      *TelegramUser `json:"from"`
}

// Chat identifies the conversation a message belongs to.
type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// WebhookInfo is the subset of the Bot API getWebhookInfo result used to
// detect webhook registration drift.
type WebhookInfo struct {
	URL            string `json:"url"`
	PendingUpdates int64  `json:"pending_update_count"`
}
