package models

// CredentialBundle holds the per-request credentials extracted by the
// transport layer. Either field may be empty; the identity resolver decides
// what can be proven from whatever is present. Never persisted.
type CredentialBundle struct {
	// InitData is the raw Telegram WebApp launch payload
	// (URL-query-encoded key/value pairs including a "hash" field).
	InitData string

	// BearerToken is the compact session token taken from the
	// "Authorization: Bearer <token>" header, without the scheme prefix.
	BearerToken string
}

// TelegramUser is the user object embedded in a verified initData payload.
// Only fields the backend actually consumes are decoded.
type TelegramUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// Identity is the outcome of identity resolution for one request.
//
// Fields are independently nullable: an empty UserID means "no authenticated
// application identity" regardless of whether a TelegramID was established.
// At most one field is derived from cryptographic proof; the other, when
// absent, is filled by a directory lookup keyed on the proven one.
type Identity struct {
	// UserID is the internal user id, or "" when unresolved.
	UserID string `json:"user_id,omitempty"`

	// TelegramID is the Telegram account id, or 0 when unresolved.
	TelegramID int64 `json:"telegram_id,omitempty"`
}
