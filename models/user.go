package models

import "time"

// User is a record of the application user directory. It maps an internal
// user id to a Telegram account and carries the privilege flag consulted by
// the authorization gate.
//
// The identity core treats this record as read-only; rows are created by the
// mini-app onboarding flow, which is outside this service.
type User struct {
	// ID is the internal unique identifier of the user (UUID).
	ID string `json:"id"`

	// TelegramID is the numeric Telegram account id linked to this user.
	TelegramID int64 `json:"telegram_id"`

	// FirstName is the Telegram profile first name captured at onboarding.
	FirstName string `json:"first_name"`

	// LastName is the Telegram profile last name. May be empty.
	LastName string `json:"last_name"`

	// Username is the Telegram @username. May be empty.
	Username string `json:"username"`

	// Administrator reports whether the user may access the admin surface.
	// Absent or false means no privileged access.
	Administrator bool `json:"administrator"`

	// CreatedAt is the timestamp when the directory record was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
