package models

import (
	"encoding/json"
	"time"
)

// Order is a request form submitted by a mini-app user. The form payload is
// stored as raw JSON — its shape belongs to the frontend wizard and the
// backend never inspects it.
type Order struct {
	// ID is the unique identifier of the order (UUID).
	ID string `json:"id"`

	// UserID is the submitting user's directory id. May be empty for
	// orders created before onboarding linked the account.
	UserID string `json:"-"`

	// Data is the submitted form payload, passed through verbatim.
	Data json.RawMessage `json:"data"`

	// Approved is the review verdict: nil — not reviewed yet,
	// true — approved, false — sent back for revision.
	Approved *bool `json:"approved"`

	// RevisionComment is the reviewer's comment. Required when an order is
	// sent back for revision, cleared on approval.
	RevisionComment string `json:"revision_comment"`

	// CreatedAt is the submission timestamp.
	CreatedAt time.Time `json:"created_at"`

	// User is the submitter's directory record, joined in for admin
	// listings. Nil when the user record is missing.
	User *User `json:"user"`
}

// OrderReview is an admin verdict applied to a single order.
// At least one of Approved or RevisionComment must be present.
type OrderReview struct {
	// ID of the order under review. Required.
	ID string `json:"id"`

	// Approved sets the review verdict. Nil leaves the verdict untouched.
	Approved *bool `json:"approved"`

	// RevisionComment is the reviewer's comment. Nil leaves the stored
	// comment untouched.
	RevisionComment *string `json:"revision_comment"`
}

// TableName returns the name of the database table
// associated with the Order model.
func (o Order) TableName() string {
	return "orders"
}
