package service

import "errors"

var (
	// ErrUnauthenticated signals that no application identity could be
	// established from the request credentials. Maps to HTTP 401.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden signals that the resolved identity lacks the
	// administrator flag. Maps to HTTP 403.
	ErrForbidden = errors.New("insufficient privilege")

	// ErrInvalidDataProvided signals a request payload that fails
	// validation. Maps to HTTP 400; the wrapped detail is safe to return.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrCommentRequired signals an order sent back for revision without
	// a reviewer comment.
	ErrCommentRequired = errors.New("revision verdict requires a comment")

	// ErrMediaNotConfigured signals that the media object store is not
	// set up in this deployment.
	ErrMediaNotConfigured = errors.New("media storage is not configured")

	// ErrBotNotConfigured signals a missing bot token or base URL where
	// the Telegram surface needs one. A deployment error, not a
	// per-request rejection.
	ErrBotNotConfigured = errors.New("bot is not configured")
)
