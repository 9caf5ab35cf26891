package core

import "errors"

// Error codes for domain errors.
const (
	ErrCodeInvalidPost = "invalid_post"
	ErrCodeFeedFull    = "feed_full"
)

var (
	// ErrSubscriptionClosed is returned by Subscription.Next after Close.
	ErrSubscriptionClosed = errors.New("subscription closed")
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}
