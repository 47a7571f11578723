package domain

import "errors"

var (
	ErrDocumentNotFound     = errors.New("document not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrUpstreamUnavailable  = errors.New("completion service unavailable")
	ErrMalformedResponse    = errors.New("completion could not be parsed")
	ErrStorage              = errors.New("durable write failed")
	ErrUnauthorized         = errors.New("unauthorized")
)
