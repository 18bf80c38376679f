package domain

import "errors"

// Sentinel errors surfaced to HTTP handlers. The handler layer decides the
// status code and the response body text.
var (
	ErrInvalidParameters = errors.New("invalid game parameters")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrEmptyWordPool     = errors.New("no words available in selected categories")
	ErrGameNotFound      = errors.New("game not found")
	ErrInvalidPlayer     = errors.New("invalid player number")
)
