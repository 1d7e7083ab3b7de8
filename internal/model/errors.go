package model

import "errors"

var (
	ErrInsufficientFunds    = errors.New("not enough coins")
	ErrUnknownMode          = errors.New("unknown game mode")
	ErrGridShape            = errors.New("grid does not match game mode")
	ErrFreeCoinsUnavailable = errors.New("free coins are available only when coins are below spin cost")
	ErrInvalidSpinnerInput  = errors.New("invalid spinner input")
	ErrInvalidReactionTime  = errors.New("reaction time must be positive")
	ErrEmptyCommand         = errors.New("empty command")
	ErrInvalidTypingStats   = errors.New("invalid typing stats")

	ErrUnauthorized       = errors.New("unauthorized")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrNotFound           = errors.New("not found")
)
