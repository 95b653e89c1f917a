package service

import "errors"

var (
	// ErrAlreadyCompleted guards stage-completion idempotency: a stage
	// cannot be completed twice by the same user.
	ErrAlreadyCompleted = errors.New("stage already completed")

	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
)
