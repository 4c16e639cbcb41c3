package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username/email or password")
	ErrUserExists         = errors.New("username or email already registered")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInsufficientStock  = errors.New("insufficient stock")
)
