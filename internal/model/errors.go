package model

import "errors"

var (
	// User related errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	// Credential and token related errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenEncoding      = errors.New("token encoding failed")
	ErrUnauthorized       = errors.New("unauthorized")

	// Todo related errors
	ErrTodoNotFound = errors.New("todo not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
