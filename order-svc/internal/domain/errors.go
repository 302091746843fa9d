package domain

import "errors"

var (
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidField    = errors.New("invalid field value")
	ErrNotFound        = errors.New("record not found")
	ErrCacheMiss       = errors.New("cache miss")
)
