package kv

import "errors"

var (
	// ErrNotFound возвращается, когда ключ отсутствует в хранилище
	ErrNotFound = errors.New("kv: key not found")

	// ErrInvalidKey возвращается при пустом или недопустимом ключе
	ErrInvalidKey = errors.New("kv: invalid key")
)
