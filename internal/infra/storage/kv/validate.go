package kv

import (
	"fmt"
	"strings"
)

// ValidateKey проверяет, что ключ можно использовать в любом бэкенде
// Ключ не должен быть пустым и не должен содержать разделители путей
func ValidateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
