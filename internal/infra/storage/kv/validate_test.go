package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateKey(t *testing.T) {
	assert.NoError(t, ValidateKey("slots"))
	assert.NoError(t, ValidateKey("appointments"))

	for _, key := range []string{"", "  ", "a/b", `a\b`, "..", "x..y"} {
		assert.ErrorIs(t, ValidateKey(key), ErrInvalidKey, "key %q", key)
	}
}
