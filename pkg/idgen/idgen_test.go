package idgen

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_New(t *testing.T) {
	gen := New()
	pattern := regexp.MustCompile(`^[0-9a-z]+$`)

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := gen.New()
		require.NotEmpty(t, id)
		require.Len(t, id, Length)
		require.Regexp(t, pattern, id)

		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 1000)
}

func TestSequence_New(t *testing.T) {
	seq := NewSequence("slot")
	assert.Equal(t, "slot-1", seq.New())
	assert.Equal(t, "slot-2", seq.New())
}
