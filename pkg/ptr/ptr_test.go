package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtrAndValue(t *testing.T) {
	p := Ptr(60)
	assert.Equal(t, 60, *p)
	assert.Equal(t, 60, Value(p))

	var missing *int
	assert.Equal(t, 0, Value(missing))
}
