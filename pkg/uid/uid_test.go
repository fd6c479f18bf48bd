package uid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a, b := New(), New()
	assert.NotEqual(t, a, b)
	assert.True(t, IsValid(a))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("not-a-uuid"))
}
