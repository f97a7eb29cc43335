package pkg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateNewSessionID(t *testing.T) {
	// When: two ids are generated
	first := GenerateNewSessionID()
	second := GenerateNewSessionID()

	// Then: they are valid and distinct
	assert.True(t, IsValidSessionID(first))
	assert.True(t, IsValidSessionID(second))
	assert.NotEqual(t, first, second)
}

func TestIsValidSessionID(t *testing.T) {
	assert.False(t, IsValidSessionID(""))
	assert.False(t, IsValidSessionID("not-a-session"))
	assert.False(t, IsValidSessionID("{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"))
	assert.True(t, IsValidSessionID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
}

func TestSessionIDContext(t *testing.T) {
	// Given: a context without a session
	ctx := context.Background()

	// Then: no id is found
	_, ok := SessionIDFromContext(ctx)
	assert.False(t, ok)

	// When: an id is attached
	ctx = WithSessionID(ctx, "abc")

	// Then: it is returned
	id, ok := SessionIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}
