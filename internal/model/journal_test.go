package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_Actions(t *testing.T) {
	var s Session
	assert.False(t, s.CanView())
	assert.False(t, s.CanDelete())

	s.Identifier = "123"
	s.Cached = &CachedDocument{Identifier: "123", LocalPath: "/tmp/123.pdf"}
	assert.True(t, s.CanView())
	assert.True(t, s.CanDelete())

	s.Cached = nil
	assert.False(t, s.CanView())
	assert.False(t, s.CanDelete())
}
