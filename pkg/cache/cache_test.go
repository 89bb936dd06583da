package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewCache(t *testing.T) {
	c := NewViewCache()

	_, ok := c.Get("/admin/stores")
	assert.False(t, ok)

	c.Set("/admin/stores", []string{"nike"})
	val, ok := c.Get("/admin/stores")
	assert.True(t, ok)
	assert.Equal(t, []string{"nike"}, val)

	c.Invalidate("/admin/stores")
	_, ok = c.Get("/admin/stores")
	assert.False(t, ok)

	// Invalidating an absent path is harmless.
	c.Invalidate("/admin/categories")
}
