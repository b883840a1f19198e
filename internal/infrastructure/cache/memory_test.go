package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryStore_Expiration(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(0, WithClock(clock.Now))
	defer store.Close()

	store.Set("status", "done", 3*time.Second)

	v, ok := store.Get("status")
	assert.True(t, ok)
	assert.Equal(t, "done", v)

	clock.Advance(2 * time.Second)
	_, ok = store.Get("status")
	assert.True(t, ok)

	clock.Advance(2 * time.Second)
	_, ok = store.Get("status")
	assert.False(t, ok)
}

func TestMemoryStore_NoExpiration(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	store := NewMemoryStore(0, WithClock(clock.Now))
	defer store.Close()

	store.Set("status", "Uploading...", 0)
	clock.Advance(24 * time.Hour)

	v, ok := store.Get("status")
	assert.True(t, ok)
	assert.Equal(t, "Uploading...", v)

	store.Delete("status")
	_, ok = store.Get("status")
	assert.False(t, ok)
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	store.Close()
	store.Close()
}
