package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowWithinLimit(t *testing.T) {
	limiter := New(5, time.Minute)

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"), "attempt %d should be allowed", i+1)
	}
	assert.False(t, limiter.Allow("10.0.0.1"), "6th attempt within window should be blocked")
}

func TestAllowIsolatesKeys(t *testing.T) {
	limiter := New(5, time.Minute)

	for i := 0; i < 6; i++ {
		limiter.Allow("10.0.0.1")
	}
	assert.True(t, limiter.Allow("10.0.0.2"), "other client should not be affected")
}

func TestAllowAfterWindowElapsed(t *testing.T) {
	current := time.Now()
	limiter := New(5, time.Minute)
	limiter.now = func() time.Time { return current }

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"))
	}
	assert.False(t, limiter.Allow("10.0.0.1"))

	current = current.Add(61 * time.Second)
	assert.True(t, limiter.Allow("10.0.0.1"), "attempts should resume after window elapses")
}

func TestAllowPrunesOldEntries(t *testing.T) {
	current := time.Now()
	limiter := New(5, time.Minute)
	limiter.now = func() time.Time { return current }

	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.1")
	current = current.Add(2 * time.Minute)
	limiter.Allow("10.0.0.1")

	assert.Len(t, limiter.attempts["10.0.0.1"], 1)
}

func TestAllowConcurrent(t *testing.T) {
	limiter := New(5, time.Minute)

	var wg sync.WaitGroup
	allowed := make(chan bool, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed <- limiter.Allow("10.0.0.1")
		}()
	}
	wg.Wait()
	close(allowed)

	count := 0
	for ok := range allowed {
		if ok {
			count++
		}
	}
	assert.Equal(t, 5, count)
}
