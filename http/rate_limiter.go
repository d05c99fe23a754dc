package http

import (
	"sync"
	"time"
)

const (
	staleClientAge = 1 * time.Hour
	pruneInterval  = 30 * time.Minute
)

type clientState struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter is a per-client token bucket. Tokens refill continuously in
// proportion to elapsed time, at capacity tokens per window.
type RateLimiter struct {
	mu        sync.Mutex
	capacity  float64
	window    time.Duration
	clients   map[string]*clientState
	lastPrune time.Time
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		capacity:  float64(capacity),
		window:    window,
		clients:   make(map[string]*clientState),
		lastPrune: time.Now(),
	}
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.pruneLocked(now)

	st, ok := rl.clients[ip]
	if !ok {
		rl.clients[ip] = &clientState{
			tokens:   rl.capacity - 1,
			lastSeen: now,
		}
		return true
	}

	st.tokens += now.Sub(st.lastSeen).Seconds() / rl.window.Seconds() * rl.capacity
	if st.tokens > rl.capacity {
		st.tokens = rl.capacity
	}
	st.lastSeen = now

	if st.tokens < 1 {
		return false
	}

	st.tokens--
	return true
}

// pruneLocked drops clients idle longer than staleClientAge. Called with the
// mutex held.
func (rl *RateLimiter) pruneLocked(now time.Time) {
	if now.Sub(rl.lastPrune) < pruneInterval {
		return
	}
	rl.lastPrune = now

	for ip, st := range rl.clients {
		if now.Sub(st.lastSeen) > staleClientAge {
			delete(rl.clients, ip)
		}
	}
}
