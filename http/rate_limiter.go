package http

import (
	"sync"
	"time"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

// Limit is a bucket size and the window after which it refills in full.
type Limit struct {
	Capacity int
	Refill   time.Duration
}

type bucketKey struct {
	route string
	ip    string
}

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter keeps one token bucket per route and client IP. Routes without
// their own Limit share the fallback limit.
type RateLimiter struct {
	mu          sync.Mutex
	fallback    Limit
	routes      map[string]Limit
	clients     map[bucketKey]*clientBucket
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewRateLimiter(fallback Limit, routes map[string]Limit) *RateLimiter {
	limits := make(map[string]Limit, len(routes))
	for route, l := range routes {
		limits[route] = l
	}
	rl := &RateLimiter{
		fallback:    fallback,
		routes:      limits,
		clients:     make(map[bucketKey]*clientBucket),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// LimitFor returns the limit applied to route.
func (r *RateLimiter) LimitFor(route string) Limit {
	if l, ok := r.routes[route]; ok {
		return l
	}
	return r.fallback
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

// cleanup drops buckets idle for longer than the threshold or their own
// refill window, whichever is longer.
func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for key, bucket := range r.clients {
		idle := max(bucketCleanupThreshold, r.LimitFor(key.route).Refill)
		if now.Sub(bucket.lastRefill) > idle {
			delete(r.clients, key)
		}
	}
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

func (r *RateLimiter) Allow(route, ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	limit := r.LimitFor(route)
	now := r.now()
	key := bucketKey{route: route, ip: ip}
	bucket, exists := r.clients[key]

	if !exists {
		r.clients[key] = &clientBucket{
			tokens:     limit.Capacity - 1,
			lastRefill: now,
		}
		return limit.Capacity > 0
	}

	if now.Sub(bucket.lastRefill) >= limit.Refill {
		bucket.tokens = limit.Capacity
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		return false
	}

	bucket.tokens--
	return true
}
