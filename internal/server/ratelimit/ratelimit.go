// Package ratelimit provides per-client token bucket rate limiting for the HTTP API.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket allows capacity requests at once and refills at refillRate tokens per second.
type tokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64
	tokens     float64
	lastRefill time.Time
	lastUsed   time.Time
}

func newTokenBucket(capacity int, refillRate float64, now time.Time) *tokenBucket {
	return &tokenBucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
		lastUsed:   now,
	}
}

// refill must be called with mu held.
func (b *tokenBucket) refill(now time.Time) {
	if elapsed := now.Sub(b.lastRefill); elapsed > 0 {
		b.tokens = min(b.capacity, b.tokens+elapsed.Seconds()*b.refillRate)
		b.lastRefill = now
	}
}

// take consumes a token if one is available and reports the bucket state afterwards.
func (b *tokenBucket) take(now time.Time) (allowed bool, remaining int, full time.Time, next time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill(now)
	b.lastUsed = now

	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	}

	remaining = int(b.tokens)
	full = now.Add(seconds((b.capacity - b.tokens) / b.refillRate))
	if !allowed {
		next = seconds((1 - b.tokens) / b.refillRate)
	}
	return allowed, remaining, full, next
}

func (b *tokenBucket) idleSince() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastUsed
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

const defaultRoute = "*"

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages rate limiting for multiple clients using token buckets.
// Buckets are keyed by client, method and matched route class. Paths no
// endpoint entry covers all fall into the default class.
type Limiter struct {
	config *Config
	now    func() time.Time

	mu      sync.Mutex
	buckets map[string]*tokenBucket

	stopOnce sync.Once
	stop     chan struct{}
}

// NewLimiter creates a new rate limiter with the given configuration.
// A nil config enables a default of 600 requests per minute.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    600,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			IdleTTL:         time.Hour,
		}
	}

	l := &Limiter{
		config:  config,
		now:     time.Now,
		buckets: make(map[string]*tokenBucket),
		stop:    make(chan struct{}),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		go l.cleanupLoop(config.CleanupInterval)
	}
	return l
}

// Allow checks if a request from the given client is allowed for the specified endpoint.
func (l *Limiter) Allow(clientID string, path string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	// Unmatched paths share one class so that path variants of the same
	// resource (/jobs/1, /jobs/01) cannot each claim a fresh bucket.
	ec := MatchEndpoint(path, method, l.config.EndpointConfigs)
	routeKey := defaultRoute
	if ec == nil {
		ec = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
		}
	} else if ec.Path != "" {
		routeKey = ec.Path
	}

	if ec.Limit <= 0 || ec.Window <= 0 {
		return true, Info{Allowed: true}
	}

	now := l.now()
	bucket := l.bucket(clientID+" "+method+" "+routeKey, ec, now)
	allowed, remaining, full, retry := bucket.take(now)

	return allowed, Info{
		Allowed:    allowed,
		Limit:      ec.Limit,
		Remaining:  remaining,
		ResetTime:  full,
		RetryAfter: retry,
	}
}

func (l *Limiter) bucket(key string, ec *EndpointConfig, now time.Time) *tokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}
	capacity := ec.Burst
	if capacity <= 0 {
		capacity = ec.Limit
	}
	b := newTokenBucket(capacity, float64(ec.Limit)/ec.Window.Seconds(), now)
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stop:
			return
		}
	}
}

// cleanup drops buckets idle for longer than the configured TTL.
func (l *Limiter) cleanup() {
	ttl := l.config.IdleTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	cutoff := l.now().Add(-ttl)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.idleSince().Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Len reports the number of live buckets.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
