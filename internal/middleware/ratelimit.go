// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// maxLimiterEntries bounds the per-IP limiter map. When exceeded the map is
// reset wholesale; a brief amnesty beats unbounded memory growth.
const maxLimiterEntries = 10000

// limiterCache is a per-key rate limiter cache with double-check locking.
type limiterCache struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

func newLimiterCache(rps float64, burst int) *limiterCache {
	return &limiterCache{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

// get returns the rate limiter for a key, creating one if needed.
func (lc *limiterCache) get(key string) *rate.Limiter {
	lc.mu.RLock()
	limiter, exists := lc.limiters[key]
	lc.mu.RUnlock()

	if exists {
		return limiter
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	// Double-check after acquiring the write lock.
	if limiter, exists = lc.limiters[key]; exists {
		return limiter
	}

	if len(lc.limiters) > maxLimiterEntries {
		lc.limiters = make(map[string]*rate.Limiter)
	}

	limiter = rate.NewLimiter(lc.rate, lc.burst)
	lc.limiters[key] = limiter
	return limiter
}

// LoginRateLimiter throttles credential-guessing traffic per client IP.
type LoginRateLimiter struct {
	cache *limiterCache
}

// NewLoginRateLimiter creates a per-IP rate limiter. rps is sustained
// requests per second, burst the allowance above it.
func NewLoginRateLimiter(rps float64, burst int) *LoginRateLimiter {
	return &LoginRateLimiter{
		cache: newLimiterCache(rps, burst),
	}
}

// Middleware returns the rate limiting middleware for HTML form endpoints.
func (rl *LoginRateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !rl.cache.get(ip).Allow() {
				slog.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
				http.Error(w, "Too many requests. Please wait a moment and try again.", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the request's remote host. chi's RealIP middleware has
// already folded X-Forwarded-For / X-Real-IP into RemoteAddr upstream.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
