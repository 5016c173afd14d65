package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// Requests is the maximum number of requests allowed within the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
	// KeyFunc returns the bucket key for a request (defaults to client IP)
	KeyFunc func(c echo.Context) string
	// Message is shown to the visitor when the budget is spent
	Message string
}

type rateLimitEntry struct {
	count     int
	expiresAt time.Time
}

// RateLimiter is a fixed-window, per-key rate limiter
type RateLimiter struct {
	config RateLimitConfig
	mu     sync.Mutex
	store  map[string]*rateLimitEntry
	now    func() time.Time
	stop   chan struct{}
}

// NewRateLimiter creates a rate limiter and starts its cleanup loop
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.Message == "" {
		config.Message = "Too many requests. Please try again later."
	}

	rl := &RateLimiter{
		config: config,
		store:  make(map[string]*rateLimitEntry),
		now:    time.Now,
		stop:   make(chan struct{}),
	}
	go rl.cleanup(time.Minute)
	return rl
}

// allow spends one request from key's budget. When the budget is gone it
// returns false and how long until the window resets.
func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, ok := rl.store[key]
	if !ok || !now.Before(entry.expiresAt) {
		rl.store[key] = &rateLimitEntry{count: 1, expiresAt: now.Add(rl.config.Window)}
		return true, 0
	}
	if entry.count >= rl.config.Requests {
		return false, entry.expiresAt.Sub(now)
	}
	entry.count++
	return true, 0
}

// Middleware returns the rate limiting middleware. HTMX requests get the
// message as an inline form error so it lands inside the lead form.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, retryAfter := rl.allow(rl.config.KeyFunc(c))
			if ok {
				return next(c)
			}

			seconds := int(retryAfter.Round(time.Second) / time.Second)
			if seconds < 1 {
				seconds = 1
			}
			c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))

			if c.Request().Header.Get("HX-Request") == "true" {
				return c.HTML(http.StatusTooManyRequests, `<div class="form-error" role="alert">`+rl.config.Message+`</div>`)
			}
			return echo.NewHTTPError(http.StatusTooManyRequests, rl.config.Message)
		}
	}
}

// Stop ends the cleanup loop
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// cleanup drops expired windows every interval
func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			now := rl.now()
			for key, entry := range rl.store {
				if !now.Before(entry.expiresAt) {
					delete(rl.store, key)
				}
			}
			rl.mu.Unlock()
		case <-rl.stop:
			return
		}
	}
}

// LeadSubmitRateLimiter limits lead submissions to 10 per minute per IP
var LeadSubmitRateLimiter = NewRateLimiter(RateLimitConfig{
	Requests: 10,
	Window:   time.Minute,
	Message:  "Too many form submissions. Please wait before trying again.",
})

// LeadFieldRateLimiter limits field edits to 300 per minute per IP. Edits
// fire while typing, so the budget is generous.
var LeadFieldRateLimiter = NewRateLimiter(RateLimitConfig{
	Requests: 300,
	Window:   time.Minute,
	Message:  "Rate limit exceeded. Please slow down your requests.",
})
