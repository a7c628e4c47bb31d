package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"onboardhub/internal/transport/http/api"
)

type RateLimitKeyFunc func(r *http.Request) string

type RateLimitOption func(*limiter)

func WithKeyFunc(fn RateLimitKeyFunc) RateLimitOption {
	return func(l *limiter) {
		if fn != nil {
			l.keyFn = fn
		}
	}
}

// RateLimit allows limit requests per key in each fixed window. Keys default
// to the client address.
func RateLimit(limit int, window time.Duration, opts ...RateLimitOption) func(http.Handler) http.Handler {
	l := newLimiter(limit, window)
	for _, opt := range opts {
		opt(l)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.admit(w, r, l.keyFn(r)) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SensitiveMutationRateLimit gives employee registration, employee removal and
// manual reminder sweeps a quarter of the base budget, counted per client and
// per operation.
func SensitiveMutationRateLimit(baseLimit int, window time.Duration) func(http.Handler) http.Handler {
	l := newLimiter(max(baseLimit/4, 1), window)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if op := sensitiveOperation(r); op != "" && !l.admit(w, r, op+"|"+clientIPKey(r)) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ActorOrIPKey keys on the X-Actor value paired with the client address.
func ActorOrIPKey(r *http.Request) string {
	if actor := GetActor(r.Context()); actor != "" {
		return "actor:" + actor + "@" + clientIPKey(r)
	}
	return clientIPKey(r)
}

func clientIPKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	addr := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil && host != "" {
		return host
	}
	return addr
}

type counter struct {
	hits    int
	resetAt time.Time
}

type limiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	keyFn     RateLimitKeyFunc
	counters  map[string]*counter
	lastPrune time.Time
	now       func() time.Time
}

func newLimiter(limit int, window time.Duration) *limiter {
	return &limiter{
		limit:    limit,
		window:   window,
		keyFn:    clientIPKey,
		counters: map[string]*counter{},
		now:      time.Now,
	}
}

type decision struct {
	allowed   bool
	remaining int
	resetIn   int
}

func (l *limiter) take(key string) decision {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastPrune) >= l.window {
		for k, c := range l.counters {
			if now.After(c.resetAt) {
				delete(l.counters, k)
			}
		}
		l.lastPrune = now
	}

	c, ok := l.counters[key]
	if !ok || now.After(c.resetAt) {
		c = &counter{resetAt: now.Add(l.window)}
		l.counters[key] = c
	}
	c.hits++
	return decision{
		allowed:   c.hits <= l.limit,
		remaining: max(l.limit-c.hits, 0),
		resetIn:   ceilSeconds(c.resetAt.Sub(now)),
	}
}

// admit records the request under key, sets the X-RateLimit headers and writes
// a 429 envelope when the window is exhausted.
func (l *limiter) admit(w http.ResponseWriter, r *http.Request, key string) bool {
	if l.limit <= 0 {
		return true
	}
	if key == "" {
		key = clientIPKey(r)
	}
	d := l.take(key)

	h := w.Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(l.limit))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(d.remaining))
	h.Set("X-RateLimit-Reset", strconv.Itoa(d.resetIn))
	if d.allowed {
		return true
	}

	h.Set("Retry-After", strconv.Itoa(max(d.resetIn, 1)))
	slog.Warn("rate limit exceeded", "key", key, "method", r.Method, "path", r.URL.Path, "limit", l.limit)
	api.Fail(w, http.StatusTooManyRequests, "rate_limited", "too many requests", GetRequestID(r.Context()))
	return false
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}

// sensitiveOperation names the throttled operation a request performs, or "".
func sensitiveOperation(r *http.Request) string {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1")
	segments := strings.Split(strings.Trim(path, "/"), "/")
	switch r.Method {
	case http.MethodPost:
		switch path {
		case "/employees":
			return "employee.register"
		case "/reminders/run":
			return "reminders.run"
		}
	case http.MethodDelete:
		// Meeting cancellation lives deeper under /employees and is not throttled.
		if len(segments) == 2 && segments[0] == "employees" {
			return "employee.remove"
		}
	}
	return ""
}
