package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"onboardhub/internal/transport/http/api"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	maxIdempotencyKey = 128
)

var ErrIdempotencyConflict = errors.New("idempotency key conflicts with existing request")

type storedResponse struct {
	requestHash string
	status      int
	contentType string
	body        []byte
	expires     time.Time
}

// IdempotencyStore remembers successful POST responses per actor, endpoint
// and key for a bounded time.
type IdempotencyStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]storedResponse
	now     func() time.Time
}

func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &IdempotencyStore{ttl: ttl, entries: map[string]storedResponse{}, now: time.Now}
}

func RequestHash(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

func idempotencyKey(actor, endpoint, key string) string {
	return actor + "\x00" + endpoint + "\x00" + key
}

func (s *IdempotencyStore) Check(_ context.Context, actor, endpoint, key, requestHash string) (storedResponse, bool, error) {
	if s == nil {
		return storedResponse{}, false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := idempotencyKey(actor, endpoint, key)
	stored, ok := s.entries[id]
	if !ok {
		return storedResponse{}, false, nil
	}
	if s.now().After(stored.expires) {
		delete(s.entries, id)
		return storedResponse{}, false, nil
	}
	if stored.requestHash != requestHash {
		return storedResponse{}, false, ErrIdempotencyConflict
	}
	return stored, true, nil
}

func (s *IdempotencyStore) Save(_ context.Context, actor, endpoint, key, requestHash string, status int, contentType string, body []byte) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := idempotencyKey(actor, endpoint, key)
	now := s.now()
	if existing, ok := s.entries[id]; ok && now.Before(existing.expires) && existing.requestHash != requestHash {
		return ErrIdempotencyConflict
	}
	s.entries[id] = storedResponse{
		requestHash: requestHash,
		status:      status,
		contentType: contentType,
		body:        append([]byte(nil), body...),
		expires:     now.Add(s.ttl),
	}
	s.prune(now)
	return nil
}

func (s *IdempotencyStore) prune(now time.Time) {
	for id, entry := range s.entries {
		if now.After(entry.expires) {
			delete(s.entries, id)
		}
	}
}

type captureWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (c *captureWriter) WriteHeader(code int) {
	if c.status == 0 {
		c.status = code
	}
	c.ResponseWriter.WriteHeader(code)
}

func (c *captureWriter) Write(b []byte) (int, error) {
	if c.status == 0 {
		c.status = http.StatusOK
	}
	c.body.Write(b)
	return c.ResponseWriter.Write(b)
}

// Idempotency replays the stored response for a repeated POST carrying the
// same Idempotency-Key and body. A reused key with a different body is a 409.
// Only 2xx responses are remembered.
func Idempotency(store *IdempotencyStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get(IdempotencyHeader))
			if store == nil || r.Method != http.MethodPost || key == "" {
				next.ServeHTTP(w, r)
				return
			}
			reqID := GetRequestID(r.Context())
			if len(key) > maxIdempotencyKey {
				api.Fail(w, http.StatusBadRequest, "validation_error", "idempotency key too long", reqID)
				return
			}

			payload, err := io.ReadAll(r.Body)
			if err != nil {
				var maxErr *http.MaxBytesError
				if errors.As(err, &maxErr) {
					api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large", reqID)
					return
				}
				api.Fail(w, http.StatusBadRequest, "invalid_body", "could not read request body", reqID)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(payload))

			actor := GetActor(r.Context())
			endpoint := r.URL.Path
			hash := RequestHash(append([]byte(r.Method+" "+endpoint+"\n"), payload...))

			stored, ok, err := store.Check(r.Context(), actor, endpoint, key, hash)
			if errors.Is(err, ErrIdempotencyConflict) {
				api.Fail(w, http.StatusConflict, "idempotency_conflict", err.Error(), reqID)
				return
			}
			if ok {
				if stored.contentType != "" {
					w.Header().Set("Content-Type", stored.contentType)
				}
				w.Header().Set("Idempotent-Replay", "true")
				w.WriteHeader(stored.status)
				_, _ = w.Write(stored.body)
				return
			}

			capture := &captureWriter{ResponseWriter: w}
			next.ServeHTTP(capture, r)
			if capture.status < 200 || capture.status >= 300 {
				return
			}
			_ = store.Save(r.Context(), actor, endpoint, key, hash, capture.status, w.Header().Get("Content-Type"), capture.body.Bytes())
		})
	}
}
