package api

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	echo "github.com/labstack/echo/v5"
)

// idempotencyRecord is one recorded response, replayed for repeated keys.
type idempotencyRecord struct {
	status      int
	contentType string
	body        []byte
	expiresAt   time.Time
}

// idempotencyStore implements the Idempotency-Key contract for mutating
// endpoints: a repeated key within the window returns the original response
// byte for byte. The store is in-memory and per-process; the real idempotency
// guarantee lives in the database business key, this only short-circuits
// tight client retries.
type idempotencyStore struct {
	mu      sync.Mutex
	window  time.Duration
	records map[string]idempotencyRecord
}

func newIdempotencyStore(window time.Duration) *idempotencyStore {
	return &idempotencyStore{
		window:  window,
		records: make(map[string]idempotencyRecord),
	}
}

func (s *idempotencyStore) middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			key := c.Request().Header.Get("Idempotency-Key")
			if key == "" || s.window <= 0 {
				return next(c)
			}
			// Scope keys per method and path so one key may be reused
			// across endpoints.
			key = c.Request().Method + " " + c.Request().URL.Path + " " + key

			if rec, ok := s.lookup(key); ok {
				c.Response().Header().Set("Idempotency-Replayed", "true")
				return c.Blob(rec.status, rec.contentType, rec.body)
			}

			resp, err := echo.UnwrapResponse(c.Response())
			if err != nil {
				return next(c)
			}
			tee := &teeWriter{ResponseWriter: resp.ResponseWriter}
			resp.ResponseWriter = tee

			if err := next(c); err != nil {
				// Error responses are not recorded; the client may retry.
				return err
			}

			s.record(key, idempotencyRecord{
				status:      resp.Status,
				contentType: resp.Header().Get(echo.HeaderContentType),
				body:        tee.buf.Bytes(),
				expiresAt:   time.Now().Add(s.window),
			})
			return nil
		}
	}
}

func (s *idempotencyStore) lookup(key string) (idempotencyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok {
		return idempotencyRecord{}, false
	}
	if time.Now().After(rec.expiresAt) {
		delete(s.records, key)
		return idempotencyRecord{}, false
	}
	return rec, true
}

func (s *idempotencyStore) record(key string, rec idempotencyRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Opportunistic purge keeps the map bounded without a sweeper goroutine.
	now := time.Now()
	for k, r := range s.records {
		if now.After(r.expiresAt) {
			delete(s.records, k)
		}
	}
	s.records[key] = rec
}

// teeWriter copies the response body while passing it through.
type teeWriter struct {
	http.ResponseWriter
	buf bytes.Buffer
}

func (w *teeWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}
