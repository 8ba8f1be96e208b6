package api

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func idempotentEcho(window time.Duration) (*echo.Echo, *int) {
	invocations := 0
	store := newIdempotencyStore(window)

	e := echo.New()
	e.POST("/mutate", func(c *echo.Context) error {
		invocations++
		return c.JSON(http.StatusCreated, map[string]int{"invocation": invocations})
	}, store.middleware())
	return e, &invocations
}

func post(e *echo.Echo, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestIdempotency_ReplaysOriginalResponse(t *testing.T) {
	e, invocations := idempotentEcho(time.Minute)

	first := post(e, "key-1")
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Empty(t, first.Header().Get("Idempotency-Replayed"))

	second := post(e, "key-1")
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("Idempotency-Replayed"))
	assert.Equal(t, first.Body.String(), second.Body.String())

	assert.Equal(t, 1, *invocations)
}

func TestIdempotency_DistinctKeysRunSeparately(t *testing.T) {
	e, invocations := idempotentEcho(time.Minute)

	post(e, "key-1")
	post(e, "key-2")
	assert.Equal(t, 2, *invocations)
}

func TestIdempotency_NoKeyNoReplay(t *testing.T) {
	e, invocations := idempotentEcho(time.Minute)

	post(e, "")
	post(e, "")
	assert.Equal(t, 2, *invocations)
}

func TestIdempotency_WindowExpiry(t *testing.T) {
	e, invocations := idempotentEcho(20 * time.Millisecond)

	post(e, "key-1")
	time.Sleep(30 * time.Millisecond)
	post(e, "key-1")
	assert.Equal(t, 2, *invocations)
}

func TestIdempotency_ErrorResponsesNotRecorded(t *testing.T) {
	store := newIdempotencyStore(time.Minute)
	invocations := 0

	e := echo.New()
	e.POST("/mutate", func(c *echo.Context) error {
		invocations++
		if invocations == 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "first call fails")
		}
		return c.String(http.StatusCreated, strconv.Itoa(invocations))
	}, store.middleware())

	req1 := httptest.NewRequest(http.MethodPost, "/mutate", nil)
	req1.Header.Set("Idempotency-Key", "key-1")
	rec1 := httptest.NewRecorder()
	e.ServeHTTP(rec1, req1)
	assert.Equal(t, http.StatusBadRequest, rec1.Code)

	// The retry runs the handler again instead of replaying the failure.
	req2 := httptest.NewRequest(http.MethodPost, "/mutate", nil)
	req2.Header.Set("Idempotency-Key", "key-1")
	rec2 := httptest.NewRecorder()
	e.ServeHTTP(rec2, req2)
	assert.Equal(t, http.StatusCreated, rec2.Code)
	assert.Equal(t, 2, invocations)
}
