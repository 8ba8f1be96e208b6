// Package dispatch issues idempotent POSTs to the external workflow webhook.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds one dispatch call when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Class partitions dispatch outcomes for the caller's retry decision.
type Class string

// Outcome classes.
const (
	Success   Class = "success"
	Retryable Class = "retryable"
	Permanent Class = "permanent"
)

// Payload is the webhook request body.
type Payload struct {
	UserID       string `json:"user_id"`
	TeacherID    string `json:"teacher_id"`
	ClassID      string `json:"class_id"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	TeacherEmail string `json:"teacher_email,omitempty"`
}

// Outcome is the classified result of one dispatch call.
type Outcome struct {
	Class      Class
	StatusCode int // 0 when the request never completed
	Reason     string
	Err        error
}

// Client posts payloads to a fixed webhook URL with a hard deadline.
// A single call never retries; the caller's polling cadence decides when
// a Retryable outcome is attempted again.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient creates a dispatch client for the given webhook URL.
// A non-positive timeout falls back to DefaultTimeout.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
	}
}

// Dispatch POSTs the payload as JSON with the given Idempotency-Key.
//
// Classification: 2xx Success; 408, 429, 5xx, network errors and timeouts
// Retryable; every other status Permanent.
func (c *Client) Dispatch(ctx context.Context, payload Payload, idempotencyKey string) Outcome {
	body, err := json.Marshal(payload)
	if err != nil {
		return Outcome{
			Class:  Permanent,
			Reason: "payload not serializable",
			Err:    fmt.Errorf("failed to marshal dispatch payload: %w", err),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Outcome{
			Class:  Permanent,
			Reason: "invalid webhook request",
			Err:    fmt.Errorf("failed to build dispatch request: %w", err),
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		reason := "network error"
		if errors.Is(err, context.DeadlineExceeded) {
			reason = "timeout"
		}
		return Outcome{
			Class:  Retryable,
			Reason: reason,
			Err:    fmt.Errorf("dispatch request failed: %w", err),
		}
	}
	defer func() {
		// Drain so the connection is reusable.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
	}()

	return classifyStatus(resp.StatusCode)
}

func classifyStatus(code int) Outcome {
	switch {
	case code >= 200 && code < 300:
		return Outcome{Class: Success, StatusCode: code}
	case code == http.StatusRequestTimeout || code == http.StatusTooManyRequests || code >= 500:
		return Outcome{
			Class:      Retryable,
			StatusCode: code,
			Reason:     fmt.Sprintf("webhook returned %d", code),
		}
	default:
		return Outcome{
			Class:      Permanent,
			StatusCode: code,
			Reason:     fmt.Sprintf("webhook returned %d", code),
		}
	}
}
