// Copyright 2025 The VITA Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package httpclient provides an HTTP client with bounded retries and
// exponential backoff, used for every LLM transport call. Server errors
// (5xx) and connection failures are retried; client errors (4xx) are not.
package httpclient

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Client wraps http.Client with retry behavior.
type Client struct {
	client     *http.Client
	maxRetries int
	baseDelay  time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.client = client }
}

// WithMaxRetries sets the number of retries after the first attempt.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithBaseDelay sets the first backoff delay; each retry doubles it.
func WithBaseDelay(delay time.Duration) Option {
	return func(c *Client) { c.baseDelay = delay }
}

// WithTimeout sets the per-request timeout on the underlying client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.client.Timeout = timeout }
}

// New creates a Client. Defaults: 3 retries, 1 s base delay, 600 s timeout.
func New(opts ...Option) *Client {
	client := &Client{
		client:     &http.Client{Timeout: 600 * time.Second},
		maxRetries: 3,
		baseDelay:  time.Second,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// retryable reports whether a response status warrants another attempt.
func retryable(statusCode int) bool {
	return statusCode >= 500 || statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusRequestTimeout
}

// Do performs the request, retrying retryable failures with exponential
// backoff. The request context bounds the whole operation including sleeps.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	delay := c.baseDelay
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, fmt.Errorf("failed to recreate request body for retry: %w", err)
				}
				req.Body = body
			}
			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("HTTP request failed", "attempt", attempt+1, "error", err)
			continue
		}
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}
		if !retryable(resp.StatusCode) {
			return resp, nil
		}
		resp.Body.Close()
		lastErr = fmt.Errorf("HTTP %d", resp.StatusCode)
		slog.Warn("HTTP request retrying", "attempt", attempt+1, "status", resp.StatusCode)
	}

	return nil, &RetryableError{
		Message: fmt.Sprintf("max HTTP retries (%d) exceeded", c.maxRetries),
		Err:     lastErr,
	}
}
