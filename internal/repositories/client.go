package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"calcweather/pkg/logger"
)

const defaultBreakerTimeout = 30 * time.Second

type reply struct {
	statusCode int
	status     string
	body       []byte
}

// upstream performs GET requests through a circuit breaker. Only network
// failures and 5xx responses count against the breaker; nothing is retried.
type upstream struct {
	name    string
	client  HTTPClient
	breaker *gobreaker.CircuitBreaker
	l       *logger.Logger
}

func newUpstream(name string, client HTTPClient, breakerTimeout time.Duration, l *logger.Logger) *upstream {
	if client == nil {
		client = http.DefaultClient
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			l.Warning("circuit breaker state changed", map[string]any{
				"repository": name,
				"from":       from.String(),
				"to":         to.String(),
			})
		},
	}

	return &upstream{
		name:    name,
		client:  client,
		breaker: gobreaker.NewCircuitBreaker(settings),
		l:       l,
	}
}

// getJSON requests endpoint with query and decodes a 200 body into out.
// A 404 maps to ErrCityNotFound.
func (u *upstream) getJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	target, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %s: %w", endpoint, err)
	}
	target.RawQuery = query.Encode()

	res, err := u.breaker.Execute(func() (interface{}, error) {
		return u.get(ctx, target.String())
	})
	if err != nil {
		return fmt.Errorf("%s request failed: %w", u.name, err)
	}

	r := res.(*reply)
	switch {
	case r.statusCode == http.StatusNotFound:
		return ErrCityNotFound
	case r.statusCode != http.StatusOK:
		return &StatusError{StatusCode: r.statusCode, Status: r.status}
	}

	if err := json.Unmarshal(r.body, out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return nil
}

func (u *upstream) get(ctx context.Context, target string) (*reply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	u.l.Info("received "+u.name+" API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return &reply{statusCode: resp.StatusCode, status: resp.Status, body: body}, nil
}

func joinURL(base, path string) string {
	joined, err := url.JoinPath(base, path)
	if err != nil {
		return base + path
	}
	return joined
}
