// Package riot provides a typed client for the Riot spectator and account
// APIs. It handles connection pooling, outbound rate limiting, retries with
// backoff and a circuit breaker.
package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Guliveer/livegame-go/internal/config"
	"github.com/Guliveer/livegame-go/internal/constants"
	"github.com/Guliveer/livegame-go/internal/jsonutil"
	"github.com/Guliveer/livegame-go/internal/logger"
	"github.com/Guliveer/livegame-go/internal/model"
)

// ErrCircuitOpen is returned when the circuit breaker is open and requests
// are being skipped to avoid hammering a failing API.
var ErrCircuitOpen = errors.New("circuit breaker open: API requests temporarily suspended")

// ErrNotFound is returned by low-level calls when the upstream answers 404.
var ErrNotFound = errors.New("riot: resource not found")

// circuitBreaker tracks consecutive failures and backs off when the API
// keeps failing.
type circuitBreaker struct {
	mu               sync.Mutex
	consecutiveFails int
	cooldownUntil    time.Time
}

func (cb *circuitBreaker) recordSuccess() {
	cb.mu.Lock()
	cb.consecutiveFails = 0
	cb.mu.Unlock()
}

// recordFailure increments the failure counter and, after 10 consecutive
// failures, opens the breaker for a growing cooldown capped at 5 minutes.
func (cb *circuitBreaker) recordFailure() {
	cb.mu.Lock()
	cb.consecutiveFails++
	if cb.consecutiveFails >= 10 {
		backoff := time.Duration(cb.consecutiveFails-9) * 30 * time.Second
		if backoff > 5*time.Minute {
			backoff = 5 * time.Minute
		}
		cb.cooldownUntil = time.Now().Add(backoff)
	}
	cb.mu.Unlock()
}

func (cb *circuitBreaker) shouldSkip() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return time.Now().Before(cb.cooldownUntil)
}

// StatusError is a non-retryable upstream HTTP failure.
type StatusError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("riot %s returned status %d: %s", e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("riot %s returned status %d", e.Operation, e.StatusCode)
}

// Client is the Riot HTTP client with connection pooling, rate limiting,
// circuit breaker, and retry logic.
type Client struct {
	httpClient      *http.Client
	limiter         *rate.Limiter
	breaker         *circuitBreaker
	log             *logger.Logger
	apiKey          string
	baseURLTemplate string
	maxRetries      int
	backoffBase     time.Duration
}

// NewClient creates a new Client from the upstream configuration.
func NewClient(cfg config.RiotConfig, log *logger.Logger) *Client {
	transport := &http.Transport{
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	baseURL := cfg.BaseURLTemplate
	if baseURL == "" {
		baseURL = constants.RiotBaseURLTemplate
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		limiter:         rate.NewLimiter(limit, burst),
		breaker:         &circuitBreaker{},
		log:             log.WithComponent("riot"),
		apiKey:          cfg.APIKey,
		baseURLTemplate: baseURL,
		maxRetries:      cfg.Retries(),
		backoffBase:     time.Second,
	}
}

// CurrentGame fetches the active game of a player. A player that is not in
// a game yields (nil, nil).
func (c *Client) CurrentGame(ctx context.Context, puuid string, platform model.PlatformRoute) (*CurrentGameInfo, error) {
	path := fmt.Sprintf(constants.SpectatorActiveGamePath, url.PathEscape(puuid))
	body, err := c.get(ctx, platform.Host(), path, "spectator.activeGame")
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var info CurrentGameInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("parsing active game response: %w", err)
	}
	return &info, nil
}

// Account resolves a player identity to its display name and tag.
func (c *Client) Account(ctx context.Context, puuid string, region model.RegionalRoute) (*model.Account, error) {
	path := fmt.Sprintf(constants.AccountByPuuidPath, url.PathEscape(puuid))
	body, err := c.get(ctx, string(region), path, "account.byPuuid")
	if err != nil {
		return nil, err
	}

	var account model.Account
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, fmt.Errorf("parsing account response: %w", err)
	}
	return &account, nil
}

// get performs a GET with the API key, rate limiting and retry logic for
// transient errors (network, 429, 5xx). A 429 honours Retry-After when the
// upstream sends it.
//
// Individual retries are logged at DEBUG; only the final failure is logged
// at WARN.
func (c *Client) get(ctx context.Context, host, path, opName string) ([]byte, error) {
	if c.breaker.shouldSkip() {
		c.log.Debug("Circuit breaker open, skipping request", "operation", opName)
		return nil, ErrCircuitOpen
	}

	endpoint := fmt.Sprintf(c.baseURLTemplate, host) + path
	var retryAfter time.Duration

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * c.backoffBase
			if retryAfter > backoff {
				backoff = retryAfter
			}
			c.log.Debug("Retrying Riot request",
				"operation", opName,
				"attempt", fmt.Sprintf("%d/%d", attempt, c.maxRetries),
				"backoff", backoff)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for rate limiter: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("creating Riot request: %w", err)
		}
		req.Header.Set(constants.RiotTokenHeader, c.apiKey)
		req.Header.Set("User-Agent", constants.DefaultUserAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if attempt < c.maxRetries {
				c.log.Debug("Riot request failed, will retry",
					"operation", opName,
					"attempt", fmt.Sprintf("%d/%d", attempt+1, c.maxRetries),
					"error", err)
				continue
			}
			c.breaker.recordFailure()
			c.log.Warn("Riot request failed after all retries",
				"operation", opName,
				"attempts", c.maxRetries+1,
				"error", err)
			return nil, fmt.Errorf("riot request for %s failed: %w", opName, err)
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, constants.MaxResponseBytes))
		resp.Body.Close()

		if readErr != nil {
			if attempt < c.maxRetries {
				continue
			}
			c.breaker.recordFailure()
			return nil, fmt.Errorf("reading Riot response for %s: %w", opName, readErr)
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			c.breaker.recordSuccess()
			c.log.Debug("Riot request completed", "operation", opName, "status", resp.StatusCode)
			return body, nil

		case resp.StatusCode == http.StatusNotFound:
			c.breaker.recordSuccess()
			return nil, ErrNotFound

		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			retryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
			if attempt < c.maxRetries {
				c.log.Debug("Riot request returned retryable status, will retry",
					"operation", opName,
					"status", resp.StatusCode,
					"attempt", fmt.Sprintf("%d/%d", attempt+1, c.maxRetries))
				continue
			}
			c.breaker.recordFailure()
			c.log.Warn("Riot request returned retryable status after all retries",
				"operation", opName,
				"status", resp.StatusCode,
				"attempts", c.maxRetries+1)
			return nil, &StatusError{Operation: opName, StatusCode: resp.StatusCode, Message: statusMessage(body)}

		default:
			return nil, &StatusError{Operation: opName, StatusCode: resp.StatusCode, Message: statusMessage(body)}
		}
	}

	c.breaker.recordFailure()
	return nil, fmt.Errorf("riot request for %s exhausted retries", opName)
}

func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// statusMessage extracts {"status": {"message": ...}} from an error body.
func statusMessage(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	status, ok := payload["status"].(map[string]any)
	if !ok {
		return ""
	}
	return jsonutil.StringFromMap(status, "message")
}
