// Package mealapi is a typed client for the mealgrid HTTP API.
package mealapi

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"mealgrid/internal/adapters/observability"
	"mealgrid/internal/domain"
)

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("API base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("API base URL: %w", err)
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- Public API ----

// Search runs a term and filter query. Filters are sent as repeated
// filter= parameters in their raw form and resolved by the server.
func (c *Client) Search(ctx context.Context, term string, filters []string) (domain.SearchPage, error) {
	v := url.Values{}
	if term != "" {
		v.Set("q", term)
	}
	for _, f := range filters {
		v.Add("filter", f)
	}
	var out domain.SearchPage
	return out, c.do(ctx, http.MethodGet, "/v1/meals/search?"+v.Encode(), nil, &out)
}

func (c *Client) Meal(ctx context.Context, id int64) (domain.MealView, error) {
	var out domain.MealView
	return out, c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/meals/%d", id), nil, &out)
}

func (c *Client) Restaurants(ctx context.Context) ([]domain.RestaurantView, error) {
	var out []domain.RestaurantView
	return out, c.do(ctx, http.MethodGet, "/v1/restaurants", nil, &out)
}

func (c *Client) Restaurant(ctx context.Context, id int64) (domain.RestaurantView, error) {
	var out domain.RestaurantView
	return out, c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/restaurants/%d", id), nil, &out)
}

func (c *Client) Facets(ctx context.Context) (domain.Facets, error) {
	var out domain.Facets
	return out, c.do(ctx, http.MethodGet, "/v1/facets", nil, &out)
}

func (c *Client) Quote(ctx context.Context, lines []domain.CartLine) (domain.Quote, error) {
	body, err := json.Marshal(map[string]any{"lines": lines})
	if err != nil {
		return domain.Quote{}, err
	}
	var out domain.Quote
	return out, c.do(ctx, http.MethodPost, "/v1/cart/quote", body, &out)
}

// ---- Internals ----

var (
	ErrNotFound    = errors.New("mealapi: not found")
	ErrBadRequest  = errors.New("mealapi: bad request")
	ErrRateLimited = errors.New("mealapi: rate limited")
)

type problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// do performs a request with client-side rate limiting, retries, and JSON decode into out.
// Retries on 429 and transient 5xx, honoring Retry-After when provided.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	// client-side rate limiting
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}
	endpoint, _, _ := strings.Cut(path, "?")

	var lastErr error
	for i := 0; i < 4; i++ {
		// build a fresh request each attempt
		var rdr io.Reader
		if body != nil {
			rdr = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.base+path, rdr)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "mealgrid-browse/1.0")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.hc.Do(req)
		if err != nil {
			// network error or context canceled
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveExternal("mealgrid", endpoint, resp.StatusCode)

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNotFound:
			resp.Body.Close()
			return ErrNotFound

		case http.StatusBadRequest:
			p := readProblem(resp)
			return fmt.Errorf("%w: %s", ErrBadRequest, p.Detail)

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			// Prefer server-provided Retry-After; otherwise exponential backoff.
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if resp.StatusCode == http.StatusTooManyRequests {
				lastErr = ErrRateLimited
			}
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			// read a small error body for diagnostics
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

func readProblem(resp *http.Response) problem {
	defer resp.Body.Close()
	var p problem
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&p)
	return p
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles from 200ms per attempt with up to +50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}
