package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/alexisbeaulieu97/pokedex/internal/config"
	"github.com/alexisbeaulieu97/pokedex/internal/logger"
	pokedexerrors "github.com/alexisbeaulieu97/pokedex/pkg/errors"
)

const maxBodyBytes = 8 << 20

var placeholderRegex = regexp.MustCompile(`\[([a-zA-Z_]+)\]`)

// Params fills the bracketed placeholders of a path template.
type Params map[string]string

// Client fetches and decodes resources from the REST API.
type Client struct {
	baseURL       *url.URL
	http          *http.Client
	userAgent     string
	retryAttempts int
	retryDelay    time.Duration
	cache         *ResponseCache
	group         singleflight.Group
	log           *logger.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithCache shares a response cache between clients.
func WithCache(cache *ResponseCache) Option {
	return func(c *Client) {
		if cache != nil {
			c.cache = cache
		}
	}
}

// New creates a client for the configured API.
func New(cfg config.APIConfig, log *logger.Logger, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base url %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid api base url %q: scheme and host required", cfg.BaseURL)
	}
	if log == nil {
		log = logger.Nop()
	}

	c := &Client{
		baseURL:       base,
		http:          &http.Client{Timeout: cfg.Timeout},
		userAgent:     cfg.UserAgent,
		retryAttempts: cfg.RetryAttempts,
		retryDelay:    cfg.RetryDelay,
		cache:         NewResponseCache(),
		log:           log.With("component", "pokeapi"),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ExpandPath substitutes every [name] placeholder in template with the
// path-escaped value from params.
func ExpandPath(template string, params Params) (string, error) {
	var missing []string
	expanded := placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		key := match[1 : len(match)-1]
		value, ok := params[key]
		if !ok || value == "" {
			missing = append(missing, key)
			return match
		}
		return url.PathEscape(value)
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("path %q: missing params %s", template, strings.Join(missing, ", "))
	}
	return expanded, nil
}

// ResolveURL turns a path template or an absolute URL into a request URL.
// Absolute URLs (such as a list page's next link) are used verbatim.
func (c *Client) ResolveURL(template string, params Params) (string, error) {
	expanded, err := ExpandPath(template, params)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(expanded, "http://") || strings.HasPrefix(expanded, "https://") {
		if _, err := url.Parse(expanded); err != nil {
			return "", fmt.Errorf("invalid url %q: %w", expanded, err)
		}
		return expanded, nil
	}

	target := c.baseURL.String() + "/" + strings.TrimLeft(expanded, "/")
	if _, err := url.Parse(target); err != nil {
		return "", fmt.Errorf("invalid url %q: %w", target, err)
	}
	return target, nil
}

// Fetch resolves template against the base URL, performs a GET and decodes
// the JSON body into out.
func (c *Client) Fetch(ctx context.Context, template string, params Params, out any) error {
	target, err := c.ResolveURL(template, params)
	if err != nil {
		return pokedexerrors.NewFetchError(template, err)
	}

	body, err := c.get(ctx, target)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.cache.Invalidate(target)
		return pokedexerrors.NewFetchError(target, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// Pokemon fetches /pokemon/{id}.
func (c *Client) Pokemon(ctx context.Context, id string) (*Pokemon, error) {
	var out Pokemon
	if err := c.Fetch(ctx, "/pokemon/[id]", Params{"id": id}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Species fetches /pokemon-species/{id}/.
func (c *Client) Species(ctx context.Context, id string) (*Species, error) {
	var out Species
	if err := c.Fetch(ctx, "/pokemon-species/[id]/", Params{"id": id}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPage fetches one list page given either a relative path such as
// "/pokemon?limit=21" or the absolute next link of a previous page.
func (c *Client) ListPage(ctx context.Context, pathOrURL string) (*ListPage, error) {
	var out ListPage
	if err := c.Fetch(ctx, pathOrURL, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	if body, ok := c.cache.Get(target); ok {
		c.log.With("url", target).Debug("cache hit")
		return body, nil
	}

	// The shared fetch outlives any single caller; each caller still stops
	// waiting on its own ctx. Requests stay bounded by the http timeout.
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(target, func() (any, error) {
		body, err := c.getWithRetry(shared, target)
		if err != nil {
			return nil, err
		}
		c.cache.Set(target, body)
		return body, nil
	})

	select {
	case <-ctx.Done():
		return nil, pokedexerrors.NewFetchError(target, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (c *Client) getWithRetry(ctx context.Context, target string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.retryAttempts; attempt++ {
		if attempt > 0 {
			wait := c.retryDelay * time.Duration(attempt)
			c.log.WithFields(map[string]any{"url": target, "attempt": attempt, "wait": wait.String()}).Warn("retrying request")
			select {
			case <-ctx.Done():
				return nil, pokedexerrors.NewFetchError(target, ctx.Err())
			case <-time.After(wait):
			}
		}

		body, err := c.do(ctx, target)
		if err == nil {
			return body, nil
		}
		lastErr = err

		var fetchErr *pokedexerrors.FetchError
		if !errors.As(err, &fetchErr) || !fetchErr.Retryable() || ctx.Err() != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, pokedexerrors.NewFetchError(target, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, pokedexerrors.NewFetchError(target, err)
	}
	defer resp.Body.Close()

	c.log.WithFields(map[string]any{
		"url":         target,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("upstream response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, pokedexerrors.NewStatusError(target, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, pokedexerrors.NewFetchError(target, err)
	}
	return body, nil
}
