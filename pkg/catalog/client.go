package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"gitlab.com/tinyland/lab/vitrine/pkg/cache"
)

const catalogCacheKey = "catalog:listing"

// maxBodyBytes caps how much of a catalog response we are willing to read.
const maxBodyBytes = 8 << 20

// ClientOptions configures a Client.
type ClientOptions struct {
	// Endpoint is the base URL of the catalog API. The listing is fetched
	// from Endpoint + "/catalog".
	Endpoint string

	// Timeout bounds one HTTP request. Default: 10s.
	Timeout time.Duration

	// CacheTTL is how long a fetched listing stays fresh. Default: 15m.
	CacheTTL time.Duration

	// Store, when non-nil, persists listings between runs and serves them
	// while fresh without touching the network.
	Store *cache.Store

	Logger *slog.Logger
}

// Client fetches the catalog over HTTP, reading through the disk cache.
type Client struct {
	opts ClientOptions
	http *http.Client
}

// NewClient returns a catalog client for the given endpoint.
func NewClient(opts ClientOptions) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 15 * time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Client{
		opts: opts,
		http: &http.Client{Timeout: opts.Timeout},
	}
}

// Name implements Source.
func (c *Client) Name() string {
	return "http"
}

// Fetch returns the catalog, serving a fresh cached copy when one exists
// and hitting the network otherwise.
func (c *Client) Fetch(ctx context.Context) (*Catalog, error) {
	if c.opts.Store != nil {
		if cat, ok := cache.GetTyped[Catalog](c.opts.Store, catalogCacheKey); ok {
			c.opts.Logger.Debug("catalog served from cache", "products", cat.Len())
			return &cat, nil
		}
	}

	cat, err := c.fetchRemote(ctx)
	if err != nil {
		return nil, err
	}

	if c.opts.Store != nil {
		if err := cache.PutTypedWithTTL(c.opts.Store, catalogCacheKey, *cat, c.opts.CacheTTL); err != nil {
			c.opts.Logger.Warn("failed to cache catalog", "error", err)
		}
	}
	return cat, nil
}

func (c *Client) fetchRemote(ctx context.Context) (*Catalog, error) {
	url := c.opts.Endpoint + "/catalog"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog: fetch %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("catalog: read response: %w", err)
	}

	var cat Catalog
	if err := json.Unmarshal(body, &cat); err != nil {
		return nil, fmt.Errorf("catalog: decode response: %w", err)
	}
	if cat.UpdatedAt.IsZero() {
		cat.UpdatedAt = time.Now()
	}

	c.opts.Logger.Debug("catalog fetched", "products", cat.Len())
	return &cat, nil
}

// FetchImage downloads a product image, reading through the cache keyed by
// URL. Returns the raw encoded bytes (PNG/JPEG as served).
func (c *Client) FetchImage(ctx context.Context, url string) ([]byte, error) {
	key := "image:" + url
	if c.opts.Store != nil {
		if data, ok := c.opts.Store.Get(key); ok {
			return data, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: build image request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: fetch image %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog: fetch image %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("catalog: read image: %w", err)
	}

	if c.opts.Store != nil {
		if err := c.opts.Store.PutWithTTL(key, data, c.opts.CacheTTL); err != nil {
			c.opts.Logger.Warn("failed to cache image", "url", url, "error", err)
		}
	}
	return data, nil
}
