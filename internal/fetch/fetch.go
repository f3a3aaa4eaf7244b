package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/outreachkit/contactscout/internal/cache"
)

// DefaultTimeout bounds a page fetch when the client does not set its own.
const DefaultTimeout = 15 * time.Second

// NormalizeURL returns a fully qualified URL, prepending a scheme when the
// input lacks one. Many university sites use protocol-relative URLs
// ("//example.edu/page") or omit the scheme entirely; both get https. URLs
// already carrying a scheme pass through unchanged. The host and path are
// not validated here; a malformed result fails at fetch time.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		return raw
	}
	return "https://" + raw
}

// Client wraps http.Client for single-attempt page fetches. Each extraction
// request performs exactly one GET; there are no retries.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// Timeout bounds the whole fetch. Zero means DefaultTimeout.
	Timeout time.Duration
	// Cache, when non-nil, stores GET bodies on disk and revalidates with
	// conditional headers on repeat fetches.
	Cache *cache.PageCache
	// RedirectMaxHops caps redirect following to avoid loops. Zero means
	// default (5).
	RedirectMaxHops int
}

func (c *Client) getHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		// Clone to attach our redirect policy without mutating the caller's client
		base := *c.HTTPClient
		base.CheckRedirect = c.checkRedirectFunc()
		return &base
	}
	return &http.Client{CheckRedirect: c.checkRedirectFunc()}
}

// Get issues a single GET with context, user-agent, and a bounded timeout.
// It returns the response body and content type. Any network failure or
// non-2xx status is an error.
func (c *Client) Get(ctx context.Context, target string) ([]byte, string, error) {
	var etag, lastMod string
	if c.Cache != nil {
		if meta, err := c.Cache.LoadMeta(ctx, target); err == nil && meta != nil {
			etag = meta.ETag
			lastMod = meta.LastModified
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, "", fmt.Errorf("new request: %w", err)
	}
	if req.URL == nil || !isHTTPScheme(req.URL) {
		return nil, "", fmt.Errorf("unsupported URL scheme: %q", target)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}
	if lastMod != "" {
		req.Header.Set("If-Modified-Since", lastMod)
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	reqCtx, cancel := context.WithTimeout(req.Context(), timeout)
	defer cancel()
	req = req.WithContext(reqCtx)

	resp, err := c.getHTTPClient().Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if resp.StatusCode == http.StatusNotModified && c.Cache != nil {
		if cached, err := c.Cache.LoadBody(ctx, target); err == nil {
			return cached, contentType, nil
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	if c.Cache != nil {
		_ = c.Cache.Save(ctx, target, contentType, resp.Header.Get("ETag"), resp.Header.Get("Last-Modified"), body)
	}
	return body, contentType, nil
}

func (c *Client) checkRedirectFunc() func(req *http.Request, via []*http.Request) error {
	max := c.RedirectMaxHops
	if max <= 0 {
		max = 5
	}
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= max {
			return errors.New("too many redirects")
		}
		// Only allow http/https during redirects
		if req.URL == nil || !isHTTPScheme(req.URL) {
			return errors.New("redirect to unsupported scheme")
		}
		return nil
	}
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}
