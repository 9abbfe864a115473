package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"count-diff/core/middleware/rayid"
)

// Transport turns a page request into an HTTP request.
// It is chosen once when the application starts.
type Transport interface {
	NewRequest(ctx context.Context, src Source, page, size int) (*http.Request, error)
}

// DirectTransport talks to the upstream servers directly.
type DirectTransport struct {
	Scheme   string
	Language string
	Site     string
	Header   http.Header
}

// NewDirectTransport builds a direct transport with the fixed identity headers.
func NewDirectTransport(cfg Config) *DirectTransport {
	h := http.Header{}
	h.Set("Accept", "application/json, text/plain, */*")
	h.Set("Accept-Encoding", "gzip")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	h.Set("User-Agent", cfg.UserAgent)
	h.Set("Referer", cfg.Referer)
	h.Set("Origin", cfg.Origin)

	scheme := cfg.Scheme
	if scheme == "" {
		scheme = "https"
	}
	return &DirectTransport{Scheme: scheme, Language: cfg.Language, Site: cfg.Site, Header: h}
}

func (t *DirectTransport) NewRequest(ctx context.Context, src Source, page, size int) (*http.Request, error) {
	if !src.Kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, src.Kind)
	}
	q := url.Values{}
	q.Set("data", src.Filter)
	q.Set("contextLanguage", t.Language)
	q.Set("contextSite", t.Site)
	q.Set("pageNumber", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(size))

	u := url.URL{
		Scheme:   t.Scheme,
		Host:     src.Domain,
		Path:     src.Kind.Path(),
		RawQuery: q.Encode(),
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header = t.Header.Clone()
	return req, nil
}

// ProxyTransport forwards page requests to the /proxy endpoint of another
// instance of this service that has network access to the upstream servers.
type ProxyTransport struct {
	BaseURL string
}

// NewProxyTransport builds a proxy transport for the given base URL.
func NewProxyTransport(baseURL string) *ProxyTransport {
	return &ProxyTransport{BaseURL: strings.TrimRight(baseURL, "/")}
}

func (t *ProxyTransport) NewRequest(ctx context.Context, src Source, page, size int) (*http.Request, error) {
	if !src.Kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, src.Kind)
	}
	q := url.Values{}
	q.Set("domain", src.Domain)
	q.Set("service", string(src.Kind))
	q.Set("data", src.Filter)
	q.Set("pageNumber", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(size))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.BaseURL+"/proxy?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("ngrok-skip-browser-warning", "true")
	if id := rayid.FromContext(ctx); id != "" {
		req.Header.Set(rayid.HeaderName, id)
	}
	return req, nil
}

// NewTransport selects the proxy transport when a proxy URL is configured.
func NewTransport(cfg Config) Transport {
	if cfg.ProxyURL != "" {
		return NewProxyTransport(cfg.ProxyURL)
	}
	return NewDirectTransport(cfg)
}
