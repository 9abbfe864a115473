package upstream

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"count-diff/core/utils"

	"github.com/klauspost/compress/gzip"
)

// maxBodyBytes caps how much of a single response is read.
const maxBodyBytes = 64 << 20

// Fetcher retrieves one page of records from one source.
type Fetcher interface {
	Fetch(ctx context.Context, src Source, page, size int) (*Page, error)
}

// Client is the HTTP implementation of Fetcher.
type Client struct {
	http      *http.Client
	transport Transport
	timeout   time.Duration
}

// NewClient creates a client for the given transport. Each fetch is bounded
// by timeout; zero falls back to 30 seconds.
func NewClient(transport Transport, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	rt := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   32,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}

	return &Client{
		http:      &http.Client{Transport: rt},
		transport: transport,
		timeout:   timeout,
	}
}

// WithTimeout returns a copy of the client sharing its connection pool but
// using a different per-fetch timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	cp := *c
	if timeout > 0 {
		cp.timeout = timeout
	}
	return &cp
}

// Timeout returns the per-fetch timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Fetch retrieves one page. It does not retry.
func (c *Client) Fetch(ctx context.Context, src Source, page, size int) (*Page, error) {
	payload, err := c.FetchPayload(ctx, src, page, size)
	if err != nil {
		return nil, err
	}
	return &Page{
		Total:   totalOf(payload),
		Records: src.Kind.Extract(payload),
	}, nil
}

// FetchPayload retrieves one page and returns the decoded payload untouched.
func (c *Client) FetchPayload(ctx context.Context, src Source, page, size int) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.transport.NewRequest(ctx, src, page, size)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	payload, err := DecodePayload(body)
	if err != nil {
		return nil, &FetchError{URL: req.URL.String(), Err: err}
	}
	return payload, nil
}

// FetchDocument issues a plain GET and returns the body. It shares the
// client's timeout and error reporting with page fetches.
func (c *Client) FetchDocument(ctx context.Context, rawURL string, header http.Header) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range header {
		req.Header[k] = v
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	target := req.URL.String()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, newFetchError(target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &FetchError{URL: target, Status: resp.StatusCode}
	}

	var r io.Reader = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, newFetchError(target, err)
		}
		defer zr.Close()
		r = zr
	}

	body, err := io.ReadAll(io.LimitReader(r, maxBodyBytes))
	if err != nil {
		return nil, newFetchError(target, err)
	}
	return body, nil
}

func totalOf(payload map[string]any) int {
	return utils.ToInt(payload["totalResult"])
}
