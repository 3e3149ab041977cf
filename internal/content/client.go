package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Loader fetches a content document. Implemented by *Client and by test
// doubles.
type Loader interface {
	Load(ctx context.Context) (*Document, error)
}

// Ensure Client implements Loader at compile time.
var _ Loader = (*Client)(nil)

// Client fetches the content document over HTTP. Loads are single-shot:
// no retry, no caching. Recovery decisions belong to the caller.
type Client struct {
	url       *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "foyer/0.1"
	requestTimeout   = 10 * time.Second
)

// FetchError reports a transport failure or a non-success status while
// retrieving the content document.
type FetchError struct {
	URL    string
	Status int // zero when the request never produced a response
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a response body that is not a well-formed content
// document.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewClient builds a Client for the given content URL. A fragment on
// the URL is stripped; it addresses a modal, not the resource.
func NewClient(rawURL string) (*Client, error) {
	u, err := parseContentURL(rawURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		url: u,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Load retrieves and decodes the content document.
func (c *Client) Load(ctx context.Context) (*Document, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{URL: c.url.String(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URL: c.url.String(), Status: resp.StatusCode}
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, &ParseError{URL: c.url.String(), Err: err}
	}
	return &doc, nil
}

func parseContentURL(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, fmt.Errorf("content url is empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse content url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("content url %q: unsupported scheme %q", rawURL, u.Scheme)
	}
	u.Fragment = ""
	return u, nil
}

// Fragment returns the fragment of rawURL, or "" when absent or the URL
// does not parse.
func Fragment(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return u.Fragment
}
