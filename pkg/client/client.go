package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Client calls the catalog API over HTTP. It is safe for concurrent use;
// the bearer token is attached to every request while set.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string

	Auth       *AuthAPI
	Authors    *AuthorsAPI
	Publishers *PublishersAPI
	Books      *BooksAPI
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient swaps the underlying transport (tests, custom timeouts).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// New constructs a client for the API at baseURL (e.g. "http://host:8080/api").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Auth = &AuthAPI{c: c}
	c.Authors = &AuthorsAPI{c: c}
	c.Publishers = &PublishersAPI{c: c}
	c.Books = &BooksAPI{c: c}
	return c
}

// SetToken installs (or clears, with "") the bearer token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token, "" when unset.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorProbe covers the error shapes the server produces: {"message": ...},
// {"error": ...} and {"errors": {field: [msg...]}}.
type errorProbe struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	dec := json.NewDecoder(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var probe errorProbe
		if err := dec.Decode(&probe); err != nil {
			return &DecodeError{Status: resp.StatusCode, Err: err}
		}
		msg := probe.Message
		if msg == "" {
			msg = probe.Error
		}
		return &APIError{Status: resp.StatusCode, Message: msg, Fields: probe.Errors}
	}

	if out == nil {
		return nil
	}
	if err := dec.Decode(out); err != nil {
		return &DecodeError{Status: resp.StatusCode, Err: err}
	}
	return nil
}
