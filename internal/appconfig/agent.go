package appconfig

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

const defaultAgentURL = "http://localhost:2772"
const defaultTimeout = 5 * time.Second

// maxDocumentSize bounds how much of a response body we read.
const maxDocumentSize = 4 << 20

// AgentClient fetches configuration from an AppConfig agent style HTTP endpoint:
//
//	GET {baseURL}/applications/{app}/environments/{env}/configurations/{config}
type AgentClient struct {
	baseURL    string
	clientID   string
	timeout    time.Duration
	httpClient *http.Client
}

// Option configures an AgentClient.
type Option func(*AgentClient)

// WithBaseURL sets the agent base URL.
func WithBaseURL(u string) Option {
	return func(c *AgentClient) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient sets a custom HTTP client. The client is not modified;
// a nil client keeps the default.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *AgentClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout. It applies to a copy of the
// HTTP client, never to a client passed with WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *AgentClient) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithClientID sets the client identifier sent with each request.
// An empty id keeps the generated default.
func WithClientID(id string) Option {
	return func(c *AgentClient) {
		if id != "" {
			c.clientID = id
		}
	}
}

// NewAgentClient creates a new agent client.
func NewAgentClient(opts ...Option) *AgentClient {
	c := &AgentClient{
		baseURL:  defaultAgentURL,
		clientID: uuid.NewString(),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// ClientID returns the identifier sent in the X-Client-Id header.
func (c *AgentClient) ClientID() string {
	return c.clientID
}

// Fetch retrieves the configuration document for key.
func (c *AgentClient) Fetch(ctx context.Context, key Key) (*Document, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/applications/%s/environments/%s/configurations/%s",
		c.baseURL,
		url.PathEscape(key.Application),
		url.PathEscape(key.Environment),
		url.PathEscape(key.Config),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Client-Id", c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, resp.Status)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: agent returned %s", ErrUnavailable, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	if len(body) > maxDocumentSize {
		return nil, fmt.Errorf("%w: document exceeds %d MiB", ErrUnavailable, maxDocumentSize>>20)
	}

	return &Document{
		Content:     body,
		ContentType: resp.Header.Get("Content-Type"),
		Version:     resp.Header.Get("Configuration-Version"),
	}, nil
}
