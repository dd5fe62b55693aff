package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/search"
)

// Client wraps HTTP calls to the marquee server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new marquee API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("server error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		var e struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		if json.Unmarshal(body, &e) == nil && e.Code != "" {
			apiErr.Code = e.Code
			apiErr.Message = e.Error
		}
		return apiErr
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

// MoviesResponse is the server's catalog listing.
type MoviesResponse struct {
	Movies  []catalog.Entry `json:"movies"`
	Count   int             `json:"count"`
	Source  string          `json:"source"`
	Version string          `json:"version,omitempty"`
}

// SearchResponse is the server's search result.
type SearchResponse struct {
	Movies []catalog.Entry `json:"movies"`
	Count  int             `json:"count"`
	Query  struct {
		Name    string `json:"name,omitempty"`
		ID      int64  `json:"id,omitempty"`
		Genre   string `json:"genre,omitempty"`
		Summary string `json:"summary"`
	} `json:"query"`
	Source string `json:"source"`
}

// StatusResponse is the server's status report.
type StatusResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Config     string `json:"config"`
	CacheTTL   string `json:"cache_ttl"`
	GenreMatch string `json:"genre_match"`
	CachedKeys int    `json:"cached_keys"`
}

// Movies lists the current catalog.
func (c *Client) Movies() (*MoviesResponse, error) {
	var resp MoviesResponse
	if err := c.get("/api/v1/movies", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search filters the catalog on the server.
func (c *Client) Search(criteria search.Criteria) (*SearchResponse, error) {
	params := url.Values{}
	if criteria.Name != "" {
		params.Set("name", criteria.Name)
	}
	if criteria.ID != 0 {
		params.Set("id", strconv.FormatInt(criteria.ID, 10))
	}
	if criteria.Genre != "" {
		params.Set("genre", criteria.Genre)
	}

	path := "/api/v1/movies/search"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp SearchResponse
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Status returns the server status.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
