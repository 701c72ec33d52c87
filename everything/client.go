// Package everything implements lumi.Searcher against the JSON interface of
// the Everything HTTP server.
package everything

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/lumi"
	"golang.org/x/sync/semaphore"
)

// Defaults for a local Everything HTTP server.
const (
	DefaultBaseURL = "http://127.0.0.1:8080"
	DefaultTimeout = 10 * time.Second

	// HealthTimeout bounds the probe query done by CheckHealth.
	HealthTimeout = 3 * time.Second
)

var (
	_ lumi.Searcher      = (*Client)(nil)
	_ lumi.HealthChecker = (*Client)(nil)
)

// Client queries an Everything HTTP server. Queries are serialized because
// the index service answers one client at a time.
type Client struct {
	baseURL     *url.URL
	client      *http.Client
	timeout     time.Duration
	username    string
	password    string
	concurrency int64
	sem         *semaphore.Weighted
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithCredentials enables HTTP basic auth for servers that require a login.
func WithCredentials(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithConcurrency sets how many queries may be in flight at once.
// Defaults to 1.
func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = int64(n)
		}
	}
}

// NewClient creates a Client for the server at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid everything URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid everything URL %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL:     u,
		timeout:     DefaultTimeout,
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.client = &http.Client{Timeout: c.timeout}
	c.sem = semaphore.NewWeighted(c.concurrency)

	return c, nil
}

// response is the JSON body returned for json=1 queries.
type response struct {
	TotalResults int `json:"totalResults"`
	Results      []struct {
		Type string `json:"type"`
		Name string `json:"name"`
		Path string `json:"path"`
	} `json:"results"`
}

// Search runs query and returns at most maxResults items in the server's order.
func (c *Client) Search(ctx context.Context, query string, maxResults int, sort lumi.SortMode) ([]*lumi.SearchResult, error) {
	if maxResults <= 0 {
		return nil, lumi.Errorf(lumi.EINVALID, "max results must be positive")
	}
	if !sort.Valid() {
		return nil, lumi.Errorf(lumi.EINVALID, "unsupported sort mode %s", sort)
	}

	resp, err := c.query(ctx, query, maxResults, sort)
	if err != nil {
		return nil, err
	}

	results := make([]*lumi.SearchResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		if len(results) == maxResults {
			break
		}
		results = append(results, &lumi.SearchResult{Name: r.Name, Path: r.Path})
	}
	return results, nil
}

// CheckHealth runs an empty query.
func (c *Client) CheckHealth(ctx context.Context) lumi.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, HealthTimeout)
	defer cancel()

	resp, err := c.query(ctx, "", 1, lumi.SortDefault)
	if err != nil {
		if lumi.ErrorCode(err) == lumi.EUNAVAILABLE {
			return lumi.HealthStatus{Status: lumi.HealthNotFound, Detail: lumi.ErrorMessage(err)}
		}
		return lumi.HealthStatus{Status: lumi.HealthError, Detail: lumi.ErrorMessage(err)}
	}
	return lumi.HealthStatus{
		Status: lumi.HealthOK,
		Detail: fmt.Sprintf("Connected, %d items indexed", resp.TotalResults),
	}
}

func (c *Client) query(ctx context.Context, query string, count int, sort lumi.SortMode) (*response, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, lumi.Errorf(lumi.EUNAVAILABLE, "everything query canceled: %v", err)
	}
	defer c.sem.Release(1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(query, count, sort), nil)
	if err != nil {
		return nil, err
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, lumi.Errorf(lumi.EUNAVAILABLE, "everything unreachable: %v", urlErr.Err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, lumi.Errorf(lumi.EUPSTREAM, "everything status code: %d", resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, lumi.Errorf(lumi.EUPSTREAM, "everything returned invalid JSON: %v", err)
	}
	return &body, nil
}

func (c *Client) searchURL(query string, count int, sort lumi.SortMode) string {
	params := url.Values{}
	params.Set("search", query)
	params.Set("json", "1")
	params.Set("path_column", "1")
	params.Set("count", strconv.Itoa(count))
	if name := sortParam(sort); name != "" {
		params.Set("sort", name)
		params.Set("ascending", "0")
	}

	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/"
	u.RawQuery = params.Encode()
	return u.String()
}

// sortParam maps a sort mode onto the server's sort column name.
func sortParam(sort lumi.SortMode) string {
	switch sort {
	case lumi.SortSizeDesc:
		return "size"
	case lumi.SortDateModifiedDesc:
		return "date_modified"
	}
	return ""
}
