package neo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.nasa.gov/neo/rest/v1"

// ErrNotFound reports a lookup for an ID the NeoWs catalog does not contain.
var ErrNotFound = errors.New("NEO not found")

// maxResponseBytes bounds feed responses so a misbehaving upstream cannot
// consume unbounded memory.
const maxResponseBytes = 50 * 1024 * 1024

// Client retrieves near-Earth-object data from the NASA NeoWs API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a NeoWs client. An empty baseURL selects the public API;
// an empty apiKey falls back to NASA's rate-limited demo key.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if apiKey == "" {
		apiKey = "DEMO_KEY"
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// FetchFeed retrieves and flattens the close-approach feed for [start, end].
// NeoWs limits the window to 7 days.
func (c *Client) FetchFeed(ctx context.Context, start, end time.Time) ([]Object, error) {
	q := url.Values{}
	q.Set("start_date", start.UTC().Format("2006-01-02"))
	q.Set("end_date", end.UTC().Format("2006-01-02"))
	q.Set("api_key", c.apiKey)

	body, err := c.get(ctx, c.baseURL+"/feed?"+q.Encode())
	if err != nil {
		return nil, err
	}
	return ParseFeed(body, c.logger)
}

// FetchBrowse retrieves and flattens one page of the NEO catalog.
func (c *Client) FetchBrowse(ctx context.Context, page, size int) ([]Object, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	q.Set("api_key", c.apiKey)

	body, err := c.get(ctx, c.baseURL+"/neo/browse?"+q.Encode())
	if err != nil {
		return nil, err
	}
	return ParseBrowse(body, c.logger)
}

// FetchLookup retrieves one object's detail record by its NeoWs ID.
func (c *Client) FetchLookup(ctx context.Context, id string) (Object, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)

	body, err := c.get(ctx, c.baseURL+"/neo/"+url.PathEscape(id)+"?"+q.Encode())
	if err != nil {
		return Object{}, err
	}
	return ParseLookup(body, c.logger)
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching NEO data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from NeoWs", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if len(body) > maxResponseBytes {
		return nil, fmt.Errorf("response exceeds %d byte limit", maxResponseBytes)
	}

	return body, nil
}
