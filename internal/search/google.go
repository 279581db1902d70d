package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://www.googleapis.com/customsearch/v1"

	// querySuffix narrows every search to the shop's domain.
	querySuffix = " hairstyle men"

	requestTimeout = 5 * time.Second
	providerPage   = 8
	maxResults     = 6
	maxTitleRunes  = 60
)

// Item is the reduced shape returned to the dashboard search box.
type Item struct {
	Link  string `json:"link"`
	Title string `json:"title"`
}

// Client proxies image searches to Google Custom Search.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cxID       string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the provider endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

func NewClient(apiKey, cxID string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		cxID:       cxID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Available reports whether both provider credentials are configured.
func (c *Client) Available() bool {
	return c.apiKey != "" && c.cxID != ""
}

type providerResponse struct {
	Items []struct {
		Link  string `json:"link"`
		Title string `json:"title"`
	} `json:"items"`
}

// SearchImages forwards the query (suffixed with the domain term) and maps
// the provider items to at most maxResults entries with truncated titles.
// An empty query returns an empty list without any external call.
func (c *Client) SearchImages(ctx context.Context, query string) ([]Item, error) {
	items := make([]Item, 0, maxResults)
	if query == "" {
		return items, nil
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.cxID)
	params.Set("searchType", "image")
	params.Set("q", query+querySuffix)
	params.Set("num", strconv.Itoa(providerPage))
	params.Set("safe", "medium")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search provider returned status %d", resp.StatusCode)
	}

	var decoded providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	for _, item := range decoded.Items {
		if len(items) == maxResults {
			break
		}
		items = append(items, Item{
			Link:  item.Link,
			Title: truncateTitle(item.Title),
		})
	}
	return items, nil
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) > maxTitleRunes {
		runes = runes[:maxTitleRunes]
	}
	return string(runes) + "..."
}
