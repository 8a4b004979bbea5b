package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the production SerpAPI endpoint.
	DefaultBaseURL = "https://serpapi.com"

	// DefaultTimeout bounds the single outbound call; there are no retries.
	DefaultTimeout = 10 * time.Second

	searchPath = "/search.json"

	// Search locale sent on every request.
	languageTR = "tr"
	countryTR  = "tr"
)

// Client calls the SerpAPI Google search endpoint over HTTPS.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// OrganicResult is one search hit. All fields are optional in the provider's
// response; callers apply their own fallbacks.
type OrganicResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Response is the subset of the SerpAPI payload this app consumes.
type Response struct {
	OrganicResults []OrganicResult `json:"organic_results"`
}

// NewClient constructs a SerpAPI client. Empty baseURL or non-positive
// timeout fall back to the defaults.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search performs a single Google search for query (Turkish locale).
func (c *Client) Search(ctx context.Context, query string) (*Response, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("hl", languageTR)
	params.Set("gl", countryTR)
	params.Set("api_key", c.apiKey)

	reqURL := c.baseURL + searchPath + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build serpapi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call serpapi: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("serpapi status %d", resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode serpapi response: %w", err)
	}
	return &out, nil
}
