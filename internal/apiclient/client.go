package apiclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the Yahoo Finance query host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Client calls named provider endpoints over HTTP. Network, credentials,
// and transport concerns all live here; callers treat responses as opaque.
type Client struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewClient creates a client with optional base URL override, API key, and
// proxy support.
func NewClient(baseURL, apiKey, proxyURL string) *Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// CallAPI resolves a named endpoint, issues one GET with the query mapping
// encoded as URL parameters, and decodes the JSON response into a generic
// map. The response shape is not inspected.
func (c *Client) CallAPI(endpoint string, query map[string]any) (map[string]any, error) {
	u, err := c.endpointURL(endpoint, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("call %s: read body: %w", endpoint, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("call %s: status %d, body: %s", endpoint, resp.StatusCode, string(body))
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("call %s: decode: %w", endpoint, err)
	}
	return result, nil
}

// endpointURL maps an endpoint name to a concrete URL. The chart endpoint
// takes the symbol in the path; remaining query fields become URL params.
func (c *Client) endpointURL(endpoint string, query map[string]any) (string, error) {
	switch endpoint {
	case "YahooFinance/get_stock_chart":
		symbol, _ := query["symbol"].(string)
		params := url.Values{}
		for k, v := range query {
			if k == "symbol" {
				continue
			}
			params.Set(k, encodeValue(v))
		}
		return fmt.Sprintf("%s/v8/finance/chart/%s?%s",
			c.BaseURL, url.PathEscape(symbol), params.Encode()), nil
	default:
		return "", fmt.Errorf("unknown endpoint: %s", endpoint)
	}
}

func encodeValue(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case bool:
		return strconv.FormatBool(n)
	default:
		return fmt.Sprint(n)
	}
}
