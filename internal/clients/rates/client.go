// Package rates fetches market rate bands from an external data
// endpoint. This is provisioning for the compensation matcher's lookup
// table, not the trending-suggestions API, which this service does not
// consume.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gigmatch/match-engine/internal/matching"
	"golang.org/x/time/rate"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type rateBandResponse struct {
	Category string  `json:"category"`
	Low      float64 `json:"low"`
	Medium   float64 `json:"medium"`
	High     float64 `json:"high"`
}

type Client struct {
	endpoint    string
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
}

func NewClient(endpoint string) *Client {
	return &Client{endpoint: endpoint, httpClient: &http.Client{}}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

// FetchRates downloads the category rate-band table. Categories with
// no data stay absent; lookups for them fall back to the default band.
func (c *Client) FetchRates(ctx context.Context) (matching.RateTable, error) {
	body, err := c.sendRequest(ctx, http.MethodGet, c.endpoint)
	if err != nil {
		return nil, err
	}

	var bands []rateBandResponse
	if err = json.Unmarshal(body, &bands); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}

	table := make(matching.RateTable, len(bands))
	for _, band := range bands {
		table[band.Category] = matching.RateBand{
			Low:    band.Low,
			Medium: band.Medium,
			High:   band.High,
		}
	}
	return table, nil
}

func (c *Client) sendRequest(ctx context.Context, method string, url string) ([]byte, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %v", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
