// Package bluelytics wraps the bluelytics.com.ar public API, the feed
// the blue dollar sell rate is refreshed from once a day.
package bluelytics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/santiagopugliese/personal-finances/config"
)

type Client struct {
	httpClient *http.Client
	url        string
}

func NewClient(cfg config.RatesConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.FetchTimeout},
		url:        cfg.BluelyticsURL,
	}
}

type latestResponse struct {
	Blue struct {
		ValueSell decimal.Decimal `json:"value_sell"`
	} `json:"blue"`
}

// FetchSellRate returns blue.value_sell from the /v2/latest endpoint.
func (c *Client) FetchSellRate(ctx context.Context) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return decimal.Decimal{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("bluelytics: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Decimal{}, fmt.Errorf("bluelytics: status %d", resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Decimal{}, fmt.Errorf("bluelytics: decoding response: %w", err)
	}

	if !body.Blue.ValueSell.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("bluelytics: blue.value_sell missing or invalid")
	}

	return body.Blue.ValueSell, nil
}
