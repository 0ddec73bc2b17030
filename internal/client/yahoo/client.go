package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Client struct {
	host       string
	httpClient *http.Client
}

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.Status, e.Body)
}

func NewClient(httpClient *http.Client, host string) *Client {
	if host == "" {
		host = "https://query2.finance.yahoo.com"
	}
	host = strings.TrimRight(host, "/")
	return &Client{
		host:       host,
		httpClient: httpClient,
	}
}

// GetChain fetches the snapshot for the nearest listed expiration, along
// with the underlying price and the full expiration list.
func (c *Client) GetChain(ctx context.Context, ticker string) (*ChainSnapshot, error) {
	return c.fetchChain(ctx, ticker, nil)
}

// GetChainForExpiration fetches the call/put rows for one specific
// expiration date.
func (c *Client) GetChainForExpiration(ctx context.Context, ticker string, exp time.Time) (*ChainSnapshot, error) {
	return c.fetchChain(ctx, ticker, &exp)
}

func (c *Client) fetchChain(ctx context.Context, ticker string, exp *time.Time) (*ChainSnapshot, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, fmt.Errorf("ticker is required")
	}
	query := url.Values{}
	if exp != nil {
		query.Set("date", strconv.FormatInt(exp.UTC().Unix(), 10))
	}
	body, err := c.doRequest(ctx, "/v7/finance/options/"+url.PathEscape(ticker), query)
	if err != nil {
		return nil, err
	}
	snap, err := parseChain(ticker, body)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	fullURL := c.host + path
	if len(query) > 0 {
		fullURL = fullURL + "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "zerodte-collector/0.1")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

func parseChain(ticker string, body []byte) (*ChainSnapshot, error) {
	var envelope chainEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode chain response: %w", err)
	}
	if envelope.OptionChain.Error != nil {
		return nil, fmt.Errorf("provider error %s: %s",
			envelope.OptionChain.Error.Code, envelope.OptionChain.Error.Description)
	}
	if len(envelope.OptionChain.Result) == 0 {
		return nil, fmt.Errorf("empty chain result for %s", ticker)
	}
	result := envelope.OptionChain.Result[0]
	if result.Quote.RegularMarketPrice == nil {
		return nil, fmt.Errorf("no underlying price for %s", ticker)
	}

	snap := &ChainSnapshot{
		Ticker:     ticker,
		StockPrice: decimal.NewFromFloat(*result.Quote.RegularMarketPrice),
		Raw:        body,
	}
	for _, ts := range result.ExpirationDates {
		snap.Expirations = append(snap.Expirations, time.Unix(ts, 0).UTC())
	}
	if len(result.Options) > 0 {
		block := result.Options[0]
		snap.ExpirationDate = time.Unix(block.ExpirationDate, 0).UTC()
		snap.Calls = block.Calls
		snap.Puts = block.Puts
	}
	return snap, nil
}
