package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/theoremus-urban-solutions/vasttrafik/config"
)

// The provider serves its JSON with a UTF-8 byte-order-mark.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Client is a simple HTTP client for the two Västtrafik endpoints.
type Client struct {
	httpClient        *http.Client
	stopAreasURL      string
	departureBoardURL string
}

// NewClient creates a client from the API configuration.
func NewClient(cfg config.APIConfig) *Client {
	return &Client{
		httpClient:        &http.Client{Timeout: cfg.Timeout()},
		stopAreasURL:      cfg.StopAreasURL,
		departureBoardURL: cfg.DepartureBoardURL,
	}
}

// StopAreas fetches the full stop-area list as raw JSON.
func (c *Client) StopAreas() ([]byte, error) {
	return c.Get(c.stopAreasURL)
}

// DepartureBoard fetches the departure board for one stop as raw JSON.
// The stop id is appended to the configured board URL.
func (c *Client) DepartureBoard(stopID int) ([]byte, error) {
	return c.Get(c.departureBoardURL + strconv.Itoa(stopID))
}

// Get fetches a single URL and returns the response body with any
// leading byte-order-mark removed.
func (c *Client) Get(url string) ([]byte, error) {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}
	return bytes.TrimPrefix(body, utf8BOM), nil
}
