// Package faa talks to the FAA TFR endpoints: the list export that
// returns the current snapshot as a JSON array, and the per-NOTAM
// detail endpoint that returns HTML.
package faa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tfrwatch/tfrwatch/app/advisory"
)

const (
	DefaultListURL   = "https://tfr.faa.gov/tfrapi/exportTfrList"
	DefaultDetailURL = "https://tfr.faa.gov/tfrapi/getWebText"
)

type Client struct {
	httpClient *http.Client
	listURL    string
	detailURL  string
	userAgent  string
	timeout    time.Duration
}

func NewClient(httpClient *http.Client, listURL, detailURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: httpClient,
		listURL:    listURL,
		detailURL:  detailURL,
		userAgent:  userAgent,
		timeout:    timeout,
	}
}

// FetchList downloads the current advisory snapshot. Any failure here
// is fatal for the cycle, so errors are returned as-is for the caller
// to surface.
func (c *Client) FetchList(ctx context.Context) ([]advisory.Raw, error) {
	data, err := c.get(ctx, c.listURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch advisory list: %w", err)
	}

	var items []advisory.Raw
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode advisory list: %w", err)
	}

	return items, nil
}

// FetchDetail downloads the detail page for one NOTAM id and returns
// the raw markup.
func (c *Client) FetchDetail(ctx context.Context, notamID string) (string, error) {
	data, err := c.get(ctx, c.detailURL+"?notamId="+url.QueryEscape(notamID))
	if err != nil {
		return "", fmt.Errorf("failed to fetch detail for %s: %w", notamID, err)
	}
	return string(data), nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
