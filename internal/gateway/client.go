// Package gateway is the client-side remote profile gateway: one
// authenticated network round trip per call, no automatic retries, and the
// bearer credential fetched fresh for every call.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/artisanbay/sellerhub/internal/domain"
)

// Client talks to the seller REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     domain.TokenSource
}

// New creates a gateway client for the API at baseURL.
func New(baseURL string, tokens domain.TokenSource) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		tokens:     tokens,
	}
}

// NewWithHTTPClient creates a gateway client with a caller-supplied HTTP
// client, for tests and custom transports.
func NewWithHTTPClient(baseURL string, tokens domain.TokenSource, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient, tokens: tokens}
}

// FetchProfile retrieves the seller profile document.
func (c *Client) FetchProfile(ctx context.Context, sellerID string) (*domain.SellerProfile, error) {
	endpoint := c.baseURL + "/api/seller?uid=" + url.QueryEscape(sellerID)
	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var profile domain.SellerProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile performs a partial merge of the patch into the persisted
// document. It does not return the updated document; the caller must
// re-fetch or optimistically merge locally.
func (c *Client) UpdateProfile(ctx context.Context, sellerID string, patch domain.ProfilePatch) error {
	body, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("failed to encode patch: %w", err)
	}

	endpoint := c.baseURL + "/api/seller/" + url.PathEscape(sellerID)
	resp, err := c.do(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	var result struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode update response: %w", err)
	}
	if !result.Success {
		if result.Error != "" {
			return fmt.Errorf("%w: %s", domain.ErrValidation, result.Error)
		}
		return domain.ErrUnavailable
	}
	return nil
}

// FetchStats retrieves the aggregated dashboard stats.
func (c *Client) FetchStats(ctx context.Context, sellerID string) (*domain.DashboardStats, error) {
	endpoint := c.baseURL + "/api/seller/" + url.PathEscape(sellerID) + "/stats"
	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var stats domain.DashboardStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats: %w", err)
	}
	return &stats, nil
}

// do issues a single authenticated request. The token is requested from
// the source on every call; it may expire between calls, so it is never
// cached past single-call use.
func (c *Client) do(ctx context.Context, method, endpoint string, body *bytes.Reader) (*http.Response, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCredentials, err)
	}

	var req *http.Request
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return resp, nil
}

// checkStatus maps HTTP failure statuses to domain errors. The body of a
// failed response is not consumed beyond the error field.
func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domain.ErrInvalidCredentials
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", domain.ErrValidation, readError(resp))
	default:
		return fmt.Errorf("%w: unexpected status %d", domain.ErrUnavailable, resp.StatusCode)
	}
}

func readError(resp *http.Response) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Error == "" {
		return resp.Status
	}
	return payload.Error
}
