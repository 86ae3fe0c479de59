// Package doordash provides a minimal client for the DoorDash Drive v2 API.
package doordash

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"

	"doordash-mcp/internal/config"
)

var logger = xlog.NewPackageLogger("doordash-mcp/internal", "doordash")

// DefaultBaseURL is the production Drive API endpoint.
const DefaultBaseURL = "https://openapi.doordash.com"

const userAgent = "doordash-mcp/1.0.0"

// Client is a minimal HTTP client for the Drive delivery and quote endpoints.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	signer *Signer
}

// Response wraps a successful API response. Data holds the body exactly as
// the API returned it, so key order is preserved.
type Response struct {
	StatusCode int
	Data       json.RawMessage
}

// New returns a new client. If httpClient is nil, a default with 30s timeout is used.
func New(creds config.DoorDash, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	baseURL := creds.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    httpClient,
		signer:  NewSigner(creds.DeveloperID, creds.KeyID, creds.SigningSecret),
	}
}

// DeliveryQuote requests a quote for a delivery.
func (c *Client) DeliveryQuote(ctx context.Context, body map[string]any) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/drive/v2/quotes", body)
}

// DeliveryQuoteAccept accepts a previously created quote, turning it into a delivery.
func (c *Client) DeliveryQuoteAccept(ctx context.Context, externalDeliveryID string, body map[string]any) (*Response, error) {
	if body == nil {
		body = map[string]any{}
	}
	return c.do(ctx, http.MethodPost, "/drive/v2/quotes/"+url.PathEscape(externalDeliveryID)+"/accept", body)
}

// CreateDelivery creates a delivery without a prior quote.
func (c *Client) CreateDelivery(ctx context.Context, body map[string]any) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/drive/v2/deliveries", body)
}

// GetDelivery returns the current state of a delivery.
func (c *Client) GetDelivery(ctx context.Context, externalDeliveryID string) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/drive/v2/deliveries/"+url.PathEscape(externalDeliveryID), nil)
}

// CancelDelivery cancels a delivery.
func (c *Client) CancelDelivery(ctx context.Context, externalDeliveryID string) (*Response, error) {
	return c.do(ctx, http.MethodPut, "/drive/v2/deliveries/"+url.PathEscape(externalDeliveryID)+"/cancel", nil)
}

// UpdateDelivery patches the mutable fields of a delivery.
func (c *Client) UpdateDelivery(ctx context.Context, externalDeliveryID string, body map[string]any) (*Response, error) {
	if body == nil {
		body = map[string]any{}
	}
	return c.do(ctx, http.MethodPatch, "/drive/v2/deliveries/"+url.PathEscape(externalDeliveryID), body)
}

func (c *Client) do(ctx context.Context, method, path string, body map[string]any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "unable to encode request")
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create request")
	}
	token, err := c.signer.Token()
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read response")
	}

	logger.ContextKV(ctx, xlog.DEBUG,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeAPIError(resp.StatusCode, raw)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("null")
	}
	return &Response{StatusCode: resp.StatusCode, Data: raw}, nil
}
