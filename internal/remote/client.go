package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"atelie-store/internal/model"

	"github.com/rs/zerolog"
)

// tenantHeader carries the store identity on every backend request.
const tenantHeader = "X-Tenant-ID"

// Client talks to the storefront backend: the per-user cart endpoints, the
// shipping quote endpoint and checkout processing. Callers decide what to
// do with a returned error; the cart layer discards and logs, checkout
// surfaces it.
type Client struct {
	baseURL  string
	tenantID string
	http     *http.Client
	logger   zerolog.Logger
}

// NewClient creates a backend client rooted at baseURL.
func NewClient(baseURL, tenantID string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		tenantID: tenantID,
		http:     &http.Client{Timeout: 15 * time.Second},
		logger:   logger.With().Str("client", "remote").Logger(),
	}
}

// cartEnvelope is the wire shape of GET /cart/{userId}.
type cartEnvelope struct {
	Items []model.CartItem `json:"items"`
}

// FetchCart retrieves the server-side cart for a user.
func (c *Client) FetchCart(ctx context.Context, userID string) ([]model.CartItem, error) {
	var envelope cartEnvelope
	if err := c.do(ctx, http.MethodGet, "/cart/"+userID, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Items, nil
}

// SyncCart pushes the full cart for a user, replacing the server-side copy.
func (c *Client) SyncCart(ctx context.Context, userID string, items []model.CartItem) error {
	if items == nil {
		items = []model.CartItem{}
	}
	return c.do(ctx, http.MethodPost, "/cart/"+userID+"/sync", items, nil)
}

// ClearCart deletes the server-side cart for a user.
func (c *Client) ClearCart(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/cart/"+userID, nil, nil)
}

// QuoteShipping requests shipping quotes for a destination. The raw body is
// returned for the shipping adapter to normalise, since the backend answers
// in more than one shape.
func (c *Client) QuoteShipping(ctx context.Context, req model.ShippingQuoteRequest) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/shipping/quote", req, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// ProcessCheckout submits an order. Backend validation failures come back
// as a DomainError carrying the backend message verbatim.
func (c *Client) ProcessCheckout(ctx context.Context, req model.CheckoutRequest) (*model.OrderConfirmation, error) {
	var confirmation model.OrderConfirmation
	if err := c.do(ctx, http.MethodPost, "/checkout/process", req, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

// couponValidateRequest is the payload for POST /coupons/validate.
type couponValidateRequest struct {
	Code     string  `json:"code"`
	UserID   string  `json:"userId,omitempty"`
	Subtotal float64 `json:"subtotal"`
}

// ValidateCoupon checks a coupon code against the backend. Validation
// failures are returned to the caller for inline display.
func (c *Client) ValidateCoupon(ctx context.Context, code, userID string, subtotal float64) (*model.Coupon, error) {
	req := couponValidateRequest{
		Code:     model.NormalizeCouponCode(code),
		UserID:   userID,
		Subtotal: subtotal,
	}
	var coupon model.Coupon
	if err := c.do(ctx, http.MethodPost, "/coupons/validate", req, &coupon); err != nil {
		return nil, err
	}
	return &coupon, nil
}

// do issues one request and decodes the response into out (when non-nil).
// Non-2xx responses are turned into a DomainError when the backend sent a
// structured error body, so its message survives verbatim.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set(tenantHeader, c.tenantID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFrom(resp, path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func (c *Client) errorFrom(resp *http.Response, path string) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var errResp model.ErrorResponse
	if err := json.Unmarshal(data, &errResp); err == nil {
		message := errResp.Message
		if message == "" {
			message = errResp.Error
		}
		if message != "" {
			return model.NewDomainError(errResp.Error, message)
		}
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Str("path", path).
		Msg("backend returned unstructured error")

	return fmt.Errorf("request to %s failed with status %d", path, resp.StatusCode)
}
