// Package http provides HTTP implementations of the checkout interfaces:
// the payment-intent client the storefront page uses and the processor
// client the backend uses.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	checkout "github.com/sockshop/checkout"
	"github.com/sockshop/checkout/types"
)

// IntentClientConfig configures the payment-intent client.
type IntentClientConfig struct {
	// BaseURL is the storefront backend, e.g. "http://localhost:3000".
	BaseURL string

	// HTTPClient is the HTTP client to use (optional)
	HTTPClient *http.Client

	// Timeout for requests (optional, defaults to 30s)
	Timeout time.Duration
}

// IntentClient asks the backend to create payment intents. Every failure
// mode — network error, non-201 status, malformed body — is collapsed into
// the single generic payment error; the cause is logged and never
// classified for the caller.
type IntentClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewIntentClient creates a new payment-intent client.
func NewIntentClient(config *IntentClientConfig) *IntentClient {
	if config == nil {
		config = &IntentClientConfig{}
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{
			Timeout: timeout,
		}
	}

	return &IntentClient{
		baseURL:    config.BaseURL,
		httpClient: httpClient,
	}
}

// CreatePaymentIntent creates a payment intent for the given amount in
// cents and returns its client secret.
func (c *IntentClient) CreatePaymentIntent(ctx context.Context, amountCents int64) (*checkout.PaymentIntent, error) {
	body, err := json.Marshal(types.CreateIntentRequest{Amount: amountCents})
	if err != nil {
		return nil, c.unknown(fmt.Errorf("failed to marshal create intent request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/payment_intents", bytes.NewReader(body))
	if err != nil {
		return nil, c.unknown(fmt.Errorf("failed to create intent request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.unknown(fmt.Errorf("create intent request failed: %w", err))
	}

	responseBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, c.unknown(fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, c.unknown(fmt.Errorf("create intent failed (%d): %s", resp.StatusCode, string(responseBody)))
	}

	var out types.CreateIntentResponse
	if err := json.Unmarshal(responseBody, &out); err != nil {
		return nil, c.unknown(fmt.Errorf("failed to decode create intent response: %w", err))
	}
	if out.Secret == "" {
		return nil, c.unknown(fmt.Errorf("create intent response missing secret"))
	}

	return &checkout.PaymentIntent{Secret: out.Secret}, nil
}

// unknown logs the real cause and returns the generic error the caller
// sees instead.
func (c *IntentClient) unknown(cause error) error {
	log.Printf("payment intent client: %v", cause)
	return checkout.ErrUnknown()
}

// Ensure IntentClient implements IntentCreator
var _ checkout.IntentCreator = (*IntentClient)(nil)
