package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	checkout "github.com/sockshop/checkout"
	"github.com/sockshop/checkout/types"
)

// ProcessorConfig configures the card-processor client.
type ProcessorConfig struct {
	// URL is the base URL of the processor API.
	URL string

	// APIKey is the secret key sent as a bearer token.
	APIKey string

	// HTTPClient is the HTTP client to use (optional)
	HTTPClient *http.Client

	// Timeout for requests (optional, defaults to 30s)
	Timeout time.Duration
}

// ProcessorClient talks to the hosted card processor. The backend uses it
// to create intents; the confirmation side exists so the whole flow can be
// driven server to server in tests and headless checkouts.
type ProcessorClient struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

// NewProcessorClient creates a new processor client.
func NewProcessorClient(config *ProcessorConfig) *ProcessorClient {
	if config == nil {
		config = &ProcessorConfig{}
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

	return &ProcessorClient{
		url:        config.URL,
		apiKey:     config.APIKey,
		httpClient: httpClient,
	}
}

// CreateIntent creates a payment intent on the processor.
func (c *ProcessorClient) CreateIntent(ctx context.Context, amountCents int64, currency string) (*types.Intent, error) {
	requestBody := map[string]interface{}{
		"amount":   amountCents,
		"currency": currency,
	}

	responseBody, status, err := c.post(ctx, "/v1/payment_intents", requestBody)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK && status != http.StatusCreated {
		return nil, processorError(status, responseBody)
	}

	var intent types.Intent
	if err := json.Unmarshal(responseBody, &intent); err != nil {
		return nil, fmt.Errorf("failed to decode intent response: %w", err)
	}

	return &intent, nil
}

// ConfirmCardPayment confirms the intent identified by its client secret,
// attaching the card handle and billing details as the payment method.
func (c *ProcessorClient) ConfirmCardPayment(ctx context.Context, secret string, params checkout.ConfirmParams) error {
	requestBody := map[string]interface{}{
		"secret": secret,
		"payment_method": map[string]interface{}{
			"card":            params.Card,
			"billing_details": params.BillingDetails,
		},
	}

	responseBody, status, err := c.post(ctx, "/v1/payment_intents/confirm", requestBody)
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return processorError(status, responseBody)
	}

	return nil
}

func (c *ProcessorClient) post(ctx context.Context, path string, requestBody map[string]interface{}) ([]byte, int, error) {
	body, err := json.Marshal(requestBody)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal processor request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.url+path, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create processor request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("processor request failed: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read processor response: %w", err)
	}

	return responseBody, resp.StatusCode, nil
}

// processorError maps a non-2xx processor response onto a PaymentError,
// keeping the processor's code and message when the body carries them.
func processorError(status int, body []byte) error {
	var out struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &out); err == nil && out.Error.Code != "" {
		return checkout.NewPaymentError(out.Error.Code, out.Error.Message, nil)
	}
	return fmt.Errorf("processor request failed (%d): %s", status, string(body))
}

// Ensure ProcessorClient implements both processor surfaces
var (
	_ checkout.Processor     = (*ProcessorClient)(nil)
	_ checkout.CardConfirmer = (*ProcessorClient)(nil)
)
