// Package types defines the wire types exchanged between the storefront
// page, the backend endpoint, and the card processor.
package types

// IntentStatus is the lifecycle status of a payment intent as reported by
// the processor.
type IntentStatus string

const (
	IntentStatusCreated    IntentStatus = "created"
	IntentStatusProcessing IntentStatus = "processing"
	IntentStatusSucceeded  IntentStatus = "succeeded"
	IntentStatusCanceled   IntentStatus = "canceled"
)

func (s IntentStatus) String() string {
	return string(s)
}

// Intent is a payment intent as the processor returns it.
type Intent struct {
	ID          string       `json:"id"`
	Secret      string       `json:"secret"`
	AmountCents int64        `json:"amount"`
	Currency    string       `json:"currency"`
	Status      IntentStatus `json:"status"`
}

// CreateIntentRequest is the body of POST /api/payment_intents. Amount is
// in the smallest currency unit.
type CreateIntentRequest struct {
	Amount int64 `json:"amount"`
}

// CreateIntentResponse is the 201 body of POST /api/payment_intents.
type CreateIntentResponse struct {
	Secret string `json:"secret"`
}

// ErrorResponse is the JSON error body for failed API requests.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// CheckoutConfig is served to the page so it can mount the card widget.
// CardStyle is opaque configuration data passed through to the widget.
type CheckoutConfig struct {
	PublishableKey string      `json:"publishableKey"`
	CardStyle      interface{} `json:"cardStyle,omitempty"`
}
