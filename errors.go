package checkout

import "fmt"

// PaymentError represents a payment-specific error
type PaymentError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Common error codes
const (
	ErrCodeUnknown        = "unknown"
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeCardDeclined   = "card_declined"
	ErrCodeIntentNotFound = "intent_not_found"
	ErrCodeIntentExpired  = "intent_expired"
)

// UnknownErrorMessage is the single user-facing message for failures the
// client deliberately does not classify.
const UnknownErrorMessage = "An unknown error occured"

// NewPaymentError creates a new payment error
func NewPaymentError(code, message string, details map[string]interface{}) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// ErrUnknown returns the generic error every unclassified failure is
// collapsed into.
func ErrUnknown() *PaymentError {
	return &PaymentError{Code: ErrCodeUnknown, Message: UnknownErrorMessage}
}
