package checkout

import (
	"context"

	"github.com/sockshop/checkout/types"
)

// IntentCreator asks the backend to create a payment intent for an amount
// in cents. Implementations collapse every failure mode into a single
// generic *PaymentError; callers get no classification and no retry.
type IntentCreator interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64) (*PaymentIntent, error)
}

// CardConfirmer performs the external card-confirmation call against the
// processor. A nil return means the payment succeeded; a non-nil error
// carries at least a message for the failure screen.
type CardConfirmer interface {
	ConfirmCardPayment(ctx context.Context, secret string, params ConfirmParams) error
}

// Processor is the server-side surface of the card processor: it creates
// payment intents on behalf of the storefront backend.
type Processor interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (*types.Intent, error)
}

// CardInput is the capability surface of the iframe-isolated card widget.
// Its validity cannot be read directly; it is observed only through
// CardChangeEvents delivered to the controller.
type CardInput interface {
	// Ready reports whether the widget has mounted and can be charged.
	Ready() bool

	// Handle returns the opaque value handed to the confirmation call.
	Handle() CardHandle
}

// NavState is transient navigation state handed to the checkout view. The
// intent secret is never placed in a URL parameter or persisted storage.
type NavState struct {
	PaymentIntentSecret string
}

// Navigator transitions the user to another view.
type Navigator interface {
	Navigate(route string, state NavState)
}
