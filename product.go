package checkout

import (
	"context"
	"fmt"
	"sync"
)

// Product is a storefront listing.
type Product struct {
	Name        string `json:"name"`
	AmountCents int64  `json:"amount"`
	ImageURL    string `json:"imageURL,omitempty"`
}

// FormatDollars renders an amount in cents as a dollar price, e.g. 500
// becomes "$5".
func FormatDollars(cents int64) string {
	if cents%100 == 0 {
		return fmt.Sprintf("$%d", cents/100)
	}
	return fmt.Sprintf("$%g", float64(cents)/100)
}

// CheckoutRoute is where a buyer lands once an intent has been created.
const CheckoutRoute = "/checkout"

// CheckoutStarter takes a buyer from a product listing into the checkout
// view: it creates a payment intent for the product's amount and hands the
// intent secret to the navigator as transient state. A starter serves one
// listing; the in-flight guard drops clicks while an intent is being
// created.
type CheckoutStarter struct {
	mu       sync.Mutex
	creating bool

	intents IntentCreator
	nav     Navigator

	// Alert reports a failed intent creation to the buyer. Optional.
	Alert func(message string)
}

// NewCheckoutStarter creates a starter over the given intent client and
// navigator.
func NewCheckoutStarter(intents IntentCreator, nav Navigator) *CheckoutStarter {
	return &CheckoutStarter{
		intents: intents,
		nav:     nav,
	}
}

// BeginCheckout creates a payment intent for the product and navigates to
// the checkout view with the intent secret. On failure the buyer is
// alerted with the generic message and stays on the listing.
func (s *CheckoutStarter) BeginCheckout(ctx context.Context, product Product) {
	s.mu.Lock()
	if s.creating {
		s.mu.Unlock()
		return
	}
	s.creating = true
	s.mu.Unlock()

	intent, err := s.intents.CreatePaymentIntent(ctx, product.AmountCents)

	s.mu.Lock()
	s.creating = false
	s.mu.Unlock()

	if err != nil {
		if s.Alert != nil {
			s.Alert(errorMessage(err))
		}
		return
	}

	s.nav.Navigate(CheckoutRoute, NavState{PaymentIntentSecret: intent.Secret})
}

func errorMessage(err error) string {
	if pe, ok := err.(*PaymentError); ok && pe.Message != "" {
		return pe.Message
	}
	return err.Error()
}
