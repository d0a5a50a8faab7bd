package processor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkout "github.com/sockshop/checkout"
	"github.com/sockshop/checkout/types"
)

// staticCard is a card widget stub that is always ready.
type staticCard struct {
	handle checkout.CardHandle
}

func (c staticCard) Ready() bool                 { return true }
func (c staticCard) Handle() checkout.CardHandle { return c.handle }

// The whole client-side flow against the in-memory processor: create an
// intent, fill the form, submit, and observe the intent succeed.
func TestCheckoutFlowEndToEnd(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	intent, err := mem.CreateIntent(ctx, 500, "usd")
	require.NoError(t, err)

	c := checkout.NewFormController(checkout.FormControllerConfig{
		PaymentIntentSecret: intent.Secret,
		Card:                staticCard{handle: "tok_visa"},
		Confirmer:           mem,
	})

	c.HandleChange(checkout.FieldName, "Jane Doe")
	c.HandleChange(checkout.FieldAddress, "123 Fourth Street")
	c.HandleChange(checkout.FieldCity, "San Francisco")
	c.HandleChange(checkout.FieldState, "CA")
	c.HandleChange(checkout.FieldZip, "94941")
	for _, f := range checkout.FormFields {
		c.HandleBlur(f)
	}

	c.Submit(ctx)

	assert.Equal(t, checkout.ScreenSuccess, c.View().Screen)
	assert.Equal(t, types.IntentStatusSucceeded, mem.GetIntent(intent.Secret).Status)
}

func TestCheckoutFlowDeclined(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory(WithDeclineRule(func(params checkout.ConfirmParams) *checkout.PaymentError {
		return checkout.NewPaymentError(checkout.ErrCodeCardDeclined, "Your card was declined.", nil)
	}))

	intent, err := mem.CreateIntent(ctx, 500, "usd")
	require.NoError(t, err)

	c := checkout.NewFormController(checkout.FormControllerConfig{
		PaymentIntentSecret: intent.Secret,
		Card:                staticCard{handle: "tok_chargeDeclined"},
		Confirmer:           mem,
	})

	c.HandleChange(checkout.FieldName, "Jane Doe")
	c.HandleChange(checkout.FieldAddress, "123 Fourth Street")
	c.HandleChange(checkout.FieldCity, "San Francisco")
	c.HandleChange(checkout.FieldState, "CA")
	c.HandleChange(checkout.FieldZip, "94941")

	c.Submit(ctx)

	view := c.View()
	require.Equal(t, checkout.ScreenFailure, view.Screen)

	var pe *checkout.PaymentError
	require.ErrorAs(t, view.SubmitError, &pe)
	assert.Equal(t, checkout.ErrCodeCardDeclined, pe.Code)
}
