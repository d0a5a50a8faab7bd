package processor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkout "github.com/sockshop/checkout"
	"github.com/sockshop/checkout/types"
)

func TestMemoryCreateIntent(t *testing.T) {
	m := NewMemory()

	intent, err := m.CreateIntent(context.Background(), 500, "usd")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(intent.ID, "pi_"))
	assert.True(t, strings.HasPrefix(intent.Secret, intent.ID+"_secret_"))
	assert.Equal(t, int64(500), intent.AmountCents)
	assert.Equal(t, "usd", intent.Currency)
	assert.Equal(t, types.IntentStatusCreated, intent.Status)

	other, err := m.CreateIntent(context.Background(), 500, "usd")
	require.NoError(t, err)
	assert.NotEqual(t, intent.Secret, other.Secret)
}

func TestMemoryCreateIntentRejectsNonPositiveAmount(t *testing.T) {
	m := NewMemory()

	_, err := m.CreateIntent(context.Background(), 0, "usd")
	var pe *checkout.PaymentError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, checkout.ErrCodeInvalidRequest, pe.Code)
}

func TestMemoryConfirmSucceeds(t *testing.T) {
	m := NewMemory()
	intent, err := m.CreateIntent(context.Background(), 500, "usd")
	require.NoError(t, err)

	err = m.ConfirmCardPayment(context.Background(), intent.Secret, checkout.ConfirmParams{Card: "tok_visa"})
	require.NoError(t, err)

	stored := m.GetIntent(intent.Secret)
	require.NotNil(t, stored)
	assert.Equal(t, types.IntentStatusSucceeded, stored.Status)

	// Confirming again is a no-op
	require.NoError(t, m.ConfirmCardPayment(context.Background(), intent.Secret, checkout.ConfirmParams{}))
}

func TestMemoryConfirmUnknownSecret(t *testing.T) {
	m := NewMemory()

	err := m.ConfirmCardPayment(context.Background(), "pi_nope_secret_nope", checkout.ConfirmParams{})
	var pe *checkout.PaymentError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, checkout.ErrCodeIntentNotFound, pe.Code)
}

func TestMemoryConfirmExpiredIntent(t *testing.T) {
	m := NewMemory(WithTTL(-time.Minute))
	intent, err := m.CreateIntent(context.Background(), 500, "usd")
	require.NoError(t, err)

	err = m.ConfirmCardPayment(context.Background(), intent.Secret, checkout.ConfirmParams{})
	var pe *checkout.PaymentError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, checkout.ErrCodeIntentExpired, pe.Code)
	assert.Nil(t, m.GetIntent(intent.Secret))
}

func TestMemoryDeclineRule(t *testing.T) {
	declined := checkout.NewPaymentError(checkout.ErrCodeCardDeclined, "Your card was declined.", nil)
	m := NewMemory(WithDeclineRule(func(params checkout.ConfirmParams) *checkout.PaymentError {
		if params.Card == "tok_chargeDeclined" {
			return declined
		}
		return nil
	}))

	intent, err := m.CreateIntent(context.Background(), 500, "usd")
	require.NoError(t, err)

	err = m.ConfirmCardPayment(context.Background(), intent.Secret, checkout.ConfirmParams{Card: "tok_chargeDeclined"})
	var pe *checkout.PaymentError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, checkout.ErrCodeCardDeclined, pe.Code)

	stored := m.GetIntent(intent.Secret)
	require.NotNil(t, stored)
	assert.Equal(t, types.IntentStatusCanceled, stored.Status)
}
