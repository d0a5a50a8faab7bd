// Package processor provides an in-memory card processor used for local
// development and tests. It implements the same surfaces as the HTTP
// processor client: intent creation and card confirmation.
package processor

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	checkout "github.com/sockshop/checkout"
	"github.com/sockshop/checkout/types"
)

// DeclineRule decides whether a confirmation should be declined. Returning
// a non-nil error declines the payment with that error.
type DeclineRule func(params checkout.ConfirmParams) *checkout.PaymentError

// Memory is an in-memory processor.
//
// Suitable for single-instance development servers and tests; intents are
// never shared across processes. Thread-safe with mutex protection,
// configurable intent TTL, lazy cleanup of expired intents.
type Memory struct {
	mu      sync.Mutex
	intents map[string]*types.Intent // keyed by client secret
	expiry  map[string]time.Time
	ttl     time.Duration
	decline DeclineRule
}

// Option configures a Memory processor.
type Option func(*Memory)

// WithTTL sets how long created intents stay confirmable.
func WithTTL(ttl time.Duration) Option {
	return func(m *Memory) {
		m.ttl = ttl
	}
}

// WithDeclineRule installs a rule that declines matching confirmations,
// for exercising the failure paths.
func WithDeclineRule(rule DeclineRule) Option {
	return func(m *Memory) {
		m.decline = rule
	}
}

// defaultTTL matches the confirmation window of hosted processors.
const defaultTTL = 24 * time.Hour

// NewMemory creates a new in-memory processor.
func NewMemory(opts ...Option) *Memory {
	m := &Memory{
		intents: make(map[string]*types.Intent),
		expiry:  make(map[string]time.Time),
		ttl:     defaultTTL,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateIntent creates a payment intent with a fresh id and client secret.
func (m *Memory) CreateIntent(ctx context.Context, amountCents int64, currency string) (*types.Intent, error) {
	if amountCents < 1 {
		return nil, checkout.NewPaymentError(checkout.ErrCodeInvalidRequest, "amount must be positive", nil)
	}

	id := "pi_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	secret := id + "_secret_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	intent := &types.Intent{
		ID:          id,
		Secret:      secret,
		AmountCents: amountCents,
		Currency:    currency,
		Status:      types.IntentStatusCreated,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.cleanupExpiredLocked()
	m.intents[secret] = intent
	m.expiry[secret] = time.Now().Add(m.ttl)

	return intent, nil
}

// ConfirmCardPayment confirms the intent identified by secret. Unknown or
// expired secrets fail; the decline rule, if any, is consulted before the
// intent is marked succeeded.
func (m *Memory) ConfirmCardPayment(ctx context.Context, secret string, params checkout.ConfirmParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	intent, ok := m.intents[secret]
	if !ok {
		return checkout.NewPaymentError(checkout.ErrCodeIntentNotFound, "no such payment intent", nil)
	}

	if time.Now().After(m.expiry[secret]) {
		delete(m.intents, secret)
		delete(m.expiry, secret)
		return checkout.NewPaymentError(checkout.ErrCodeIntentExpired, "payment intent expired", nil)
	}

	if intent.Status == types.IntentStatusSucceeded {
		// Confirming twice is a no-op
		return nil
	}

	if m.decline != nil {
		if declineErr := m.decline(params); declineErr != nil {
			intent.Status = types.IntentStatusCanceled
			return declineErr
		}
	}

	intent.Status = types.IntentStatusSucceeded
	return nil
}

// GetIntent returns the stored intent for a secret, or nil.
func (m *Memory) GetIntent(secret string) *types.Intent {
	m.mu.Lock()
	defer m.mu.Unlock()

	intent, ok := m.intents[secret]
	if !ok {
		return nil
	}
	copied := *intent
	return &copied
}

// cleanupExpiredLocked removes expired intents. Must be called with lock held.
func (m *Memory) cleanupExpiredLocked() {
	now := time.Now()
	for secret, expiry := range m.expiry {
		if now.After(expiry) {
			delete(m.intents, secret)
			delete(m.expiry, secret)
		}
	}
}

// Ensure Memory implements both processor surfaces
var (
	_ checkout.Processor     = (*Memory)(nil)
	_ checkout.CardConfirmer = (*Memory)(nil)
)
