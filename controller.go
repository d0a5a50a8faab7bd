package checkout

import (
	"context"
	"sync"
)

// Screen is the top-level rendering of the checkout form.
type Screen string

const (
	// ScreenForm shows the editable form with inline validation.
	ScreenForm Screen = "form"
	// ScreenSuccess replaces the form entirely after a completed payment.
	ScreenSuccess Screen = "success"
	// ScreenFailure shows the raw submit error after a failed payment.
	ScreenFailure Screen = "failure"
)

// View is the derived UI state of a checkout form. It is recomputed from
// FormState on every call and never stored.
type View struct {
	Screen Screen

	// Errors holds the currently visible validation errors by field.
	Errors ValidationErrors

	// ErrorMessages lists the visible messages in display order.
	ErrorMessages []string

	// CanSubmit is true only while the form is editable and free of
	// visible validation errors.
	CanSubmit bool

	// SubmitError is the opaque failure payload, present only on the
	// failure screen.
	SubmitError error
}

// FormControllerConfig configures a checkout form controller.
type FormControllerConfig struct {
	// PaymentIntentSecret is the client secret of the intent this form
	// will confirm, received as transient navigation state.
	PaymentIntentSecret string

	// Card is the external card-input widget.
	Card CardInput

	// Confirmer performs the card-confirmation call.
	Confirmer CardConfirmer
}

// FormController owns the state of one checkout form instance. Every
// mutation goes through the reducer; the controller adds the submit
// orchestration and derives the view. Each form owns its state
// exclusively; nothing is shared across instances.
type FormController struct {
	mu        sync.Mutex
	state     FormState
	secret    string
	card      CardInput
	confirmer CardConfirmer
}

// NewFormController creates a controller with the fixed initial form state.
func NewFormController(config FormControllerConfig) *FormController {
	return &FormController{
		state:     NewFormState(),
		secret:    config.PaymentIntentSecret,
		card:      config.Card,
		confirmer: config.Confirmer,
	}
}

// State returns the current form state snapshot.
func (c *FormController) State() FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// HandleChange records a keystroke in a field.
func (c *FormController) HandleChange(field Field, value string) {
	c.dispatch(FieldChanged{Field: field, Value: value})
}

// HandleBlur records a field losing focus.
func (c *FormController) HandleBlur(field Field) {
	c.dispatch(FieldBlurred{Field: field})
}

// HandleCardChange mirrors a card-widget validity event into form state.
func (c *FormController) HandleCardChange(event CardChangeEvent) {
	c.dispatch(CardElementChanged{Event: event})
}

// View derives the current UI state.
func (c *FormController) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// Submit runs one submission attempt. It does nothing unless the form is
// editable, free of visible validation errors, and the card widget is
// ready. The status check doubles as the re-entrancy guard: a submit
// dispatched while one is running is dropped.
func (c *FormController) Submit(ctx context.Context) {
	c.submit(ctx, StatusInitial)
}

// Retry re-runs a failed submission. The reducer's failed-to-running edge
// is only reachable through here; the failure screen itself offers no
// automatic retry.
func (c *FormController) Retry(ctx context.Context) {
	c.submit(ctx, StatusFailed)
}

func (c *FormController) submit(ctx context.Context, from Status) {
	c.mu.Lock()

	if c.state.SubmitStatus != from {
		c.mu.Unlock()
		return
	}
	if len(Validate(c.state, false)) > 0 {
		c.mu.Unlock()
		return
	}
	if c.confirmer == nil || c.card == nil || !c.card.Ready() {
		c.mu.Unlock()
		return
	}

	c.state = Reduce(c.state, Submitting{})
	secret := c.secret
	params := ConfirmParams{
		Card:           c.card.Handle(),
		BillingDetails: c.billingDetailsLocked(),
	}

	// Release the lock across the confirmation call so the form stays
	// responsive while the payment is in flight. The running status keeps
	// further submits out.
	c.mu.Unlock()

	err := c.confirmer.ConfirmCardPayment(ctx, secret, params)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = Reduce(c.state, SubmitFailed{Error: err})
	} else {
		c.state = Reduce(c.state, SubmitCompleted{})
	}
}

func (c *FormController) dispatch(action Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, action)
}

func (c *FormController) viewLocked() View {
	switch c.state.SubmitStatus {
	case StatusComplete:
		return View{Screen: ScreenSuccess}
	case StatusFailed:
		return View{Screen: ScreenFailure, SubmitError: c.state.SubmitError}
	}

	errors := Validate(c.state, false)
	return View{
		Screen:        ScreenForm,
		Errors:        errors,
		ErrorMessages: CollectErrorMessages(errors),
		CanSubmit:     c.state.SubmitStatus == StatusInitial && len(errors) == 0,
	}
}

func (c *FormController) billingDetailsLocked() BillingDetails {
	fields := c.state.Fields
	return BillingDetails{
		Name: fields[FieldName].Value,
		Address: Address{
			Line1:      fields[FieldAddress].Value,
			City:       fields[FieldCity].Value,
			State:      fields[FieldState].Value,
			PostalCode: fields[FieldZip].Value,
		},
	}
}
