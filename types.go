// Package checkout implements the client-side checkout flow for the
// storefront: the form state machine, field validation, and the
// orchestration of payment-intent creation and card confirmation.
package checkout

// Status is the submission status of a checkout form.
type Status string

const (
	StatusInitial  Status = "initial"
	StatusRunning  Status = "running"
	StatusFailed   Status = "failed"
	StatusComplete Status = "complete"
)

// IsTerminal reports whether no further submission transitions are
// possible. A failed submission can still be retried.
func (s Status) IsTerminal() bool {
	return s == StatusComplete
}

func (s Status) String() string {
	return string(s)
}

// Field identifies a billing form field.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldAddress Field = "address"
	FieldCity    Field = "city"
	FieldState   Field = "state"
	FieldZip     Field = "zip"

	// FieldCard is a synthetic key used only in ValidationErrors. The card
	// input is owned by the external widget and is not a form field.
	FieldCard Field = "card"
)

// FormFields lists the billing fields in the order they appear in the form.
var FormFields = []Field{FieldName, FieldEmail, FieldAddress, FieldCity, FieldState, FieldZip}

// FieldValue holds the value of a single form field. ShouldValidate is set
// once the field has been blurred at least once and gates whether its
// validation errors are surfaced.
type FieldValue struct {
	Value          string
	ShouldValidate bool
}

// FormState is the full state of one checkout form instance. It is a value
// type: Reduce returns a new FormState and never mutates its input, so
// callers may hold references to prior states safely.
type FormState struct {
	SubmitStatus Status
	SubmitError  error

	// CardError mirrors the last error message reported by the external
	// card-input widget. It cannot be derived since the card state is owned
	// by the widget; empty means no error.
	CardError string

	Fields map[Field]FieldValue
}

// NewFormState returns the fixed initial state for a checkout form mount:
// all six fields empty and not yet validated, status initial.
func NewFormState() FormState {
	fields := make(map[Field]FieldValue, len(FormFields))
	for _, f := range FormFields {
		fields[f] = FieldValue{}
	}
	return FormState{
		SubmitStatus: StatusInitial,
		Fields:       fields,
	}
}

// ValidationErrors maps a field (or FieldCard) to its error message.
// It is derived from FormState on demand, never stored.
type ValidationErrors map[Field]string

// Address is the billing address sent to the card processor.
type Address struct {
	Line1      string `json:"line1"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// BillingDetails is assembled from the form fields when confirming a
// card payment.
type BillingDetails struct {
	Name    string  `json:"name"`
	Address Address `json:"address"`
}

// CardHandle is the opaque value exposed by the card-input widget and
// passed through to the confirmation call.
type CardHandle interface{}

// ConfirmParams carries everything the confirmation call needs besides the
// payment-intent secret.
type ConfirmParams struct {
	Card           CardHandle     `json:"card"`
	BillingDetails BillingDetails `json:"billing_details"`
}

// CardChangeEvent is delivered by the card-input widget whenever its
// internal validity changes.
type CardChangeEvent struct {
	Complete bool            `json:"complete"`
	Error    *CardEventError `json:"error,omitempty"`
}

// CardEventError is the error payload of a CardChangeEvent.
type CardEventError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// PaymentIntent is the successful result of creating a payment intent:
// the client secret used to confirm the payment.
type PaymentIntent struct {
	Secret string `json:"secret"`
}
