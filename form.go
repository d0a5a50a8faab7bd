package checkout

// Action is a discrete event applied to a FormState by Reduce. Unknown
// actions (including nil) are a no-op, not an error.
type Action interface {
	isAction()
}

// FieldChanged records a keystroke in a form field. It resets the field's
// validate gate: the field re-enters the not-yet-validated display state
// until it is blurred again.
type FieldChanged struct {
	Field Field
	Value string
}

// FieldBlurred records a field losing focus; from then on its validation
// errors are surfaced.
type FieldBlurred struct {
	Field Field
}

// Submitting marks the start of a submission attempt.
type Submitting struct{}

// SubmitFailed records a failed confirmation call with its opaque error.
type SubmitFailed struct {
	Error error
}

// SubmitCompleted marks a successful submission.
type SubmitCompleted struct{}

// CardElementChanged mirrors a validity-change event from the external
// card-input widget into form state.
type CardElementChanged struct {
	Event CardChangeEvent
}

func (FieldChanged) isAction()       {}
func (FieldBlurred) isAction()       {}
func (Submitting) isAction()         {}
func (SubmitFailed) isAction()       {}
func (SubmitCompleted) isAction()    {}
func (CardElementChanged) isAction() {}

// allowedTransitions defines the valid submit-status transitions. The key
// is the current status, the value the statuses reachable in one step.
var allowedTransitions = map[Status][]Status{
	StatusInitial:  {StatusRunning},
	StatusRunning:  {StatusFailed, StatusComplete},
	StatusFailed:   {StatusRunning},
	StatusComplete: {},
}

// CanTransition checks if a submit-status transition is allowed.
func CanTransition(from, to Status) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Reduce applies an action to a form state and returns the next state.
// It is pure and total: the input state is never mutated, and actions that
// would violate the status transition table (or touch an unknown field)
// return the state unchanged.
func Reduce(state FormState, action Action) FormState {
	switch a := action.(type) {
	case FieldChanged:
		if _, ok := state.Fields[a.Field]; !ok {
			return state
		}
		next := state
		next.Fields = cloneFields(state.Fields)
		next.Fields[a.Field] = FieldValue{Value: a.Value}
		return next

	case FieldBlurred:
		fs, ok := state.Fields[a.Field]
		if !ok {
			return state
		}
		fs.ShouldValidate = true
		next := state
		next.Fields = cloneFields(state.Fields)
		next.Fields[a.Field] = fs
		return next

	case Submitting:
		if !CanTransition(state.SubmitStatus, StatusRunning) {
			return state
		}
		next := state
		next.SubmitStatus = StatusRunning
		next.SubmitError = nil
		return next

	case SubmitFailed:
		if !CanTransition(state.SubmitStatus, StatusFailed) {
			return state
		}
		next := state
		next.SubmitStatus = StatusFailed
		next.SubmitError = a.Error
		return next

	case SubmitCompleted:
		if !CanTransition(state.SubmitStatus, StatusComplete) {
			return state
		}
		next := state
		next.SubmitStatus = StatusComplete
		return next

	case CardElementChanged:
		next := state
		if a.Event.Error != nil && a.Event.Error.Message != "" {
			next.CardError = a.Event.Error.Message
		} else {
			next.CardError = ""
		}
		return next

	default:
		return state
	}
}

// cloneFields copies the field map so a reduced state never aliases the
// fields of its predecessor.
func cloneFields(fields map[Field]FieldValue) map[Field]FieldValue {
	next := make(map[Field]FieldValue, len(fields))
	for f, fs := range fields {
		next[f] = fs
	}
	return next
}
