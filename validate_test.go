package checkout

import (
	"reflect"
	"testing"
)

func stateWithValues(values map[Field]string) FormState {
	state := NewFormState()
	for f, v := range values {
		state = Reduce(state, FieldChanged{Field: f, Value: v})
	}
	return state
}

func TestValidateForceValidateEmptyForm(t *testing.T) {
	errs := Validate(NewFormState(), true)

	want := ValidationErrors{
		FieldName:    "Name cannot be empty.",
		FieldAddress: "Address cannot be empty.",
		FieldCity:    "City cannot be empty.",
		FieldState:   "State cannot be empty.",
		FieldZip:     "Zip cannot be empty.",
	}
	if !reflect.DeepEqual(errs, want) {
		t.Errorf("Expected %v, got %v", want, errs)
	}
}

func TestValidateGatedBeforeBlur(t *testing.T) {
	errs := Validate(NewFormState(), false)
	if len(errs) != 0 {
		t.Errorf("Expected no errors before any blur, got %v", errs)
	}
}

func TestValidateWhitespaceOnlyValues(t *testing.T) {
	state := stateWithValues(map[Field]string{
		FieldName: "   ",
		FieldCity: "\t",
	})

	errs := Validate(state, true)
	if errs[FieldName] != "Name cannot be empty." {
		t.Errorf("Expected whitespace-only name to be empty, got %q", errs[FieldName])
	}
	if errs[FieldCity] != "City cannot be empty." {
		t.Errorf("Expected whitespace-only city to be empty, got %q", errs[FieldCity])
	}
}

func TestValidateStateFieldTwoDigitCode(t *testing.T) {
	// Fresh form, type "California" into state, blur it
	state := Reduce(NewFormState(), FieldChanged{Field: FieldState, Value: "California"})
	state = Reduce(state, FieldBlurred{Field: FieldState})

	errs := Validate(state, false)
	if errs[FieldState] != `Please use a two-digit state code (e.g "CA").` {
		t.Fatalf("Expected two-digit code error, got %q", errs[FieldState])
	}

	// Change to "CA" and blur again
	state = Reduce(state, FieldChanged{Field: FieldState, Value: "CA"})
	state = Reduce(state, FieldBlurred{Field: FieldState})

	errs = Validate(state, false)
	if msg, ok := errs[FieldState]; ok {
		t.Fatalf("Expected no state error for CA, got %q", msg)
	}
}

func TestValidateStateEmptyWinsOverLength(t *testing.T) {
	errs := Validate(NewFormState(), true)
	if errs[FieldState] != "State cannot be empty." {
		t.Errorf("Expected the empty check to win for the state key, got %q", errs[FieldState])
	}

	state := stateWithValues(map[Field]string{FieldState: "  "})
	errs = Validate(state, true)
	if errs[FieldState] != "State cannot be empty." {
		t.Errorf("Expected whitespace state to read as empty, got %q", errs[FieldState])
	}
}

func TestValidateStatePaddedCode(t *testing.T) {
	state := stateWithValues(map[Field]string{FieldState: " CA "})
	errs := Validate(state, true)
	if msg, ok := errs[FieldState]; ok {
		t.Errorf("Expected padded two-letter code to pass, got %q", msg)
	}
}

func TestValidateEmailHasNoRule(t *testing.T) {
	state := Reduce(NewFormState(), FieldBlurred{Field: FieldEmail})
	errs := Validate(state, true)
	if msg, ok := errs[FieldEmail]; ok {
		t.Errorf("Expected email to never validate, got %q", msg)
	}
}

func TestValidateCardErrorUngated(t *testing.T) {
	state := NewFormState()
	state.CardError = "Your card number is incomplete."

	// No blur, no forceValidate: the card error still surfaces
	errs := Validate(state, false)
	if errs[FieldCard] != "Your card number is incomplete." {
		t.Errorf("Expected card error to surface ungated, got %q", errs[FieldCard])
	}
}

func TestValidateIsPure(t *testing.T) {
	state := stateWithValues(map[Field]string{FieldState: "California"})
	first := Validate(state, true)
	second := Validate(state, true)
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical output for identical input")
	}
}

func TestCollectErrorMessagesOrder(t *testing.T) {
	errs := ValidationErrors{
		FieldCard:  "Card error",
		FieldZip:   "Zip cannot be empty.",
		FieldName:  "Name cannot be empty.",
		FieldState: "State cannot be empty.",
	}

	want := []string{
		"Name cannot be empty.",
		"State cannot be empty.",
		"Zip cannot be empty.",
		"Card error",
	}

	// Map iteration order must not leak into the output
	for i := 0; i < 20; i++ {
		got := CollectErrorMessages(errs)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}

func TestCollectErrorMessagesEmpty(t *testing.T) {
	if got := CollectErrorMessages(ValidationErrors{}); len(got) != 0 {
		t.Errorf("Expected no messages, got %v", got)
	}
}
