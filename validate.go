package checkout

import "strings"

// Validate computes the validation errors for a form state. Each field's
// rule only fires once that field has been blurred, unless forceValidate
// overrides the gate. The card entry mirrors the widget-reported error and
// is never gated. Email is collected for the receipt but has no rule.
//
// Validate is pure: identical input always yields identical output.
func Validate(state FormState, forceValidate bool) ValidationErrors {
	fields := state.Fields
	errors := ValidationErrors{}

	shouldValidate := func(f Field) bool {
		return forceValidate || fields[f].ShouldValidate
	}

	if shouldValidate(FieldName) && strings.TrimSpace(fields[FieldName].Value) == "" {
		errors[FieldName] = "Name cannot be empty."
	}

	if shouldValidate(FieldAddress) && strings.TrimSpace(fields[FieldAddress].Value) == "" {
		errors[FieldAddress] = "Address cannot be empty."
	}

	if shouldValidate(FieldCity) && strings.TrimSpace(fields[FieldCity].Value) == "" {
		errors[FieldCity] = "City cannot be empty."
	}

	if shouldValidate(FieldState) && len(strings.TrimSpace(fields[FieldState].Value)) != 2 {
		errors[FieldState] = `Please use a two-digit state code (e.g "CA").`
	}

	// The empty check runs after the length check and wins for the state key.
	if shouldValidate(FieldState) && strings.TrimSpace(fields[FieldState].Value) == "" {
		errors[FieldState] = "State cannot be empty."
	}

	if shouldValidate(FieldZip) && strings.TrimSpace(fields[FieldZip].Value) == "" {
		errors[FieldZip] = "Zip cannot be empty."
	}

	if state.CardError != "" {
		errors[FieldCard] = state.CardError
	}

	return errors
}

// displayOrder fixes the order error messages are listed in, matching the
// order the fields appear in the form, with the card error last.
var displayOrder = []Field{FieldName, FieldEmail, FieldAddress, FieldCity, FieldState, FieldZip, FieldCard}

// CollectErrorMessages returns the present, non-empty messages from errs
// in display order, regardless of map iteration order.
func CollectErrorMessages(errs ValidationErrors) []string {
	var messages []string
	for _, f := range displayOrder {
		if msg := errs[f]; msg != "" {
			messages = append(messages, msg)
		}
	}
	return messages
}
