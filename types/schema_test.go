package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreateIntentRequest(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"amount": 500}`, false},
		{"minimum amount", `{"amount": 1}`, false},
		{"zero amount", `{"amount": 0}`, true},
		{"negative amount", `{"amount": -500}`, true},
		{"fractional amount", `{"amount": 5.5}`, true},
		{"string amount", `{"amount": "500"}`, true},
		{"missing amount", `{}`, true},
		{"extra fields", `{"amount": 500, "currency": "usd"}`, true},
		{"not an object", `[500]`, true},
		{"not json", `amount=500`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCreateIntentRequest([]byte(tc.body))
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
