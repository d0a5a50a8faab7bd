package types

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// createIntentSchema validates CreateIntentRequest bodies before they
// reach the processor. Amounts are whole cents and must be positive.
const createIntentSchema = `{
	"type": "object",
	"required": ["amount"],
	"additionalProperties": false,
	"properties": {
		"amount": {
			"type": "integer",
			"minimum": 1
		}
	}
}`

var createIntentSchemaLoader = gojsonschema.NewStringLoader(createIntentSchema)

// ValidateCreateIntentRequest checks a raw request body against the
// create-intent schema. The returned error message aggregates every
// violation.
func ValidateCreateIntentRequest(body []byte) error {
	result, err := gojsonschema.Validate(createIntentSchemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("invalid create intent request: %w", err)
	}

	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return fmt.Errorf("invalid create intent request: %s", strings.Join(problems, "; "))
	}

	return nil
}
