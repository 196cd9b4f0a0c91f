package review

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// reviewSchema is the JSON Schema the upstream payload must satisfy. Scores
// are on the 1-100 scale; this contract is intentionally distinct from the
// heuristic engine's 1-10 AnalysisResult and the two are never merged.
const reviewSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["scores", "explainability", "recommendations"],
  "properties": {
    "scores": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": {"type": "number", "minimum": 1, "maximum": 100}
    },
    "explainability": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "recommendations": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(reviewSchema)

// validatePayload checks the raw upstream JSON against the review schema.
// Returns a ContractError listing every violated field.
func validatePayload(raw string) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return &ContractError{Reason: fmt.Sprintf("payload is not parseable JSON: %v", err), Content: raw}
	}

	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	for i, desc := range result.Errors() {
		if i > 0 {
			sb.WriteString("; ")
		}
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		sb.WriteString(fmt.Sprintf("%s: %s", field, desc.Description()))
	}

	return &ContractError{Reason: sb.String(), Content: raw}
}
