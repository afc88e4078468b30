package profile

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// profileSchema constrains student profile documents before any values are
// interpreted. Missing fields are allowed here; defaults fill them in later.
const profileSchema = `{
  "type": "object",
  "properties": {
    "learning_pace": {
      "type": "string",
      "enum": ["slow", "moderate", "fast"]
    },
    "study_pattern": {
      "type": "string",
      "enum": ["pomodoro", "deep_work", "short_burst"]
    },
    "daily_available_hours": {
      "type": "number",
      "exclusiveMinimum": 0,
      "maximum": 24
    },
    "preferred_times": {
      "type": "array",
      "items": {"type": "string", "minLength": 1},
      "minItems": 1
    },
    "weak_areas": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    }
  },
  "additionalProperties": false
}`

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// getSchema compiles the profile schema once and caches it.
func getSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(profileSchema), &parsed); err != nil {
			compileErr = fmt.Errorf("parse profile schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://student_profile.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}

		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateDocument checks raw profile JSON against the schema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getSchema()
	if err != nil {
		return err
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}
