package server

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// clothesSchema describes the body of the garment-driven endpoints.
const clothesSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "clothes": {
      "type": "array",
      "minItems": 1,
      "maxItems": 20,
      "items": {
        "type": "object",
        "properties": {
          "name":  {"type": "string", "minLength": 1, "maxLength": 100},
          "type":  {"type": "string", "minLength": 1, "maxLength": 20},
          "color": {"type": "string", "maxLength": 50}
        },
        "required": ["name", "type"]
      }
    },
    "scene": {"type": ["string", "null"], "maxLength": 200}
  },
  "required": ["clothes"]
}`

var clothesValidator = jsonschema.MustCompileString("clothes.json", clothesSchema)

// validateJSON checks data against schema.
func validateJSON(schema *jsonschema.Schema, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
