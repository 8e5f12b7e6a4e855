package template

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// catalogSchema constrains the templates.json catalog: an array of complete
// template objects whose diagram_type is one of the supported categories.
const catalogSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name", "description", "diagram_type", "tikz_code"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "name": {"type": "string", "minLength": 1},
      "description": {"type": "string"},
      "diagram_type": {
        "type": "string",
        "enum": ["mechanics", "electricity", "optics", "thermodynamics", "quantum", "general"]
      },
      "tikz_code": {"type": "string", "minLength": 1}
    },
    "additionalProperties": false
  }
}`

func validateCatalog(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("catalog.json", strings.NewReader(catalogSchema)); err != nil {
		return fmt.Errorf("failed to add catalog schema: %w", err)
	}

	schema, err := compiler.Compile("catalog.json")
	if err != nil {
		return fmt.Errorf("failed to compile catalog schema: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("catalog is not valid JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return err
	}

	return nil
}
