package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildFieldsJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing a valid extraction result. Every field is
// optional; the schema re-states the plausibility bounds so persisted
// parsed data is provably in range.
func BuildFieldsJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			FieldPropertyAddress: map[string]any{"type": "string", "minLength": 10, "maxLength": 200},
			FieldAddress:         map[string]any{"type": "string", "minLength": 1},
			FieldCity:            map[string]any{"type": "string", "minLength": 1},
			FieldState:           map[string]any{"type": "string", "pattern": `^[A-Z]{2}$`},
			FieldZipCode:         map[string]any{"type": "string", "pattern": `^\d{5}(-\d{4})?$`},
			FieldPrice:           map[string]any{"type": "number", "minimum": float64(minPrice), "maximum": float64(maxPrice)},
			FieldClientName:      map[string]any{"type": "string", "minLength": minNameLen, "maxLength": maxNameLen, "pattern": `^[a-zA-Z\s,.-]+$`},
			FieldSellerName:      map[string]any{"type": "string", "minLength": minNameLen, "maxLength": maxNameLen, "pattern": `^[a-zA-Z\s,.-]+$`},
			FieldClosingDate:     map[string]any{"type": "string", "minLength": 1},
			FieldContractDate:    map[string]any{"type": "string", "minLength": 1},
			FieldListingDate:     map[string]any{"type": "string", "minLength": 1},
			FieldPropertyType:    map[string]any{"type": "string", "minLength": 1},
			FieldMLSNumber:       map[string]any{"type": "string", "pattern": `^[a-zA-Z0-9]{4,}$`},
			FieldCommissionPercent: map[string]any{
				"type": "number", "exclusiveMinimum": 0.0, "maximum": float64(maxCommission),
			},
			FieldBedrooms:      map[string]any{"type": "integer", "minimum": 0, "maximum": maxBedrooms},
			FieldBathrooms:     map[string]any{"type": "number", "minimum": 0.0, "maximum": float64(maxBathrooms)},
			FieldSquareFootage: map[string]any{"type": "integer", "minimum": minSquareFeet, "maximum": maxSquareFeet},
			FieldLotSize:       map[string]any{"type": "string", "minLength": 1},
			FieldYearBuilt:     map[string]any{"type": "integer", "minimum": minYearBuilt},
		},
	}
}

// ValidateFields checks an assembled extraction result against the fields
// schema. It guards persistence only; the engine itself never fails.
func ValidateFields(f Fields) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}
	return validateJSONAgainstSchema(BuildFieldsJSONSchema(), data)
}

// validateJSONAgainstSchema validates "data" against "schemaMap".
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
