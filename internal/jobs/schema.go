package jobs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/data-alchemy/backend/constants"
)

// resultSchemas constrains the JSON stored on completed job records. A
// result that fails its schema marks the job failed rather than storing a
// payload pollers cannot decode.
var resultSchemas = map[constants.JobType]map[string]any{
	constants.JobTypeInference: {
		"type":     "object",
		"required": []any{"total_rows", "total_columns"},
		"properties": map[string]any{
			"total_rows":    map[string]any{"type": "integer", "minimum": 0},
			"total_columns": map[string]any{"type": "integer", "minimum": 0},
		},
		"additionalProperties": false,
	},
	constants.JobTypeConversion: {
		"type":     "object",
		"required": []any{"column_id", "target_type", "converted_rows"},
		"properties": map[string]any{
			"column_id":      map[string]any{"type": "string", "format": "uuid"},
			"target_type":    map[string]any{"type": "string", "enum": toAny(constants.DataTypes)},
			"converted_rows": map[string]any{"type": "integer", "minimum": 0},
		},
		"additionalProperties": false,
	},
	constants.JobTypeExport: {
		"type":     "object",
		"required": []any{"file_path", "format"},
		"properties": map[string]any{
			"file_path": map[string]any{"type": "string", "minLength": 1},
			"format":    map[string]any{"type": "string", "enum": toAny(constants.FileTypes)},
		},
		"additionalProperties": false,
	},
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
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

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
