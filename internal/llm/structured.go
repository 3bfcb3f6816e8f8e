package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/kaptinlin/jsonrepair"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// decodePayload unmarshals model output into a mapping. Models occasionally
// emit near-JSON (trailing commas, single quotes); one repair pass is
// attempted before giving up.
func decodePayload(content string) (map[string]any, error) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(content), &payload); err == nil {
		return payload, nil
	}

	repaired, err := jsonrepair.JSONRepair(content)
	if err != nil {
		return nil, fmt.Errorf("decode structured response: %w", err)
	}
	slog.Warn("repaired malformed structured response", "content_len", len(content))

	if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
		return nil, fmt.Errorf("decode repaired structured response: %w", err)
	}
	return payload, nil
}

// validatePayload enforces the declared schema on a strict structured call.
func validatePayload(schema map[string]any, payload map[string]any) error {
	if schema == nil {
		return nil
	}

	schemaBytes, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(schemaBytes)); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	if err := compiled.Validate(toJSONValue(payload)); err != nil {
		return fmt.Errorf("structured response does not conform to schema: %w", err)
	}
	return nil
}

// toJSONValue round-trips a value through encoding/json so the validator only
// ever sees canonical JSON types, no matter how the payload was built.
func toJSONValue(v map[string]any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}
