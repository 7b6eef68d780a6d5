package mapping

import (
	"encoding/json"
	"fmt"
)

// marshalJSONB encodes v for a JSONB column. A nil v stays NULL.
func marshalJSONB(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode jsonb: %w", err)
	}
	return b, nil
}

// unmarshalJSONB decodes a JSONB column into v. NULL and empty input leave v untouched.
func unmarshalJSONB(raw []byte, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode jsonb: %w", err)
	}
	return nil
}
