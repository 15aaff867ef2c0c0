package loader

import (
	"encoding/json"
	"fmt"
)

func parseJSON(text []byte) (*SchemaIR, error) {
	var ir SchemaIR
	if err := json.Unmarshal(text, &ir); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return &ir, nil
}
