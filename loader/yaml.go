package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func parseYAML(text []byte) (*SchemaIR, error) {
	var ir SchemaIR
	if err := yaml.Unmarshal(text, &ir); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &ir, nil
}
