package loader

import (
	"bytes"
	"fmt"

	"github.com/anirudhraja/packetcodec/schema"
)

// Format selects which concrete syntax a schema document is written in.
type Format int

const (
	// Auto detects JSON vs. YAML from the document's first non-space
	// character.
	Auto Format = iota
	JSON
	YAML
)

// detectFormat implements Auto: leading whitespace is skipped, and a first
// non-space character of '{' or '[' selects JSON; anything else, including
// empty input, selects YAML.
func detectFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return JSON
	}
	return YAML
}

// FromString parses a schema document held in memory.
func FromString(text string, format Format) (*schema.Schema, error) {
	return load(StringSource{Text: text}, format)
}

// FromFile parses a schema document read from disk.
func FromFile(path string, format Format) (*schema.Schema, error) {
	return load(FileSource{Path: path}, format)
}

func load(src Source, format Format) (*schema.Schema, error) {
	data, err := src.Read()
	if err != nil {
		return nil, err
	}

	resolved := format
	if resolved == Auto {
		resolved = detectFormat(data)
	}

	var ir *SchemaIR
	switch resolved {
	case JSON:
		ir, err = parseJSON(data)
	default:
		ir, err = parseYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Description(), err)
	}

	s, err := build(ir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Description(), err)
	}
	return s, nil
}
