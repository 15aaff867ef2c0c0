// Package loader parses schema text (JSON or YAML) into a validated
// schema.Schema. Both concrete syntaxes populate the same intermediate
// representation (IR) below; a single builder lowers that IR into the
// schema model, so syntax parsing and schema semantics never mix.
package loader

// SchemaIR mirrors the schema model but keeps type and byte_order as plain
// strings, so the JSON and YAML parsers stay a thin unmarshal away from
// this struct.
type SchemaIR struct {
	Schema  SchemaInfoIR `json:"schema" yaml:"schema"`
	Packets []PacketIR   `json:"packets" yaml:"packets"`
}

// SchemaInfoIR is the optional metadata block at the top of a schema
// document.
type SchemaInfoIR struct {
	Name        string  `json:"name" yaml:"name"`
	Version     string  `json:"version" yaml:"version"`
	Description string  `json:"description" yaml:"description"`
	ByteOrder   *string `json:"byte_order" yaml:"byte_order"`
}

// PacketIR is one packet definition.
type PacketIR struct {
	ID          uint32    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Fields      []FieldIR `json:"fields" yaml:"fields"`
}

// FieldIR is one field definition within a packet.
type FieldIR struct {
	Name        string    `json:"name" yaml:"name"`
	Type        string    `json:"type" yaml:"type"`
	Description string    `json:"description" yaml:"description"`
	Unit        string    `json:"unit" yaml:"unit"`
	Scale       *float64  `json:"scale" yaml:"scale"`
	Offset      *float64  `json:"offset" yaml:"offset"`
	Min         *float64  `json:"min" yaml:"min"`
	Max         *float64  `json:"max" yaml:"max"`
	ValidValues []int64   `json:"valid_values" yaml:"valid_values"`
	Bits        *int      `json:"bits" yaml:"bits"`
	Flags       []FlagIR  `json:"flags" yaml:"flags"`
	Size        *int      `json:"size" yaml:"size"`
}

// FlagIR names a single bit within a bitfield field.
type FlagIR struct {
	Bit         int    `json:"bit" yaml:"bit"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}
