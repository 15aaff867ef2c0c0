package decode

import (
	"strings"

	"github.com/anirudhraja/packetcodec/schema"
)

// DecodedBitfield is the decoded form of a Bitfield field: its raw integer
// value plus each declared flag's extracted boolean.
type DecodedBitfield struct {
	RawValue uint64
	Flags    map[string]bool
}

// DecodedField is one field's decoded value.
type DecodedField struct {
	Name        string
	Type        schema.DataType
	RawValue    schema.Value
	ScaledValue schema.Value
	Unit        string
	Bitfield    *DecodedBitfield
}

// Value returns the scaled value when scaling was applied, otherwise the
// raw value. This mirrors the original codec's DecodedField::value().
func (f *DecodedField) Value() schema.Value {
	if f.ScaledValue.Kind != schema.ValueEmpty {
		return f.ScaledValue
	}
	return f.RawValue
}

// Int64 returns Value() widened to int64.
func (f *DecodedField) Int64() (int64, bool) { return f.Value().AsInt64() }

// Uint64 returns Value() widened to uint64.
func (f *DecodedField) Uint64() (uint64, bool) { return f.Value().AsUint64() }

// Float64 returns Value() widened to float64.
func (f *DecodedField) Float64() (float64, bool) { return f.Value().AsFloat64() }

// String returns the field's string value, stripped at the first NUL byte
// (or in full, if none is found). The unstripped buffer is always
// available verbatim via RawValue.Str.
func (f *DecodedField) String() (string, bool) {
	v := f.Value()
	if v.Kind != schema.ValueString {
		return "", false
	}
	if i := strings.IndexByte(v.Str, 0); i >= 0 {
		return v.Str[:i], true
	}
	return v.Str, true
}

// Bytes returns the field's byte value.
func (f *DecodedField) Bytes() ([]byte, bool) {
	v := f.Value()
	if v.Kind != schema.ValueBytes {
		return nil, false
	}
	return v.Bytes, true
}

// DecodedPacket is the decoded form of a Packet: its fields in declaration
// order, an index for lookup by name, and (when the decoder's
// StopOnError option is disabled) any per-field errors that were skipped
// rather than aborting the decode.
type DecodedPacket struct {
	ID        uint32
	Name      string
	Fields    []*DecodedField
	Warnings  []error
	nameIndex map[string]int
}

// NewDecodedPacket returns an empty decoded packet ready to have fields
// appended to it.
func NewDecodedPacket(id uint32, name string) *DecodedPacket {
	return &DecodedPacket{ID: id, Name: name, nameIndex: make(map[string]int)}
}

// Append adds a field, preserving declaration order and rebuilding the
// name index.
func (p *DecodedPacket) Append(f *DecodedField) {
	p.nameIndex[f.Name] = len(p.Fields)
	p.Fields = append(p.Fields, f)
}

// FieldByName looks up a decoded field by name.
func (p *DecodedPacket) FieldByName(name string) (*DecodedField, bool) {
	i, ok := p.nameIndex[name]
	if !ok {
		return nil, false
	}
	return p.Fields[i], true
}

// HasField reports whether a field with the given name was successfully
// decoded. Callers must check this after a decode performed with
// StopOnError disabled, since some fields may be missing.
func (p *DecodedPacket) HasField(name string) bool {
	_, ok := p.nameIndex[name]
	return ok
}
