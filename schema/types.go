// Package schema is the typed in-memory representation of a packet schema:
// packets, fields, bit flags, scaling and constraints. Schemas are built by
// the loader package (or by hand for tests) and are immutable once built.
package schema

import "fmt"

// DataType identifies the wire representation of a field.
type DataType int

const (
	Int8 DataType = iota
	UInt8
	Int16
	UInt16
	Int32
	UInt32
	Int64
	UInt64
	Float32
	Float64
	Bitfield
	String
	Bytes
)

func (t DataType) String() string {
	switch t {
	case Int8:
		return "int8"
	case UInt8:
		return "uint8"
	case Int16:
		return "int16"
	case UInt16:
		return "uint16"
	case Int32:
		return "int32"
	case UInt32:
		return "uint32"
	case Int64:
		return "int64"
	case UInt64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Bitfield:
		return "bitfield"
	case String:
		return "string"
	case Bytes:
		return "bytes"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// ByteOrder controls how multi-byte fields are interpreted on the wire.
type ByteOrder int

const (
	// Big is most-significant-byte-first.
	Big ByteOrder = iota
	// Little is least-significant-byte-first.
	Little
	// Native resolves to the host order at decode time.
	Native
)

func (o ByteOrder) String() string {
	switch o {
	case Big:
		return "big"
	case Little:
		return "little"
	case Native:
		return "native"
	default:
		return fmt.Sprintf("ByteOrder(%d)", int(o))
	}
}

// ValueKind tags the active variant of a Value.
type ValueKind int

const (
	ValueEmpty ValueKind = iota
	ValueInt
	ValueUint
	ValueFloat
	ValueString
	ValueBytes
)

// Value is a uniform container for a decoded scalar. All signed integer
// widths widen into Int, all unsigned widths into Uint, and both float
// widths into Float; this trades exact-width preservation for a single
// container shape that the decoder and its callers can pass around without
// a type switch at every step.
type Value struct {
	Kind  ValueKind
	Int   int64
	Uint  uint64
	Float float64
	Str   string
	Bytes []byte
}

// IntValue wraps a signed integer.
func IntValue(v int64) Value { return Value{Kind: ValueInt, Int: v} }

// UintValue wraps an unsigned integer.
func UintValue(v uint64) Value { return Value{Kind: ValueUint, Uint: v} }

// FloatValue wraps a float.
func FloatValue(v float64) Value { return Value{Kind: ValueFloat, Float: v} }

// StringValue wraps a string.
func StringValue(v string) Value { return Value{Kind: ValueString, Str: v} }

// BytesValue wraps a byte sequence.
func BytesValue(v []byte) Value { return Value{Kind: ValueBytes, Bytes: v} }

// IsNumeric reports whether the value is one of the three numeric variants.
func (v Value) IsNumeric() bool {
	return v.Kind == ValueInt || v.Kind == ValueUint || v.Kind == ValueFloat
}

// AsFloat64 widens a numeric value to float64. Non-numeric values return
// (0, false).
func (v Value) AsFloat64() (float64, bool) {
	switch v.Kind {
	case ValueInt:
		return float64(v.Int), true
	case ValueUint:
		return float64(v.Uint), true
	case ValueFloat:
		return v.Float, true
	default:
		return 0, false
	}
}

// AsInt64 widens Int/Uint to int64. Floats and non-numerics return
// (0, false); AsInt64 is used for validValues comparisons against the raw
// integer, never against a scaled float.
func (v Value) AsInt64() (int64, bool) {
	switch v.Kind {
	case ValueInt:
		return v.Int, true
	case ValueUint:
		return int64(v.Uint), true
	default:
		return 0, false
	}
}

// AsUint64 widens Int/Uint to uint64.
func (v Value) AsUint64() (uint64, bool) {
	switch v.Kind {
	case ValueInt:
		return uint64(v.Int), true
	case ValueUint:
		return v.Uint, true
	default:
		return 0, false
	}
}

// Scaling is the affine map scaled = raw*Scale + Offset applied to a raw
// integer to produce a physical quantity.
type Scaling struct {
	Scale  float64
	Offset float64
}

// Apply computes the scaled value from a raw numeric value.
func (s Scaling) Apply(raw float64) float64 {
	return raw*s.Scale + s.Offset
}

// Remove is the inverse of Apply: raw = (scaled - Offset) / Scale.
func (s Scaling) Remove(scaled float64) float64 {
	return (scaled - s.Offset) / s.Scale
}

// Constraints bounds a field's post-scaling numeric value, or restricts its
// raw integer to an enumerated set.
type Constraints struct {
	Min         *float64
	Max         *float64
	ValidValues []int64
}

// HasBounds reports whether a min or max is present.
func (c *Constraints) HasBounds() bool {
	return c != nil && (c.Min != nil || c.Max != nil)
}

// BitFlag names a single bit within a Bitfield field. Order within a
// field's BitFlags slice is preserved for listing but carries no semantic
// weight.
type BitFlag struct {
	Bit         int
	Name        string
	Description string
}

// Field describes one named, typed slot within a Packet.
type Field struct {
	Name        string
	Type        DataType
	ArraySize   int // Bytes width; required iff Type == Bytes
	StringSize  int // String width; required iff Type == String
	BitCount    int // 1..64; required iff Type == Bitfield
	Scaling     *Scaling
	Unit        string
	Description string
	BitFlags    []BitFlag
	Constraints *Constraints
}

// Validate checks the invariants from the field's declaration: BitCount is
// present iff the field is a Bitfield and lies in 1..64, StringSize is
// present iff the field is a String, ArraySize is present iff the field is
// Bytes, and every bit flag falls within BitCount.
func (f *Field) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("field has no name")
	}
	switch f.Type {
	case Bitfield:
		if f.BitCount < 1 || f.BitCount > 64 {
			return fmt.Errorf("field %q: bitCount must be 1..64, got %d", f.Name, f.BitCount)
		}
		for _, flag := range f.BitFlags {
			if flag.Bit < 0 || flag.Bit >= f.BitCount {
				return fmt.Errorf("field %q: flag %q bit %d out of range for %d-bit field", f.Name, flag.Name, flag.Bit, f.BitCount)
			}
		}
	default:
		if f.BitCount != 0 {
			return fmt.Errorf("field %q: bitCount only valid for bitfield type", f.Name)
		}
	}
	if f.Type == String {
		if f.StringSize <= 0 {
			return fmt.Errorf("field %q: stringSize required for string type", f.Name)
		}
	} else if f.StringSize != 0 {
		return fmt.Errorf("field %q: stringSize only valid for string type", f.Name)
	}
	if f.Type == Bytes {
		if f.ArraySize <= 0 {
			return fmt.Errorf("field %q: arraySize required for bytes type", f.Name)
		}
	} else if f.ArraySize != 0 {
		return fmt.Errorf("field %q: arraySize only valid for bytes type", f.Name)
	}
	return nil
}

// ByteSize returns the field's fixed on-wire width in bytes. Bitfields
// round up to a whole number of bytes.
func (f *Field) ByteSize() (int, error) {
	switch f.Type {
	case Int8, UInt8:
		return 1, nil
	case Int16, UInt16:
		return 2, nil
	case Int32, UInt32, Float32:
		return 4, nil
	case Int64, UInt64, Float64:
		return 8, nil
	case Bitfield:
		return (f.BitCount + 7) / 8, nil
	case String:
		return f.StringSize, nil
	case Bytes:
		return f.ArraySize, nil
	default:
		return 0, fmt.Errorf("field %q: unsupported type %v", f.Name, f.Type)
	}
}
