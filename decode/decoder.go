package decode

import (
	"errors"

	"github.com/anirudhraja/packetcodec/schema"
	"github.com/anirudhraja/packetcodec/wire"
)

// Options tunes the decode pipeline. Its zero value disables scaling,
// constraint validation, and stop-on-error all at once; most callers want
// DefaultOptions or New with a nil *Options instead, both of which enable
// all three.
type Options struct {
	// ApplyScaling controls whether a field's scaling is applied to
	// produce ScaledValue. When false, ScaledValue always equals
	// RawValue.
	ApplyScaling bool
	// ValidateConstraints controls whether min/max/validValues are
	// checked.
	ValidateConstraints bool
	// StopOnError controls whether a failed field aborts the decode
	// (true) or is recorded as a warning and skipped, continuing with
	// the next field (false). UnknownPacket always aborts regardless.
	StopOnError bool
}

// DefaultOptions enables scaling, constraint validation, and stop-on-error.
func DefaultOptions() Options {
	return Options{ApplyScaling: true, ValidateConstraints: true, StopOnError: true}
}

// Decoder drives a wire.Reader from a schema's packet definitions. A
// Decoder is stateless across calls and safe for concurrent use, since the
// Schema it borrows is immutable and each Decode call owns its own Reader.
type Decoder struct {
	schema *schema.Schema
	opts   Options
}

// New constructs a Decoder bound to s. A nil opts uses DefaultOptions().
func New(s *schema.Schema, opts *Options) *Decoder {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	return &Decoder{schema: s, opts: o}
}

// Decode looks up a packet definition by id and decodes data against it.
func (d *Decoder) Decode(packetID uint32, data []byte) (*DecodedPacket, error) {
	pkt, ok := d.schema.FindPacketByID(packetID)
	if !ok {
		return nil, unknownPacketByID(packetID)
	}
	return d.decodePacket(pkt, data)
}

// DecodeByName looks up a packet definition by name and decodes data
// against it.
func (d *Decoder) DecodeByName(name string, data []byte) (*DecodedPacket, error) {
	pkt, ok := d.schema.FindPacketByName(name)
	if !ok {
		return nil, unknownPacketByName(name)
	}
	return d.decodePacket(pkt, data)
}

// DecodeReader decodes pkt from an already-positioned reader, letting
// callers inspect leftover bytes via reader.Remaining() afterward or chain
// multiple packets out of one buffer.
func (d *Decoder) DecodeReader(pkt *schema.Packet, r *wire.Reader) (*DecodedPacket, error) {
	return d.decodeFields(pkt, r)
}

func (d *Decoder) decodePacket(pkt *schema.Packet, data []byte) (*DecodedPacket, error) {
	r := wire.NewReader(data, d.schema.ByteOrder)
	return d.decodeFields(pkt, r)
}

func (d *Decoder) decodeFields(pkt *schema.Packet, r *wire.Reader) (*DecodedPacket, error) {
	out := NewDecodedPacket(pkt.ID, pkt.Name)
	for _, f := range pkt.Fields {
		df, err := d.decodeField(f, r)
		if err != nil {
			if d.opts.StopOnError {
				return nil, err
			}
			out.Warnings = append(out.Warnings, err)
			continue
		}
		out.Append(df)
	}
	return out, nil
}

func (d *Decoder) order() schema.ByteOrder {
	return d.schema.ByteOrder
}

func (d *Decoder) decodeField(f *schema.Field, r *wire.Reader) (*DecodedField, error) {
	switch f.Type {
	case schema.Int8, schema.UInt8, schema.Int16, schema.UInt16,
		schema.Int32, schema.UInt32, schema.Int64, schema.UInt64,
		schema.Float32, schema.Float64:
		return d.decodeNumeric(f, r)
	case schema.Bitfield:
		return d.decodeBitfield(f, r)
	case schema.String:
		return d.decodeString(f, r)
	case schema.Bytes:
		return d.decodeBytesField(f, r)
	default:
		return nil, &Error{Kind: KindUnsupportedType, Field: f.Name, Message: "unsupported field type"}
	}
}

func (d *Decoder) decodeNumeric(f *schema.Field, r *wire.Reader) (*DecodedField, error) {
	var raw schema.Value
	var err error

	switch f.Type {
	case schema.Int8:
		var v int8
		v, err = r.ReadInt8()
		raw = schema.IntValue(int64(v))
	case schema.UInt8:
		var v uint8
		v, err = r.ReadUint8()
		raw = schema.UintValue(uint64(v))
	case schema.Int16:
		var v int16
		v, err = r.ReadInt16(d.order())
		raw = schema.IntValue(int64(v))
	case schema.UInt16:
		var v uint16
		v, err = r.ReadUint16(d.order())
		raw = schema.UintValue(uint64(v))
	case schema.Int32:
		var v int32
		v, err = r.ReadInt32(d.order())
		raw = schema.IntValue(int64(v))
	case schema.UInt32:
		var v uint32
		v, err = r.ReadUint32(d.order())
		raw = schema.UintValue(uint64(v))
	case schema.Int64:
		var v int64
		v, err = r.ReadInt64(d.order())
		raw = schema.IntValue(v)
	case schema.UInt64:
		var v uint64
		v, err = r.ReadUint64(d.order())
		raw = schema.UintValue(v)
	case schema.Float32:
		var v float32
		v, err = r.ReadFloat32(d.order())
		raw = schema.FloatValue(float64(v))
	case schema.Float64:
		var v float64
		v, err = r.ReadFloat64(d.order())
		raw = schema.FloatValue(v)
	}
	if err != nil {
		return nil, wrapReadErr(f.Name, err)
	}

	scaled := raw
	if d.opts.ApplyScaling && f.Scaling != nil {
		rv, _ := raw.AsFloat64()
		scaled = schema.FloatValue(f.Scaling.Apply(rv))
	}

	if d.opts.ValidateConstraints && f.Constraints != nil {
		if err := d.checkConstraints(f, raw, scaled); err != nil {
			return nil, err
		}
	}

	return &DecodedField{Name: f.Name, Type: f.Type, RawValue: raw, ScaledValue: scaled, Unit: f.Unit}, nil
}

// decodeBitfield reads a whole-byte-width integer covering the field's
// bitCount and extracts each flag by shifting. This assumes the bitfield
// is byte-aligned from the start of the packet; it never routes through
// wire.Reader.ReadBits. Two bitfields in the same packet are therefore
// always byte-aligned relative to each other, and sub-byte packing across
// fields is not supported.
func (d *Decoder) decodeBitfield(f *schema.Field, r *wire.Reader) (*DecodedField, error) {
	var raw uint64
	var err error
	switch {
	case f.BitCount <= 8:
		var v uint8
		v, err = r.ReadUint8()
		raw = uint64(v)
	case f.BitCount <= 16:
		var v uint16
		v, err = r.ReadUint16(d.order())
		raw = uint64(v)
	case f.BitCount <= 32:
		var v uint32
		v, err = r.ReadUint32(d.order())
		raw = uint64(v)
	default:
		raw, err = r.ReadUint64(d.order())
	}
	if err != nil {
		return nil, wrapReadErr(f.Name, err)
	}

	flags := make(map[string]bool, len(f.BitFlags))
	for _, bf := range f.BitFlags {
		flags[bf.Name] = (raw>>uint(bf.Bit))&1 == 1
	}

	rawVal := schema.UintValue(raw)
	scaledVal := rawVal
	if d.opts.ApplyScaling && f.Scaling != nil {
		rv, _ := rawVal.AsFloat64()
		scaledVal = schema.FloatValue(f.Scaling.Apply(rv))
	}

	df := &DecodedField{
		Name:        f.Name,
		Type:        f.Type,
		RawValue:    rawVal,
		ScaledValue: scaledVal,
		Unit:        f.Unit,
		Bitfield:    &DecodedBitfield{RawValue: raw, Flags: flags},
	}

	if d.opts.ValidateConstraints && f.Constraints != nil {
		if err := d.checkConstraints(f, rawVal, scaledVal); err != nil {
			return nil, err
		}
	}
	return df, nil
}

func (d *Decoder) decodeString(f *schema.Field, r *wire.Reader) (*DecodedField, error) {
	if f.StringSize <= 0 {
		return nil, &Error{Kind: KindMissingFieldSize, Field: f.Name, Message: "string field has no size"}
	}
	s, err := r.ReadString(f.StringSize)
	if err != nil {
		return nil, wrapReadErr(f.Name, err)
	}
	v := schema.StringValue(s)
	return &DecodedField{Name: f.Name, Type: f.Type, RawValue: v, ScaledValue: v, Unit: f.Unit}, nil
}

func (d *Decoder) decodeBytesField(f *schema.Field, r *wire.Reader) (*DecodedField, error) {
	if f.ArraySize <= 0 {
		return nil, &Error{Kind: KindMissingFieldSize, Field: f.Name, Message: "bytes field has no size"}
	}
	b, err := r.ReadBytes(f.ArraySize)
	if err != nil {
		return nil, wrapReadErr(f.Name, err)
	}
	v := schema.BytesValue(b)
	return &DecodedField{Name: f.Name, Type: f.Type, RawValue: v, ScaledValue: v, Unit: f.Unit}, nil
}

// checkConstraints compares the display value (scaled if scaling is
// present, else raw) against min/max, and the raw integer against
// validValues.
func (d *Decoder) checkConstraints(f *schema.Field, raw, scaled schema.Value) error {
	c := f.Constraints
	display := raw
	if f.Scaling != nil {
		display = scaled
	}
	dv, _ := display.AsFloat64()

	if c.Min != nil && dv < *c.Min {
		return &Error{Kind: KindConstraintViolation, Field: f.Name, Message: "value below min", Value: dv, Bound: *c.Min}
	}
	if c.Max != nil && dv > *c.Max {
		return &Error{Kind: KindConstraintViolation, Field: f.Name, Message: "value above max", Value: dv, Bound: *c.Max}
	}
	if len(c.ValidValues) > 0 {
		rawInt, _ := raw.AsInt64()
		valid := false
		for _, vv := range c.ValidValues {
			if vv == rawInt {
				valid = true
				break
			}
		}
		if !valid {
			return &Error{Kind: KindConstraintViolation, Field: f.Name, Message: "value not in validValues", Value: float64(rawInt)}
		}
	}
	return nil
}

func wrapReadErr(field string, err error) error {
	var we *wire.Error
	if errors.As(err, &we) {
		if we.Kind == wire.ErrUnderflow {
			return &Error{Kind: KindUnderflow, Field: field, Needed: we.Needed, Available: we.Available, Position: we.Position, Err: err}
		}
	}
	return &Error{Kind: KindReadError, Field: field, Message: err.Error(), Err: err}
}
