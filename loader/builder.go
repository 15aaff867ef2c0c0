package loader

import (
	"fmt"
	"strings"

	"github.com/anirudhraja/packetcodec/schema"
)

var typeTable = map[string]schema.DataType{
	"int8":     schema.Int8,
	"uint8":    schema.UInt8,
	"int16":    schema.Int16,
	"uint16":   schema.UInt16,
	"int32":    schema.Int32,
	"uint32":   schema.UInt32,
	"int64":    schema.Int64,
	"uint64":   schema.UInt64,
	"float32":  schema.Float32,
	"float64":  schema.Float64,
	"bitfield": schema.Bitfield,
	"string":   schema.String,
	"bytes":    schema.Bytes,
}

func parseDataType(s string) (schema.DataType, error) {
	dt, ok := typeTable[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
	return dt, nil
}

// parseByteOrder resolves the schema block's byte_order key. Absent
// entirely (raw == nil) defaults to Big; present but naming an unrecognized
// order (including an empty string) is a load error.
func parseByteOrder(raw *string) (schema.ByteOrder, error) {
	if raw == nil {
		return schema.Big, nil
	}
	switch strings.ToLower(*raw) {
	case "big", "be", "big_endian":
		return schema.Big, nil
	case "little", "le", "little_endian":
		return schema.Little, nil
	case "native":
		return schema.Native, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownByteOrder, *raw)
	}
}

// build lowers a parsed SchemaIR into a validated schema.Schema. This is
// the single place schema semantics live, shared by both the JSON and YAML
// surfaces.
func build(ir *SchemaIR) (*schema.Schema, error) {
	if len(ir.Packets) == 0 {
		return nil, ErrEmptyPackets
	}
	order, err := parseByteOrder(ir.Schema.ByteOrder)
	if err != nil {
		return nil, err
	}
	packets := make([]*schema.Packet, 0, len(ir.Packets))
	for _, pIR := range ir.Packets {
		pkt, err := buildPacket(pIR)
		if err != nil {
			return nil, fmt.Errorf("packet %q (id %d): %w", pIR.Name, pIR.ID, err)
		}
		packets = append(packets, pkt)
	}
	info := schema.Info{Name: ir.Schema.Name, Version: ir.Schema.Version, Description: ir.Schema.Description}
	return schema.New(info, order, packets)
}

func buildPacket(ir PacketIR) (*schema.Packet, error) {
	if ir.Name == "" {
		return nil, fmt.Errorf("%w: packet name", ErrMissingName)
	}
	if len(ir.Fields) == 0 {
		return nil, fmt.Errorf("packet %q: %w", ir.Name, schema.ErrEmptyFields)
	}
	fields := make([]*schema.Field, 0, len(ir.Fields))
	for _, fIR := range ir.Fields {
		f, err := buildField(fIR)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fIR.Name, err)
		}
		fields = append(fields, f)
	}
	return &schema.Packet{ID: ir.ID, Name: ir.Name, Description: ir.Description, Fields: fields}, nil
}

func buildField(ir FieldIR) (*schema.Field, error) {
	if ir.Name == "" {
		return nil, fmt.Errorf("%w: field name", ErrMissingName)
	}
	dt, err := parseDataType(ir.Type)
	if err != nil {
		return nil, err
	}
	f := &schema.Field{Name: ir.Name, Type: dt, Description: ir.Description, Unit: ir.Unit}

	switch dt {
	case schema.Bitfield:
		if ir.Bits == nil {
			return nil, fmt.Errorf("%w: bitfield requires bits", ErrMissingSize)
		}
		f.BitCount = *ir.Bits
		for _, flagIR := range ir.Flags {
			f.BitFlags = append(f.BitFlags, schema.BitFlag{
				Bit:         flagIR.Bit,
				Name:        flagIR.Name,
				Description: flagIR.Description,
			})
		}
	case schema.String:
		if ir.Size == nil {
			return nil, fmt.Errorf("%w: string requires size", ErrMissingSize)
		}
		f.StringSize = *ir.Size
	case schema.Bytes:
		if ir.Size == nil {
			return nil, fmt.Errorf("%w: bytes requires size", ErrMissingSize)
		}
		f.ArraySize = *ir.Size
	}

	if ir.Scale != nil || ir.Offset != nil {
		scale := 1.0
		if ir.Scale != nil {
			scale = *ir.Scale
		}
		offset := 0.0
		if ir.Offset != nil {
			offset = *ir.Offset
		}
		f.Scaling = &schema.Scaling{Scale: scale, Offset: offset}
	}

	if ir.Min != nil || ir.Max != nil || len(ir.ValidValues) > 0 {
		f.Constraints = &schema.Constraints{Min: ir.Min, Max: ir.Max, ValidValues: ir.ValidValues}
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}
