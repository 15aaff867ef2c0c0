package schema

import (
	"errors"
	"testing"
)

func samplePacket(id uint32, name string) *Packet {
	return &Packet{
		ID:   id,
		Name: name,
		Fields: []*Field{
			{Name: "x", Type: UInt16},
		},
	}
}

func TestNewSchemaBuildsIndices(t *testing.T) {
	s, err := New(Info{Name: "S"}, Big, []*Packet{samplePacket(1, "P1"), samplePacket(2, "P2")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p, ok := s.FindPacketByID(1); !ok || p.Name != "P1" {
		t.Errorf("FindPacketByID(1) = %v, %v", p, ok)
	}
	if p, ok := s.FindPacketByName("P2"); !ok || p.ID != 2 {
		t.Errorf("FindPacketByName(P2) = %v, %v", p, ok)
	}
	if _, ok := s.FindPacketByID(99); ok {
		t.Error("expected no packet with id 99")
	}
}

func TestNewSchemaDuplicateID(t *testing.T) {
	_, err := New(Info{}, Big, []*Packet{samplePacket(1, "P1"), samplePacket(1, "P2")})
	if !errors.Is(err, ErrDuplicatePacketID) {
		t.Errorf("expected ErrDuplicatePacketID, got %v", err)
	}
}

func TestNewSchemaDuplicateName(t *testing.T) {
	_, err := New(Info{}, Big, []*Packet{samplePacket(1, "P"), samplePacket(2, "P")})
	if !errors.Is(err, ErrDuplicatePacketName) {
		t.Errorf("expected ErrDuplicatePacketName, got %v", err)
	}
}

func TestNewSchemaEmptyFields(t *testing.T) {
	_, err := New(Info{}, Big, []*Packet{{ID: 1, Name: "Empty"}})
	if !errors.Is(err, ErrEmptyFields) {
		t.Errorf("expected ErrEmptyFields, got %v", err)
	}
}

func TestPacketDuplicateFieldName(t *testing.T) {
	p := &Packet{ID: 1, Name: "P", Fields: []*Field{
		{Name: "x", Type: UInt8},
		{Name: "x", Type: UInt8},
	}}
	err := p.Validate()
	if !errors.Is(err, ErrDuplicateFieldName) {
		t.Errorf("expected ErrDuplicateFieldName, got %v", err)
	}
}

func TestPacketFieldByName(t *testing.T) {
	p := samplePacket(1, "P")
	f, idx, ok := p.FieldByName("x")
	if !ok || idx != 0 || f.Name != "x" {
		t.Errorf("FieldByName(x) = %v, %d, %v", f, idx, ok)
	}
	if _, _, ok := p.FieldByName("missing"); ok {
		t.Error("expected no field named missing")
	}
}

func TestSchemaTotalSize(t *testing.T) {
	p := &Packet{ID: 1, Name: "P", Fields: []*Field{
		{Name: "a", Type: UInt8},
		{Name: "b", Type: UInt16},
		{Name: "c", Type: Bitfield, BitCount: 9},
		{Name: "d", Type: String, StringSize: 16},
	}}
	s, err := New(Info{}, Big, []*Packet{p})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	total, err := s.TotalSize(p)
	if err != nil {
		t.Fatalf("TotalSize: %v", err)
	}
	want := 1 + 2 + 2 + 16
	if total != want {
		t.Errorf("TotalSize = %d, want %d", total, want)
	}
	if !s.IsFixedSize(p) {
		t.Error("expected packet to be fixed size")
	}
}
