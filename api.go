package packetcodec

import (
	"github.com/anirudhraja/packetcodec/decode"
	"github.com/anirudhraja/packetcodec/loader"
	"github.com/anirudhraja/packetcodec/schema"
)

// Codec bundles a validated Schema with a Decoder configured against it,
// the single entry point most callers need.
type Codec struct {
	Schema  *schema.Schema
	decoder *decode.Decoder
}

// New wraps an already-built schema. A nil opts uses decode.DefaultOptions().
func New(s *schema.Schema, opts *decode.Options) *Codec {
	return &Codec{Schema: s, decoder: decode.New(s, opts)}
}

// Load parses a schema document held in memory and returns a Codec bound to
// it.
func Load(text string, format loader.Format, opts *decode.Options) (*Codec, error) {
	s, err := loader.FromString(text, format)
	if err != nil {
		return nil, err
	}
	return New(s, opts), nil
}

// LoadFile parses a schema document read from disk and returns a Codec
// bound to it.
func LoadFile(path string, format loader.Format, opts *decode.Options) (*Codec, error) {
	s, err := loader.FromFile(path, format)
	if err != nil {
		return nil, err
	}
	return New(s, opts), nil
}

// Decode looks up a packet definition by id and decodes data against it.
func (c *Codec) Decode(packetID uint32, data []byte) (*decode.DecodedPacket, error) {
	return c.decoder.Decode(packetID, data)
}

// DecodeByName looks up a packet definition by name and decodes data
// against it.
func (c *Codec) DecodeByName(name string, data []byte) (*decode.DecodedPacket, error) {
	return c.decoder.DecodeByName(name, data)
}
