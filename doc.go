// Package packetcodec is a schema-driven binary packet codec: given a
// declarative description of wire packets (fields, byte order, bit
// layouts, scaling, constraints), it decodes raw byte buffers into
// structured named values and validates them.
//
// A schema is loaded once from JSON or YAML text via the loader package (or
// built by hand via the schema package), then handed to a Codec or a
// decode.Decoder, both of which are safe to reuse across many decodes.
package packetcodec
