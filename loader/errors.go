package loader

import "errors"

// Sentinel errors produced by the IR-to-schema builder. Syntax errors from
// the concrete JSON/YAML parsers are returned as-is (wrapped with source
// description by Load), never mapped to these.
var (
	ErrUnknownType      = errors.New("loader: unknown field type")
	ErrUnknownByteOrder = errors.New("loader: unknown byte order")
	ErrMissingName      = errors.New("loader: missing required name")
	ErrMissingSize      = errors.New("loader: missing required size")
	ErrEmptyPackets     = errors.New("loader: schema has no packets")
)
