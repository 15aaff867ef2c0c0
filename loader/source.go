package loader

import (
	"fmt"
	"os"
)

// Source supplies schema text along with a human-readable description of
// where it came from, used to give load errors provenance ("file: path" or
// "string").
type Source interface {
	Read() ([]byte, error)
	Description() string
}

// StringSource is an in-memory schema document.
type StringSource struct {
	Text string
}

func (s StringSource) Read() ([]byte, error) { return []byte(s.Text), nil }
func (s StringSource) Description() string   { return "string" }

// FileSource reads a schema document from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Read() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return data, nil
}

func (s FileSource) Description() string { return fmt.Sprintf("file: %s", s.Path) }
