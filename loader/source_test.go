package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSourceReadsAndDescribes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.json")
	content := `{"packets":[{"id":1,"name":"P","fields":[{"name":"x","type":"uint8"}]}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	src := FileSource{Path: path}
	data, err := src.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != content {
		t.Errorf("Read() = %q, want %q", data, content)
	}
	if src.Description() != "file: "+path {
		t.Errorf("Description() = %q", src.Description())
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	src := FileSource{Path: "/nonexistent/path/schema.json"}
	if _, err := src.Read(); err == nil {
		t.Error("expected error reading missing file")
	}
}

func TestStringSource(t *testing.T) {
	src := StringSource{Text: "hello"}
	data, err := src.Read()
	if err != nil || string(data) != "hello" {
		t.Errorf("Read() = %q, %v", data, err)
	}
	if src.Description() != "string" {
		t.Errorf("Description() = %q", src.Description())
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	content := "packets:\n  - id: 1\n    name: P\n    fields:\n      - name: x\n        type: uint8\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s, err := FromFile(path, Auto)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if _, ok := s.FindPacketByID(1); !ok {
		t.Error("expected packet 1 to load")
	}
}
