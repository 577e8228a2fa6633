package decl

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the schema version written by Marshal.
const CurrentVersion = "1"

// LoadFile loads and parses a YAML declaration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	// Flag masks read best in hex.
	for i := range f.Flags {
		for j := range f.Flags[i].Bits {
			f.Flags[i].Bits[j].Hex = true
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return MarshalOnto(f, nil)
}

// MarshalOnto serializes f and carries over the comments of prev, an earlier
// version of the same declaration file. Comments are matched by mapping key
// and sequence position. A prev that does not parse is ignored.
func MarshalOnto(f *File, prev []byte) ([]byte, error) {
	var root yaml.Node
	if err := root.Encode(f); err != nil {
		return nil, fmt.Errorf("encoding declaration: %w", err)
	}

	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{&root}}

	if len(prev) > 0 {
		var old yaml.Node
		if err := yaml.Unmarshal(prev, &old); err == nil {
			copyComments(doc, &old)
		}
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding declaration: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding declaration: %w", err)
	}

	return buf.Bytes(), nil
}

// copyComments fills the empty comments of dst from the matching nodes of src.
func copyComments(dst, src *yaml.Node) {
	if dst.HeadComment == "" {
		dst.HeadComment = src.HeadComment
	}

	if dst.LineComment == "" {
		dst.LineComment = src.LineComment
	}

	if dst.FootComment == "" {
		dst.FootComment = src.FootComment
	}

	if dst.Kind != src.Kind {
		return
	}

	switch dst.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for i := 0; i < len(dst.Content) && i < len(src.Content); i++ {
			copyComments(dst.Content[i], src.Content[i])
		}

	case yaml.MappingNode:
		for i := 0; i+1 < len(dst.Content); i += 2 {
			for j := 0; j+1 < len(src.Content); j += 2 {
				if src.Content[j].Value != dst.Content[i].Value {
					continue
				}

				copyComments(dst.Content[i], src.Content[j])
				copyComments(dst.Content[i+1], src.Content[j+1])

				break
			}
		}
	}
}

// WriteFile writes a File to the given path, keeping the comments of the
// file it replaces.
func WriteFile(f *File, path string) error {
	prev, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	data, err := MarshalOnto(f, prev)
	if err != nil {
		return fmt.Errorf("failed to marshal declaration: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write declaration file %s: %w", path, err)
	}

	return nil
}
