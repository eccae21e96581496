package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Ameliorate/buildlua/ast"
)

// Format is a serialization format for encoded trees.
type Format uint8

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ParseFormat returns the format with the given name, case-insensitively.
// "yml" is accepted as an alias for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unknown format %q", name)
}

// Marshal encodes the chunk and serializes it in the given format. JSON is
// indented with two spaces, does not escape HTML characters and, like YAML,
// ends with a newline.
func Marshal(chunk ast.Chunk, format Format) ([]byte, error) {
	doc := Encode(chunk)
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unsupported format %s", format)
}

// Unmarshal parses data in the given format and decodes it into a chunk.
func Unmarshal(data []byte, format Format) (ast.Chunk, error) {
	var doc interface{}
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return ast.Chunk{}, fmt.Errorf("unmarshal json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return ast.Chunk{}, fmt.Errorf("unmarshal yaml: %w", err)
		}
	default:
		return ast.Chunk{}, fmt.Errorf("unsupported format %s", format)
	}
	return Decode(doc)
}
