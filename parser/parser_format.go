package parser

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasdecode/oaserrors"
)

// FormatBytes formats a byte count into a human-readable string using binary units (KiB, MiB, etc.)
func FormatBytes(size int64) string {
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// detectFormatFromPath detects the source format from a file path
func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent guesses the format from the first non-blank byte:
// JSON documents start with '{' or '[', anything else is treated as YAML.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// maxYAMLNodes bounds the number of nodes written while converting YAML,
// counting every expansion of an alias.
const maxYAMLNodes = 1 << 24

// yamlToJSON converts a YAML document to equivalent JSON, keeping mapping
// keys in source order. Mapping keys are always written as strings, so a
// status code key such as 200 stays "200".
func yamlToJSON(data []byte) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.ParseError{Message: "invalid YAML", Cause: err}
	}
	if root.Kind == 0 || (root.Kind == yaml.DocumentNode && len(root.Content) == 0) {
		return nil, &oaserrors.ParseError{Message: "empty YAML document"}
	}
	w := &yamlWriter{}
	if err := w.write(&root); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}

type yamlWriter struct {
	buf   bytes.Buffer
	nodes int
}

func (w *yamlWriter) write(n *yaml.Node) error {
	w.nodes++
	if w.nodes > maxYAMLNodes {
		return &oaserrors.ResourceLimitError{ResourceType: "yaml_nodes", Limit: maxYAMLNodes}
	}
	switch n.Kind {
	case yaml.DocumentNode:
		return w.write(n.Content[0])
	case yaml.AliasNode:
		return w.write(n.Alias)
	case yaml.SequenceNode:
		w.buf.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				w.buf.WriteByte(',')
			}
			if err := w.write(item); err != nil {
				return err
			}
		}
		w.buf.WriteByte(']')
		return nil
	case yaml.MappingNode:
		w.buf.WriteByte('{')
		first := true
		if err := w.members(n, &first); err != nil {
			return err
		}
		w.buf.WriteByte('}')
		return nil
	case yaml.ScalarNode:
		return w.scalar(n)
	default:
		return yamlError(n, fmt.Sprintf("unsupported node kind %v", n.Kind))
	}
}

// members writes the key/value pairs of a mapping. Pairs pulled in through
// "<<" merge keys are written first so that the mapping's own keys, written
// later, take precedence when the JSON is decoded.
func (w *yamlWriter) members(n *yaml.Node, first *bool) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		if key.Tag != "!!merge" {
			continue
		}
		for _, src := range mergeSources(value) {
			if src.Kind != yaml.MappingNode {
				return yamlError(src, "merge value is not a mapping")
			}
			if err := w.members(src, first); err != nil {
				return err
			}
		}
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		if key.Tag == "!!merge" {
			continue
		}
		if key.Kind == yaml.AliasNode {
			key = key.Alias
		}
		if key.Kind != yaml.ScalarNode {
			return yamlError(key, "mapping key is not a scalar")
		}
		if !*first {
			w.buf.WriteByte(',')
		}
		*first = false
		w.str(key.Value)
		w.buf.WriteByte(':')
		if err := w.write(value); err != nil {
			return err
		}
	}
	return nil
}

func mergeSources(n *yaml.Node) []*yaml.Node {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.SequenceNode {
		return []*yaml.Node{n}
	}
	out := make([]*yaml.Node, 0, len(n.Content))
	for _, item := range n.Content {
		if item.Kind == yaml.AliasNode {
			item = item.Alias
		}
		out = append(out, item)
	}
	return out
}

func (w *yamlWriter) scalar(n *yaml.Node) error {
	switch n.ShortTag() {
	case "!!null":
		w.buf.WriteString("null")
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return yamlError(n, err.Error())
		}
		w.buf.WriteString(strconv.FormatBool(b))
	case "!!int", "!!float":
		lit, err := yamlNumber(n)
		if err != nil {
			return err
		}
		w.buf.WriteString(lit)
	default:
		w.str(n.Value)
	}
	return nil
}

// yamlNumber returns the JSON literal for a YAML number. Literals that are
// already valid JSON are copied unchanged so that no precision is lost.
func yamlNumber(n *yaml.Node) (string, error) {
	if kindOf(json.RawMessage(n.Value)) == kindNumber && json.Valid([]byte(n.Value)) {
		return n.Value, nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return "", yamlError(n, err.Error())
	}
	out, err := json.Marshal(v)
	if err != nil {
		return "", yamlError(n, fmt.Sprintf("number %q has no JSON representation", n.Value))
	}
	return string(out), nil
}

func (w *yamlWriter) str(s string) {
	// Marshaling a string cannot fail.
	out, _ := json.Marshal(s)
	w.buf.Write(out)
}

func yamlError(n *yaml.Node, msg string) error {
	return &oaserrors.ParseError{Line: n.Line, Column: n.Column, Message: msg}
}

// EncodeYAML encodes v as YAML by way of its JSON encoding, so the output
// carries exactly the members v's MarshalJSON writes.
func EncodeYAML(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	blockStyle(&node)
	return yaml.Marshal(&node)
}

// blockStyle resets the flow and quoting styles that parsing JSON leaves on
// every node, so the encoder picks plain block style where it can.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
