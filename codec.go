package argmap

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// The codec decodes YAML at the node level so that plain scalars run
// through the package's own resolution table (see infer.go) instead of
// the library's YAML 1.1 implicit resolvers. Quoted and block scalars
// are always strings; explicitly tagged nodes keep the library's
// constructor behavior.

// ParseYAML parses a full YAML document into a tree of maps, sequences,
// and inferred scalar values.
func ParseYAML(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, nil // empty document
	}
	return nodeValue(root.Content[0])
}

// DumpYAML serializes a value tree back to YAML text. Typed leaves
// survive a load/dump round trip: strings that look like numbers or
// booleans are emitted quoted by the encoder, so reloading them yields
// strings again.
func DumpYAML(value any) ([]byte, error) {
	data, err := yaml.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize YAML: %w", err)
	}
	return data, nil
}

const stringStyles = yaml.SingleQuotedStyle | yaml.DoubleQuotedStyle |
	yaml.LiteralStyle | yaml.FoldedStyle

func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0])

	case yaml.ScalarNode:
		if n.Style&yaml.TaggedStyle != 0 {
			// Explicit tag: honor the author's declared type.
			var v any
			if err := n.Decode(&v); err != nil {
				return nil, fmt.Errorf("failed to decode tagged scalar at line %d: %w", n.Line, err)
			}
			return v, nil
		}
		if n.Style&stringStyles != 0 {
			return n.Value, nil
		}
		return Infer(n.Value), nil

	case yaml.SequenceNode:
		seq := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := nodeValue(item)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		return seq, nil

	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			v, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[key] = v
		}
		return m, nil

	case yaml.AliasNode:
		return nodeValue(n.Alias)
	}

	return nil, fmt.Errorf("unsupported YAML node kind %d at line %d", n.Kind, n.Line)
}
