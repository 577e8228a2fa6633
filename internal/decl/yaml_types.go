package decl

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// variantBody is the long form of a variant value.
type variantBody struct {
	Value *uint32 `yaml:"value"`
	Alias string  `yaml:"alias,omitempty"`
	Doc   string  `yaml:"doc,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for VariantList.
// Accepts a mapping from display name to either a value or a variantBody.
// The order of the mapping is kept.
func (l *VariantList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of name to value, got %v", node.Line, kindName(node.Kind))
	}

	list := make(VariantList, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: variant name must be a scalar", key.Line)
		}

		v := Variant{Name: key.Value, Line: key.Line}

		switch val.Kind {
		case yaml.ScalarNode:
			if err := val.Decode(&v.Value); err != nil {
				return fmt.Errorf("line %d: variant %q: %w", val.Line, key.Value, err)
			}

			v.Hex = isHexLiteral(val.Value)

		case yaml.MappingNode:
			var body variantBody
			if err := val.Decode(&body); err != nil {
				return fmt.Errorf("line %d: variant %q: %w", val.Line, key.Value, err)
			}

			if body.Value == nil {
				return fmt.Errorf("line %d: variant %q has no value", val.Line, key.Value)
			}

			v.Value = *body.Value
			v.Hex = isHexLiteral(mappingValue(val, "value"))
			v.Alias = body.Alias
			v.Doc = body.Doc

		default:
			return fmt.Errorf("line %d: variant %q: expected a value or a mapping, got %v",
				val.Line, key.Value, kindName(val.Kind))
		}

		list = append(list, v)
	}

	*l = list

	return nil
}

// MarshalYAML implements custom YAML marshaling for VariantList.
// Variants without options are written in the short form.
func (l VariantList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, v := range l {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: v.Name}
		if _, err := strconv.ParseFloat(v.Name, 64); err == nil {
			key.Style = yaml.DoubleQuotedStyle
		}

		literal := strconv.FormatUint(uint64(v.Value), 10)
		if v.Hex {
			literal = fmt.Sprintf("%#x", v.Value)
		}

		value := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: literal}

		if v.Alias == "" && v.Doc == "" {
			node.Content = append(node.Content, key, value)
			continue
		}

		body := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
		body.Content = append(body.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "value"}, value)

		if v.Alias != "" {
			body.Content = append(body.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: "alias"},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Alias})
		}

		if v.Doc != "" {
			body.Content = append(body.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: "doc"},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Doc})
		}

		node.Content = append(node.Content, key, body)
	}

	return node, nil
}

func isHexLiteral(s string) bool {
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

// mappingValue returns the scalar stored under key in a mapping node.
func mappingValue(node *yaml.Node, key string) string {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1].Value
		}
	}

	return ""
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
