package jsontab

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes v as YAML. The document is built from yaml.Node values
// so mapping key order survives, which the map-based encoder would lose.
func ToYAML(v Value) (string, error) {
	data, err := yaml.Marshal(yamlNode(v))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func yamlNode(v Value) *yaml.Node {
	switch t := v.(type) {
	case Bool:
		val := "false"
		if t {
			val = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: val}
	case Number:
		tag := "!!int"
		if strings.ContainsAny(string(t), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(t)}
	case Text:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(t)}
	case Sequence:
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, el := range t {
			node.Content = append(node.Content, yamlNode(el))
		}
		return node
	case Mapping:
		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, mem := range t {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: mem.Key},
				yamlNode(mem.Value))
		}
		return node
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
