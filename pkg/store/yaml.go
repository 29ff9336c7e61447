package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"exemplarcheck/pkg/core"
)

func loadYAML(path string) ([]core.Exemplar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("store: expected YAML sequence, got %v", seq.Tag)
	}

	exemplars := make([]core.Exemplar, 0, len(seq.Content))
	for _, node := range seq.Content {
		if node.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("store: expected YAML mapping, got %v", node.Tag)
		}
		var ex core.Exemplar
		// Mapping content alternates key node, value node.
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			valNode := node.Content[i+1]
			if valNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("store: field %q: expected scalar value", keyNode.Value)
			}
			ex.Fields = append(ex.Fields, core.Field{Key: keyNode.Value, Value: valNode.Value})
		}
		exemplars = append(exemplars, ex)
	}
	return exemplars, nil
}

func saveYAML(path string, exemplars []core.Exemplar) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, ex := range exemplars {
		mapping := &yaml.Node{Kind: yaml.MappingNode}
		for _, f := range ex.Fields {
			mapping.Content = append(mapping.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: f.Key},
				&yaml.Node{Kind: yaml.ScalarNode, Value: f.Value},
			)
		}
		seq.Content = append(seq.Content, mapping)
	}

	data, err := yaml.Marshal(seq)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
