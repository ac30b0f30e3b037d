package config

import "gopkg.in/yaml.v3"

// buildArgsFields has the BuildArgs layout without its YAML methods.
type buildArgsFields BuildArgs

// UnmarshalYAML decodes the fields and records whether the m64 key is present.
// A null value never reaches a field decoder, so presence is read from the mapping node.
func (a *BuildArgs) UnmarshalYAML(value *yaml.Node) error {
	var fields buildArgsFields
	if err := value.Decode(&fields); err != nil {
		return err
	}

	*a = BuildArgs(fields)
	a.M64 = hasMappingKey(value, m64Key)

	return nil
}

// MarshalYAML writes the m64 key only when the flag is present.
func (a BuildArgs) MarshalYAML() (any, error) {
	var m64 *bool
	if a.M64 {
		present := true
		m64 = &present
	}

	return struct {
		buildArgsFields `yaml:",inline"`

		M64 *bool `yaml:"m64,omitempty"`
	}{
		buildArgsFields: buildArgsFields(a),
		M64:             m64,
	}, nil
}

// hasMappingKey reports whether the mapping node has key.
func hasMappingKey(node *yaml.Node, key string) bool {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	if node.Kind != yaml.MappingNode {
		return false
	}

	// Content alternates key and value nodes.
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}

	return false
}
